package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/gitxray/pkg/report"
)

// SectionInfo describes one report section in gitxray_sections output.
type SectionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// sectionDescriptions maps section names to their one-line summaries.
var sectionDescriptions = map[string]string{
	report.SectionHotspots:  "files ranked by combined change frequency and churn",
	report.SectionBusFactor: "contributor concentration and knowledge risk per directory",
	report.SectionCoupling:  "file pairs that repeatedly change in the same commits",
	report.SectionDecay:     "formerly active files whose recent activity has dropped off",
	report.SectionTrend:     "commit volume and churn per quarter with direction of change",
}

// handleSections processes gitxray_sections tool calls.
func handleSections(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	_ SectionsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	sections := report.AllSections()
	infos := make([]SectionInfo, 0, len(sections))

	for _, name := range sections {
		infos = append(infos, SectionInfo{
			Name:        name,
			Description: sectionDescriptions[name],
		})
	}

	return jsonResult(infos)
}
