package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/gitlog"
	"github.com/Sumatoshi-tech/gitxray/pkg/observability"
	"github.com/Sumatoshi-tech/gitxray/pkg/report"
)

// defaultScanCommitLimit bounds MCP-triggered scans, unlike the CLI where an
// explicit flag is required to cap history.
const defaultScanCommitLimit = 1000

// handleScan processes gitxray_scan tool calls.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ScanInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateScanInput(input)
	if err != nil {
		return errorResult(err)
	}

	return s.executeScan(ctx, input)
}

// executeScan loads the repository history and assembles the report.
func (s *Server) executeScan(ctx context.Context, input ScanInput) (*mcpsdk.CallToolResult, ToolOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultScanCommitLimit
	}

	loadStart := time.Now()

	commits, err := gitlog.Load(ctx, input.RepoPath, gitlog.LoadOptions{
		Since:      input.Since,
		MaxCommits: limit,
	})
	if err != nil {
		return errorResult(fmt.Errorf("load history: %w", err))
	}

	loadDuration := time.Since(loadStart)

	if len(commits) == 0 {
		return errorResult(fmt.Errorf("%w: %s", ErrNoCommits, input.RepoPath))
	}

	buildStart := time.Now()

	rep, err := report.Build(
		gitlog.RepoName(input.RepoPath),
		gitlog.DefaultBranch(ctx, input.RepoPath),
		commits,
		input.Sections,
		scanParams(input),
	)
	if err != nil {
		return errorResult(err)
	}

	s.scans.RecordScan(ctx, observability.ScanStats{
		Commits:       int64(len(commits)),
		Files:         int64(rep.Summary.TotalFiles),
		Sections:      builtSections(input.Sections),
		LoadDuration:  loadDuration,
		BuildDuration: time.Since(buildStart),
	})

	return jsonResult(rep)
}

// scanParams maps tool input onto report parameters. Zero values fall back to
// the standard defaults during report assembly.
func scanParams(input ScanInput) report.Params {
	return report.Params{
		Params: analyze.Params{
			TopN:       input.TopN,
			DirDepth:   input.DirDepth,
			ActiveDays: input.ActiveDays,
		},
	}
}

// builtSections names the sections the scan actually produced.
func builtSections(requested []string) []string {
	if len(requested) == 0 {
		return report.AllSections()
	}

	return requested
}

// validateScanInput validates the scan tool input parameters. Repository
// recognition itself is left to the history loader, which also accepts bare
// repositories.
func validateScanInput(input ScanInput) error {
	if input.RepoPath == "" {
		return ErrEmptyRepoPath
	}

	if !filepath.IsAbs(input.RepoPath) {
		return ErrRepoPathNotAbsolute
	}

	info, err := os.Stat(input.RepoPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, input.RepoPath)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRepoNotFound, input.RepoPath)
	}

	return nil
}
