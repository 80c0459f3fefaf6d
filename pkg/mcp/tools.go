package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool name constants.
const (
	ToolNameScan     = "gitxray_scan"
	ToolNameSections = "gitxray_sections"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyRepoPath indicates the repo_path parameter is empty.
	ErrEmptyRepoPath = errors.New("repo_path parameter is required and must not be empty")
	// ErrRepoPathNotAbsolute indicates the repo_path is not an absolute path.
	ErrRepoPathNotAbsolute = errors.New("repo_path must be an absolute path")
	// ErrRepoNotFound indicates the repository path does not exist.
	ErrRepoNotFound = errors.New("repository path does not exist")
	// ErrNoCommits indicates the repository history came back empty.
	ErrNoCommits = errors.New("no commits found in repository")
)

// Input types (auto-generate JSON schemas via struct tags).

// ScanInput is the input schema for the gitxray_scan tool.
type ScanInput struct {
	ActiveDays int      `json:"active_days,omitempty" jsonschema:"activity window in days for knowledge decay (default: 90)"`
	DirDepth   int      `json:"dir_depth,omitempty"   jsonschema:"directory grouping depth for bus factor (default: 2)"`
	Limit      int      `json:"limit,omitempty"       jsonschema:"maximum number of commits to scan (default: 1000)"`
	RepoPath   string   `json:"repo_path"             jsonschema:"absolute path to a Git repository"`
	Sections   []string `json:"sections,omitempty"    jsonschema:"report sections to build (default: all)"`
	Since      string   `json:"since,omitempty"       jsonschema:"only scan commits after this time (e.g. 6 months ago or 2024-01-01)"`
	TopN       int      `json:"top_n,omitempty"       jsonschema:"number of entries per ranked section (default: 10)"`
}

// SectionsInput is the input schema for the gitxray_sections tool. It takes
// no parameters.
type SectionsInput struct{}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
