package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitxray/pkg/config"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
	"github.com/Sumatoshi-tech/gitxray/pkg/report"
)

func baseTestConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{
			TopN:        10,
			DirDepth:    2,
			ActiveDays:  90,
			MinCommits:  5,
			MinCoupling: 0.4,
		},
		Git:     config.GitConfig{Timeout: time.Minute},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
		Output:  config.OutputConfig{Format: "text"},
	}
}

func TestApplyOverrides_ChangedFlagsWin(t *testing.T) {
	t.Parallel()

	sc := &ScanCommand{}
	cmd := sc.command()

	require.NoError(t, cmd.Flags().Set("top", "25"))
	require.NoError(t, cmd.Flags().Set("min-coupling", "0.7"))
	require.NoError(t, cmd.Flags().Set("format", "json"))
	require.NoError(t, cmd.Flags().Set("limit", "500"))
	require.NoError(t, cmd.Flags().Set("skip-vendor", "true"))

	cfg := baseTestConfig()
	sc.applyOverrides(cmd, cfg)

	assert.Equal(t, 25, cfg.Analysis.TopN)
	assert.InDelta(t, 0.7, cfg.Analysis.MinCoupling, 0.0001)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 500, cfg.Git.MaxCommits)
	assert.True(t, cfg.Git.SkipVendor)
}

func TestApplyOverrides_UnchangedFlagsKeepConfig(t *testing.T) {
	t.Parallel()

	sc := &ScanCommand{}
	cmd := sc.command()

	cfg := baseTestConfig()
	cfg.Analysis.TopN = 33
	cfg.Analysis.MinCoupling = 0.9
	cfg.Output.Format = "yaml"
	cfg.Git.MaxCommits = 777

	sc.applyOverrides(cmd, cfg)

	assert.Equal(t, 33, cfg.Analysis.TopN)
	assert.InDelta(t, 0.9, cfg.Analysis.MinCoupling, 0.0001)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 777, cfg.Git.MaxCommits)
}

func TestScanParams_MapsConfig(t *testing.T) {
	t.Parallel()

	cfg := baseTestConfig()
	cfg.Analysis.TopN = 15
	cfg.Analysis.DirDepth = 3
	cfg.Analysis.ActiveDays = 30
	cfg.Analysis.MinCommits = 8
	cfg.Analysis.MinCoupling = 0.6

	params := scanParams(cfg)

	assert.Equal(t, 15, params.TopN)
	assert.Equal(t, 3, params.DirDepth)
	assert.Equal(t, 30, params.ActiveDays)
	assert.Equal(t, 8, params.MinCommits)
	assert.InDelta(t, 0.6, params.MinCoupling, 0.0001)
}

func TestBuildLogger_LevelFromConfig(t *testing.T) {
	t.Parallel()

	cfg := baseTestConfig()
	cfg.Logging.Level = "warn"

	logger := buildLogger(bytes.NewBuffer(nil), cfg, false, false)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}

func TestBuildLogger_QuietRaisesLevel(t *testing.T) {
	t.Parallel()

	logger := buildLogger(bytes.NewBuffer(nil), baseTestConfig(), true, false)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
}

func TestBuildLogger_VerboseLowersLevel(t *testing.T) {
	t.Parallel()

	logger := buildLogger(bytes.NewBuffer(nil), baseTestConfig(), false, true)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestBuildLogger_QuietWinsOverVerbose(t *testing.T) {
	t.Parallel()

	logger := buildLogger(bytes.NewBuffer(nil), baseTestConfig(), true, true)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
}

func TestBuildLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := baseTestConfig()
	cfg.Logging.Format = "json"

	logger := buildLogger(&buf, cfg, false, false)
	logger.Error("boom")

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("{")))
}

func TestResolveRepoPath_DefaultsToCurrentDir(t *testing.T) {
	t.Parallel()

	path, err := resolveRepoPath(nil)

	require.NoError(t, err)
	assert.Equal(t, ".", path)
}

func TestResolveRepoPath_UsesArgument(t *testing.T) {
	t.Parallel()

	path, err := resolveRepoPath([]string{"/some/repo"})

	require.NoError(t, err)
	assert.Equal(t, "/some/repo", path)
}

func TestResolveRepoPath_ExpandsHome(t *testing.T) {
	t.Parallel()

	home, homeErr := os.UserHomeDir()
	require.NoError(t, homeErr)

	path, err := resolveRepoPath([]string{"~/repo"})

	require.NoError(t, err)
	assert.Equal(t, home+"/repo", path)
}

func fixtureCommits() []history.Commit {
	return []history.Commit{
		{
			Hash:        "a1b2c3d",
			AuthorName:  "Alice",
			AuthorEmail: "alice@example.com",
			Timestamp:   time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC).Unix(),
			Subject:     "add parser",
			Files: []history.FileChange{
				{Path: "parser.go", Additions: 120, Deletions: 4},
			},
		},
		{
			Hash:        "d4e5f6a",
			AuthorName:  "Bob",
			AuthorEmail: "bob@example.com",
			Timestamp:   time.Date(2024, 4, 16, 12, 0, 0, 0, time.UTC).Unix(),
			Subject:     "fix parser",
			Files: []history.FileChange{
				{Path: "parser.go", Additions: 8, Deletions: 8},
				{Path: "lexer.go", Additions: 30, Deletions: 0},
			},
		},
	}
}

func TestRenderReport_Stdout(t *testing.T) {
	t.Parallel()

	cfg := baseTestConfig()

	rep, err := report.Build("demo", "main", fixtureCommits(), nil, scanParams(cfg))
	require.NoError(t, err)

	var out bytes.Buffer

	sc := &ScanCommand{}
	require.NoError(t, sc.renderReport(&out, rep, "json", cfg))

	assert.Contains(t, out.String(), `"summary"`)
}

func TestRenderReport_WritesFile(t *testing.T) {
	t.Parallel()

	cfg := baseTestConfig()

	rep, err := report.Build("demo", "main", fixtureCommits(), nil, scanParams(cfg))
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "report.json")
	sc := &ScanCommand{output: outPath}

	var out bytes.Buffer
	require.NoError(t, sc.renderReport(&out, rep, "json", cfg))

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)

	assert.Contains(t, string(data), `"summary"`)
	assert.Empty(t, out.String(), "stdout should stay empty when writing to a file")
}
