// Package commands implements CLI command handlers for gitxray.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/coupling"
	"github.com/Sumatoshi-tech/gitxray/pkg/config"
	"github.com/Sumatoshi-tech/gitxray/pkg/gitlog"
	"github.com/Sumatoshi-tech/gitxray/pkg/report"
)

// ErrNoCommits indicates the repository history produced no commits to analyze.
var ErrNoCommits = errors.New("no commits found in repository history")

// ScanCommand holds configuration for the scan command.
type ScanCommand struct {
	topN        int
	since       string
	sections    []string
	dirDepth    int
	activeDays  int
	minCommits  int
	minCoupling float64
	limit       int
	skipVendor  bool
	format      string
	output      string
	noColor     bool
	configPath  string
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	sc := &ScanCommand{}

	return sc.command()
}

func (sc *ScanCommand) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [repo]",
		Short: "Analyze a repository's commit history for maintenance risk",
		Long: "Analyze a repository's commit history and report hotspots, bus factor,\n" +
			"change coupling, decayed files and activity trends.",
		Args: cobra.MaximumNArgs(1),
		RunE: sc.run,
	}

	cmd.Flags().IntVarP(&sc.topN, "top", "n", analyze.DefaultTopN, "Maximum rows per report section")
	cmd.Flags().StringVar(&sc.since, "since", "", "Only analyze commits after this time (passed to git log --since)")
	cmd.Flags().StringSliceVarP(&sc.sections, "section", "s", nil,
		"Report sections to include (hotspots, bus-factor, coupling, decay, trend; default all)")
	cmd.Flags().IntVar(&sc.dirDepth, "depth", analyze.DefaultDirDepth, "Directory depth for bus factor grouping")
	cmd.Flags().IntVar(&sc.activeDays, "active-days", analyze.DefaultActiveDays, "Days of inactivity before a file counts as decayed")
	cmd.Flags().IntVar(&sc.minCommits, "min-commits", coupling.DefaultMinCommits, "Minimum shared commits for a coupled pair")
	cmd.Flags().Float64Var(&sc.minCoupling, "min-coupling", coupling.DefaultMinCoupling, "Minimum coupling score for a coupled pair")
	cmd.Flags().IntVar(&sc.limit, "limit", 0, "Limit number of commits to analyze (0 = no limit)")
	cmd.Flags().BoolVar(&sc.skipVendor, "skip-vendor", false, "Skip vendored and generated paths")
	cmd.Flags().StringVarP(&sc.format, "format", "f", config.DefaultOutputFormat, "Output format: text, json, yaml, plot")
	cmd.Flags().StringVarP(&sc.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&sc.noColor, "no-color", false, "Disable colored text output")
	cmd.Flags().StringVar(&sc.configPath, "config", "", "Config file path (default: gitxray.yaml along the search path)")

	return cmd
}

func (sc *ScanCommand) run(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return err
	}

	sc.applyOverrides(cmd, cfg)

	err = cfg.Validate()
	if err != nil {
		return err
	}

	format, err := analyze.ValidateFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger := buildLogger(cmd.ErrOrStderr(), cfg, boolFlag(cmd, "quiet"), boolFlag(cmd, "verbose"))

	ctx := cmd.Context()
	if cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.Git.Timeout)
		defer cancel()
	}

	logger.Info("loading history", "repo", repoPath, "since", sc.since, "limit", cfg.Git.MaxCommits)

	loadStart := time.Now()

	commits, err := gitlog.Load(ctx, repoPath, gitlog.LoadOptions{
		Since:      sc.since,
		MaxCommits: cfg.Git.MaxCommits,
		SkipVendor: cfg.Git.SkipVendor,
	})
	if err != nil {
		return err
	}

	if len(commits) == 0 {
		return ErrNoCommits
	}

	logger.Info("history loaded", "commits", len(commits), "duration", time.Since(loadStart).Round(time.Millisecond))

	rep, err := report.Build(
		gitlog.RepoName(repoPath),
		gitlog.DefaultBranch(ctx, repoPath),
		commits,
		sc.sections,
		scanParams(cfg),
	)
	if err != nil {
		return err
	}

	logger.Info("report built", "files", rep.Summary.TotalFiles, "authors", rep.Summary.TotalAuthors)

	return sc.renderReport(cmd.OutOrStdout(), rep, format, cfg)
}

// applyOverrides copies explicitly set flags over the loaded configuration
// so flags win over file and environment values.
func (sc *ScanCommand) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("top") {
		cfg.Analysis.TopN = sc.topN
	}

	if flags.Changed("depth") {
		cfg.Analysis.DirDepth = sc.dirDepth
	}

	if flags.Changed("active-days") {
		cfg.Analysis.ActiveDays = sc.activeDays
	}

	if flags.Changed("min-commits") {
		cfg.Analysis.MinCommits = sc.minCommits
	}

	if flags.Changed("min-coupling") {
		cfg.Analysis.MinCoupling = sc.minCoupling
	}

	if flags.Changed("limit") {
		cfg.Git.MaxCommits = sc.limit
	}

	if flags.Changed("skip-vendor") {
		cfg.Git.SkipVendor = sc.skipVendor
	}

	if flags.Changed("format") {
		cfg.Output.Format = sc.format
	}

	if flags.Changed("no-color") {
		cfg.Output.NoColor = sc.noColor
	}
}

func (sc *ScanCommand) renderReport(stdout io.Writer, rep *report.Report, format string, cfg *config.Config) error {
	termCfg := terminal.NewConfig()
	termCfg.NoColor = termCfg.NoColor || cfg.Output.NoColor || sc.output != ""

	if sc.output == "" {
		return rep.Render(stdout, format, termCfg, plotpage.ThemeDark)
	}

	file, err := os.Create(sc.output)
	if err != nil {
		return fmt.Errorf("create output %s: %w", sc.output, err)
	}

	renderErr := rep.Render(file, format, termCfg, plotpage.ThemeDark)

	closeErr := file.Close()
	if renderErr != nil {
		return renderErr
	}

	return closeErr
}

// scanParams maps merged configuration onto report build parameters.
func scanParams(cfg *config.Config) report.Params {
	return report.Params{
		Params: analyze.Params{
			TopN:       cfg.Analysis.TopN,
			DirDepth:   cfg.Analysis.DirDepth,
			ActiveDays: cfg.Analysis.ActiveDays,
		},
		MinCommits:  cfg.Analysis.MinCommits,
		MinCoupling: cfg.Analysis.MinCoupling,
	}
}

// buildLogger constructs the progress logger writing to stderr. The quiet
// flag wins over verbose when both are set.
func buildLogger(writer io.Writer, cfg *config.Config, quiet, verbose bool) *slog.Logger {
	level := cfg.Logging.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	if quiet {
		level = slog.LevelError
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(writer, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(writer, handlerOpts))
}

func resolveRepoPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	// Expand ~ to home directory.
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = strings.Replace(path, "~", home, 1)
	}

	return path, nil
}

func boolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}

	return value
}
