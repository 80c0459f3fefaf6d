// Package report assembles per-analyzer results from one repository scan
// into a single document and renders it as text, JSON, YAML or a
// standalone HTML page.
package report

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/busfactor"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/coupling"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/decay"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/hotspots"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/trend"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// Section names accepted by Build and the --section flag.
const (
	SectionHotspots  = "hotspots"
	SectionBusFactor = "bus-factor"
	SectionCoupling  = "coupling"
	SectionDecay     = "decay"
	SectionTrend     = "trend"
)

// ErrUnknownSection indicates a section name outside AllSections.
var ErrUnknownSection = errors.New("unknown section")

// AllSections returns every section name in display order.
func AllSections() []string {
	return []string{
		SectionHotspots,
		SectionBusFactor,
		SectionCoupling,
		SectionDecay,
		SectionTrend,
	}
}

// ResolveSections validates the requested section names and returns the
// enabled set. An empty request enables every section. Duplicates are
// collapsed; request order does not matter because rendering always
// follows display order.
func ResolveSections(requested []string) (map[string]bool, error) {
	enabled := make(map[string]bool, len(AllSections()))

	if len(requested) == 0 {
		for _, name := range AllSections() {
			enabled[name] = true
		}

		return enabled, nil
	}

	known := make(map[string]bool, len(AllSections()))
	for _, name := range AllSections() {
		known[name] = true
	}

	for _, name := range requested {
		if !known[name] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}

		enabled[name] = true
	}

	return enabled, nil
}

// Params bundles every knob a scan accepts.
type Params struct {
	analyze.Params

	// MinCommits is the per-file commit floor for change coupling.
	// Zero or negative means the coupling default.
	MinCommits int

	// MinCoupling is the minimum coupling score to report.
	// Zero or negative means the coupling default.
	MinCoupling float64
}

// Report is the assembled result of one repository scan. Sections that
// were not requested stay nil and are omitted from machine output.
type Report struct {
	Summary   Summary            `json:"summary"              yaml:"summary"`
	Hotspots  *hotspots.Metrics  `json:"hotspots,omitempty"   yaml:"hotspots,omitempty"`
	BusFactor *busfactor.Metrics `json:"bus_factor,omitempty" yaml:"bus_factor,omitempty"`
	Coupling  *coupling.Metrics  `json:"coupling,omitempty"   yaml:"coupling,omitempty"`
	Decay     *decay.Metrics     `json:"decay,omitempty"      yaml:"decay,omitempty"`
	Trend     *trend.Metrics     `json:"trend,omitempty"      yaml:"trend,omitempty"`
}

// Build runs the requested analyzers over the commit history and
// assembles the report. repoName and branch are display metadata
// resolved at the repository boundary. An empty sections slice enables
// every analyzer. Enabled analyzers run concurrently; each one only
// reads the shared history and writes its own section field.
func Build(repoName, branch string, commits []history.Commit, sections []string, params Params) (*Report, error) {
	enabled, err := ResolveSections(sections)
	if err != nil {
		return nil, err
	}

	normalized := params.Params.Normalized()

	rep := &Report{
		Summary: buildSummary(repoName, branch, commits),
	}

	var group errgroup.Group

	if enabled[SectionHotspots] {
		group.Go(func() error {
			rep.Hotspots = hotspots.Analyze(commits, hotspots.Options{TopN: normalized.TopN})

			return nil
		})
	}

	if enabled[SectionBusFactor] {
		group.Go(func() error {
			rep.BusFactor = busfactor.Analyze(commits, busfactor.Options{
				TopN:     normalized.TopN,
				DirDepth: normalized.DirDepth,
			})

			return nil
		})
	}

	if enabled[SectionCoupling] {
		group.Go(func() error {
			rep.Coupling = coupling.Analyze(commits, coupling.Options{
				TopN:        normalized.TopN,
				MinCommits:  params.MinCommits,
				MinCoupling: params.MinCoupling,
			})

			return nil
		})
	}

	if enabled[SectionDecay] {
		group.Go(func() error {
			rep.Decay = decay.Analyze(commits, decay.Options{
				TopN:       normalized.TopN,
				ActiveDays: normalized.ActiveDays,
				Now:        normalized.Now,
			})

			return nil
		})
	}

	if enabled[SectionTrend] {
		group.Go(func() error {
			rep.Trend = trend.Analyze(commits)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}

// sectionResult is the render surface shared by every analyzer result.
type sectionResult interface {
	WriteText(writer io.Writer, cfg terminal.Config) error
	PlotSection(theme plotpage.Theme) plotpage.Section
}

// results returns the analyzer results present in the report, in
// display order. Nil checks happen per concrete type so a nil pointer
// never hides inside a non-nil interface value.
func (r *Report) results() []sectionResult {
	present := make([]sectionResult, 0, len(AllSections()))

	if r.Hotspots != nil {
		present = append(present, r.Hotspots)
	}

	if r.BusFactor != nil {
		present = append(present, r.BusFactor)
	}

	if r.Coupling != nil {
		present = append(present, r.Coupling)
	}

	if r.Decay != nil {
		present = append(present, r.Decay)
	}

	if r.Trend != nil {
		present = append(present, r.Trend)
	}

	return present
}
