// Package hotspots ranks files by a blended change-frequency and churn
// risk score. Files that change often and change a lot are statistically
// where most defects live.
package hotspots

import (
	"math"
	"path"
	"sort"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// Risk score weights. Frequency is weighted higher than magnitude.
const (
	freqWeight  = 0.6
	churnWeight = 0.4
)

// noiseSuffixes lists path endings excluded from scoring. Lockfiles,
// minified assets and source maps inflate churn without reflecting real
// maintenance risk.
var noiseSuffixes = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"poetry.lock",
	"Pipfile.lock",
	"composer.lock",
	"Gemfile.lock",
	"go.sum",
	".min.js",
	".min.css",
	".map",
}

// IsNoise reports whether a path matches the noise suffix denylist.
func IsNoise(path string) bool {
	for _, suffix := range noiseSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}

// Options tunes hotspot analysis.
type Options struct {
	// TopN caps the number of reported hotspots.
	TopN int
}

type fileStats struct {
	commits int
	lines   history.Stats
}

// Analyze ranks files by combined change frequency and churn magnitude.
// Noise paths are excluded entirely. A file touched several times within
// one commit counts once toward its commit count, while line counts
// accumulate per change record. Binary sentinel counts are never summed.
func Analyze(commits []history.Commit, opts Options) *Metrics {
	topN := opts.TopN
	if topN <= 0 {
		topN = analyze.DefaultTopN
	}

	stats := make(map[string]*fileStats)
	order := make([]string, 0)

	for _, commit := range commits {
		seen := make(map[string]bool, len(commit.Files))

		for _, fc := range commit.Files {
			if IsNoise(fc.Path) {
				continue
			}

			fs := stats[fc.Path]
			if fs == nil {
				fs = &fileStats{}
				stats[fc.Path] = fs
				order = append(order, fc.Path)
			}

			if !seen[fc.Path] {
				fs.commits++
				seen[fc.Path] = true
			}

			fs.lines.Add(fc)
		}
	}

	if len(order) == 0 {
		return &Metrics{Hotspots: []Hotspot{}}
	}

	maxCommits, maxChurn := findMaxima(stats)
	logMaxChurn := math.Log1p(float64(maxChurn))

	hotspots := make([]Hotspot, 0, len(order))

	for _, filePath := range order {
		fs := stats[filePath]
		churn := fs.lines.Churn()

		freqNorm := float64(fs.commits) / float64(maxCommits)
		churnNorm := math.Log1p(float64(churn)) / logMaxChurn

		hotspots = append(hotspots, Hotspot{
			Path:        filePath,
			Language:    enry.GetLanguage(path.Base(filePath), nil),
			CommitCount: fs.commits,
			Additions:   fs.lines.Additions,
			Deletions:   fs.lines.Deletions,
			Churn:       churn,
			RiskScore:   freqWeight*freqNorm + churnWeight*churnNorm,
		})
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].RiskScore > hotspots[j].RiskScore
	})

	if len(hotspots) > topN {
		hotspots = hotspots[:topN]
	}

	return &Metrics{Hotspots: hotspots}
}

func findMaxima(stats map[string]*fileStats) (maxCommits, maxChurn int) {
	for _, fs := range stats {
		maxCommits = max(maxCommits, fs.commits)
		maxChurn = max(maxChurn, fs.lines.Churn())
	}

	// A repository of pure binary churn still ranks by frequency.
	if maxChurn == 0 {
		maxChurn = 1
	}

	return maxCommits, maxChurn
}
