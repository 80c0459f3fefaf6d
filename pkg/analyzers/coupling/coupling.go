// Package coupling finds file pairs that change together suspiciously often.
//
// The score is confidence based: shared commits divided by the commit count
// of the less frequently changed file. Coupling inside one directory is
// usually intentional; coupling across directories tends to be a hidden
// dependency, so cross-directory pairs rank first.
package coupling

import (
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// Pair selection thresholds.
const (
	// DefaultMinCommits is the per-file commit floor below which a file
	// has too little history to judge.
	DefaultMinCommits = 5

	// DefaultMinCoupling is the confidence floor for reporting a pair.
	DefaultMinCoupling = 0.4

	// minCoChanges is the minimum shared commits before a pair counts.
	minCoChanges = 3

	// Commits outside this distinct-file range contribute no pairs. Huge
	// commits (merges, reformats) create quadratic pairwise noise.
	minPairFiles = 2
	maxPairFiles = 30
)

// Options tunes the coupling analysis.
type Options struct {
	TopN        int
	MinCommits  int
	MinCoupling float64
}

// pairKey identifies an unordered file pair. A is always lexicographically
// smaller than B.
type pairKey struct {
	a string
	b string
}

// Analyze ranks file pairs by co-change confidence.
func Analyze(commits []history.Commit, opts Options) *Metrics {
	topN := opts.TopN
	if topN <= 0 {
		topN = analyze.DefaultTopN
	}

	minCommits := opts.MinCommits
	if minCommits <= 0 {
		minCommits = DefaultMinCommits
	}

	minCoupling := opts.MinCoupling
	if minCoupling <= 0 {
		minCoupling = DefaultMinCoupling
	}

	fileCommits := make(map[string]int)
	pairCommits := make(map[pairKey]int)

	for _, commit := range commits {
		paths := distinctPaths(commit)

		for _, path := range paths {
			fileCommits[path]++
		}

		if len(paths) < minPairFiles || len(paths) > maxPairFiles {
			continue
		}

		for i := range paths {
			for j := i + 1; j < len(paths); j++ {
				pairCommits[pairKey{a: paths[i], b: paths[j]}]++
			}
		}
	}

	entries := make([]Entry, 0, len(pairCommits))

	for pair, co := range pairCommits {
		if co < minCoChanges {
			continue
		}

		totalA := fileCommits[pair.a]
		totalB := fileCommits[pair.b]

		if totalA < minCommits || totalB < minCommits {
			continue
		}

		score := float64(co) / float64(min(totalA, totalB))
		if score < minCoupling {
			continue
		}

		entries = append(entries, Entry{
			FileA:          pair.a,
			FileB:          pair.b,
			Score:          score,
			CoCommits:      co,
			TotalA:         totalA,
			TotalB:         totalB,
			CrossDirectory: ParentDir(pair.a) != ParentDir(pair.b),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CrossDirectory != entries[j].CrossDirectory {
			return entries[i].CrossDirectory
		}

		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}

		if entries[i].FileA != entries[j].FileA {
			return entries[i].FileA < entries[j].FileA
		}

		return entries[i].FileB < entries[j].FileB
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}

	return &Metrics{Entries: entries}
}

// distinctPaths returns the sorted set of paths touched by a commit.
func distinctPaths(commit history.Commit) []string {
	seen := make(map[string]struct{}, len(commit.Files))
	paths := make([]string, 0, len(commit.Files))

	for _, fc := range commit.Files {
		if _, ok := seen[fc.Path]; ok {
			continue
		}

		seen[fc.Path] = struct{}{}
		paths = append(paths, fc.Path)
	}

	sort.Strings(paths)

	return paths
}

// ParentDir returns the directory part of a slash path, or "" at the root.
func ParentDir(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}

	return path[:idx]
}
