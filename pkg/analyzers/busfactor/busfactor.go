// Package busfactor ranks directories by how concentrated their change
// history is among authors. A directory whose knowledge would leave with
// one or two people is a staffing risk.
package busfactor

import (
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
	"github.com/Sumatoshi-tech/gitxray/pkg/identity"
)

const (
	// RootDir is the directory key for paths without a parent directory.
	RootDir = "(root)"

	// minDirCommits excludes directories with too little history to be
	// statistically reliable.
	minDirCommits = 5

	// maxContributors caps the reported leading authors per directory.
	maxContributors = 5

	// knowledgeShare is the cumulative commit share the leading authors
	// must strictly exceed to cover the bus factor.
	knowledgeShare = 0.5

	pctMultiplier = 100
)

// Options tunes bus factor analysis.
type Options struct {
	// TopN caps the number of reported directories.
	TopN int

	// DirDepth is the number of leading path segments a directory key
	// keeps before deeper paths collapse into it.
	DirDepth int
}

// DirKey derives the aggregation directory for a file path. Paths deeper
// than depth collapse to their first depth segments, shallower multi
// segment paths keep everything but the file name, and bare file names
// map to RootDir.
func DirKey(path string, depth int) string {
	parts := strings.Split(path, "/")

	switch {
	case len(parts) > depth:
		return strings.Join(parts[:depth], "/") + "/"
	case len(parts) > 1:
		return strings.Join(parts[:len(parts)-1], "/") + "/"
	default:
		return RootDir
	}
}

type dirStats struct {
	authorCommits map[string]int
}

// Analyze ranks directories by authorship concentration. Each commit
// counts once per distinct directory it touches, keyed by author email.
func Analyze(commits []history.Commit, opts Options) *Metrics {
	topN := opts.TopN
	if topN <= 0 {
		topN = analyze.DefaultTopN
	}

	depth := opts.DirDepth
	if depth <= 0 {
		depth = analyze.DefaultDirDepth
	}

	names := identity.NewResolver()
	dirs := make(map[string]*dirStats)
	order := make([]string, 0)

	for _, commit := range commits {
		names.Record(commit.AuthorName, commit.AuthorEmail)

		seen := make(map[string]bool, len(commit.Files))

		for _, fc := range commit.Files {
			dir := DirKey(fc.Path, depth)
			if seen[dir] {
				continue
			}

			seen[dir] = true

			ds := dirs[dir]
			if ds == nil {
				ds = &dirStats{authorCommits: make(map[string]int)}
				dirs[dir] = ds
				order = append(order, dir)
			}

			ds.authorCommits[commit.AuthorEmail]++
		}
	}

	entries := make([]Entry, 0, len(order))

	for _, dir := range order {
		entry, ok := buildEntry(dir, dirs[dir], names)
		if ok {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Risk != entries[j].Risk {
			return entries[i].Risk < entries[j].Risk
		}

		if entries[i].TotalCommits != entries[j].TotalCommits {
			return entries[i].TotalCommits > entries[j].TotalCommits
		}

		return entries[i].Directory < entries[j].Directory
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}

	return &Metrics{Entries: entries}
}

type authorCount struct {
	email   string
	commits int
}

func buildEntry(dir string, ds *dirStats, names *identity.Resolver) (Entry, bool) {
	total := 0
	authors := make([]authorCount, 0, len(ds.authorCommits))

	for email, count := range ds.authorCommits {
		total += count

		authors = append(authors, authorCount{email: email, commits: count})
	}

	if total < minDirCommits {
		return Entry{}, false
	}

	sort.SliceStable(authors, func(i, j int) bool {
		if authors[i].commits != authors[j].commits {
			return authors[i].commits > authors[j].commits
		}

		return authors[i].email < authors[j].email
	})

	busFactor := coveringAuthors(authors, total)

	contributors := make([]Contributor, 0, maxContributors)
	for _, a := range authors[:min(maxContributors, len(authors))] {
		contributors = append(contributors, Contributor{
			Name:    names.Name(a.email),
			Email:   a.email,
			Commits: a.commits,
			Pct:     float64(a.commits) / float64(total) * pctMultiplier,
		})
	}

	return Entry{
		Directory:       dir,
		BusFactor:       busFactor,
		TotalCommits:    total,
		TopContributors: contributors,
		Risk:            classify(busFactor),
	}, true
}

// coveringAuthors counts how many leading authors it takes for their
// cumulative commits to strictly exceed the knowledge share of total.
func coveringAuthors(authors []authorCount, total int) int {
	cumulative := 0
	busFactor := 0

	for _, a := range authors {
		cumulative += a.commits
		busFactor++

		if float64(cumulative) > float64(total)*knowledgeShare {
			break
		}
	}

	return busFactor
}

func classify(busFactor int) Risk {
	switch busFactor {
	case 1:
		return RiskCritical
	case 2: //nolint:mnd // bus factor of two is the warning tier.
		return RiskWarning
	default:
		return RiskOK
	}
}
