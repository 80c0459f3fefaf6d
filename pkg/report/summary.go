package report

import (
	"path"
	"sort"
	"time"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

const (
	// maxLanguages caps the language breakdown in the summary.
	maxLanguages = 5

	// hoursPerDay converts the history span to whole days.
	hoursPerDay = 24
)

// LanguageStat is one language's share of the repository by file count.
type LanguageStat struct {
	Language string `json:"language" yaml:"language"`
	Files    int    `json:"files"    yaml:"files"`
}

// Summary describes the analyzed history as a whole.
type Summary struct {
	Repository   string         `json:"repository"    yaml:"repository"`
	Branch       string         `json:"branch"        yaml:"branch"`
	TotalCommits int            `json:"total_commits" yaml:"total_commits"`
	TotalAuthors int            `json:"total_authors" yaml:"total_authors"`
	TotalFiles   int            `json:"total_files"   yaml:"total_files"`
	FirstDate    time.Time      `json:"first_date"    yaml:"first_date"`
	LastDate     time.Time      `json:"last_date"     yaml:"last_date"`
	SpanDays     int            `json:"span_days"     yaml:"span_days"`
	Languages    []LanguageStat `json:"languages"     yaml:"languages"`
}

// buildSummary derives the header totals from the commit history.
// Authors are keyed by email, files by path across all commits.
func buildSummary(repoName, branch string, commits []history.Commit) Summary {
	summary := Summary{
		Repository:   repoName,
		Branch:       branch,
		TotalCommits: len(commits),
	}

	if len(commits) == 0 {
		return summary
	}

	authors := make(map[string]bool)
	files := make(map[string]bool)

	first := commits[0].Timestamp
	last := commits[0].Timestamp

	for _, commit := range commits {
		authors[commit.AuthorEmail] = true

		if commit.Timestamp < first {
			first = commit.Timestamp
		}

		if commit.Timestamp > last {
			last = commit.Timestamp
		}

		for _, change := range commit.Files {
			files[change.Path] = true
		}
	}

	summary.TotalAuthors = len(authors)
	summary.TotalFiles = len(files)
	summary.FirstDate = time.Unix(first, 0)
	summary.LastDate = time.Unix(last, 0)
	summary.SpanDays = int(summary.LastDate.Sub(summary.FirstDate).Hours() / hoursPerDay)
	summary.Languages = languageBreakdown(files)

	return summary
}

// languageBreakdown groups distinct file paths by detected language and
// keeps the most common ones. Paths enry cannot classify are skipped.
func languageBreakdown(files map[string]bool) []LanguageStat {
	counts := make(map[string]int)

	for filePath := range files {
		language := enry.GetLanguage(path.Base(filePath), nil)
		if language == "" {
			continue
		}

		counts[language]++
	}

	return topLanguages(counts)
}

// topLanguages ranks language counts by file count descending, names
// ascending on ties, capped at maxLanguages.
func topLanguages(counts map[string]int) []LanguageStat {
	stats := make([]LanguageStat, 0, len(counts))
	for language, count := range counts {
		stats = append(stats, LanguageStat{Language: language, Files: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Files != stats[j].Files {
			return stats[i].Files > stats[j].Files
		}

		return stats[i].Language < stats[j].Language
	})

	if len(stats) > maxLanguages {
		stats = stats[:maxLanguages]
	}

	return stats
}
