// Package trend tracks how code churn moves across calendar quarters.
//
// Rising average churn per commit suggests growing complexity: every
// change touches more code, a sign the codebase is getting harder to
// work with.
package trend

import (
	"fmt"
	"sort"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// Quarter-over-quarter movement thresholds.
const (
	upFactor   = 1.15
	downFactor = 0.85

	monthsPerQuarter = 3
)

// Whole-series movement thresholds. The series splits into overallGroups
// contiguous groups and the first and last group means are compared.
const (
	overallUpFactor   = 1.3
	overallDownFactor = 0.7
	overallGroups     = 3
)

// Analyze buckets commits into calendar quarters, oldest first. Every
// quarter present in the history is returned; truncation is a display
// concern.
func Analyze(commits []history.Commit) *Metrics {
	if len(commits) == 0 {
		return &Metrics{Periods: []Period{}}
	}

	buckets := make(map[string][]history.Commit)

	for _, commit := range commits {
		date := commit.Date()
		quarter := (int(date.Month())-1)/monthsPerQuarter + 1
		label := fmt.Sprintf("%d Q%d", date.Year(), quarter)
		buckets[label] = append(buckets[label], commit)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}

	// Labels are fixed width within a year, so a string sort is
	// chronological.
	sort.Strings(labels)

	periods := make([]Period, 0, len(labels))

	prevAvg := 0.0
	hasPrev := false

	for _, label := range labels {
		period := buildPeriod(label, buckets[label])

		switch {
		case !hasPrev:
			period.Direction = DirectionStable
		case period.AvgChurn > prevAvg*upFactor:
			period.Direction = DirectionUp
		case period.AvgChurn < prevAvg*downFactor:
			period.Direction = DirectionDown
		default:
			period.Direction = DirectionStable
		}

		periods = append(periods, period)
		prevAvg = period.AvgChurn
		hasPrev = true
	}

	return &Metrics{Periods: periods}
}

// buildPeriod aggregates one quarter's commits.
func buildPeriod(label string, commits []history.Commit) Period {
	var lines history.Stats

	files := make(map[string]struct{})

	for _, commit := range commits {
		for _, fc := range commit.Files {
			files[fc.Path] = struct{}{}
			lines.Add(fc)
		}
	}

	avg := 0.0
	if len(commits) > 0 {
		avg = float64(lines.Churn()) / float64(len(commits))
	}

	return Period{
		Label:          label,
		CommitCount:    len(commits),
		TotalAdditions: lines.Additions,
		TotalDeletions: lines.Deletions,
		AvgChurn:       avg,
		FileCount:      len(files),
	}
}

// Overall judges the whole series by comparing the mean average churn of
// the first third against the last third. Fewer than three periods is
// too little signal to call.
func Overall(periods []Period) Direction {
	if len(periods) < overallGroups {
		return DirectionStable
	}

	third := len(periods) / overallGroups
	firstMean := meanChurn(periods[:third])
	lastMean := meanChurn(periods[len(periods)-third:])

	switch {
	case lastMean > firstMean*overallUpFactor:
		return DirectionUp
	case lastMean < firstMean*overallDownFactor:
		return DirectionDown
	default:
		return DirectionStable
	}
}

// meanChurn averages the average churn over a period slice.
func meanChurn(periods []Period) float64 {
	if len(periods) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range periods {
		sum += p.AvgChurn
	}

	return sum / float64(len(periods))
}
