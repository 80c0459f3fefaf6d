// Package decay flags files whose last maintainer has gone quiet.
//
// A file is only as maintained as its last author. When that person has
// stopped committing anywhere in the repository, the knowledge behind the
// file is decaying no matter how healthy the code itself looks.
package decay

import (
	"sort"
	"time"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// Staleness boundaries.
const (
	// freshDays is the window inside which a file is fresh no matter who
	// touched it last.
	freshDays = 30

	// agingDays is the staleness beyond which even an active author's
	// file starts aging.
	agingDays = 180

	hoursPerDay = 24
)

// Options tunes the decay analysis.
type Options struct {
	TopN       int
	ActiveDays int

	// Now anchors staleness. Zero means the current wall clock.
	Now time.Time
}

// lastTouch records the most recent commit seen for one file.
type lastTouch struct {
	authorName  string
	authorEmail string
	date        time.Time
}

// Analyze ranks files by how stale their last maintainer is.
func Analyze(commits []history.Commit, opts Options) *Metrics {
	topN := opts.TopN
	if topN <= 0 {
		topN = analyze.DefaultTopN
	}

	activeDays := opts.ActiveDays
	if activeDays <= 0 {
		activeDays = analyze.DefaultActiveDays
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	activeCutoff := now.Add(-time.Duration(activeDays) * hoursPerDay * time.Hour)

	lastSeen := make(map[string]time.Time)
	touches := make(map[string]lastTouch)
	order := make([]string, 0)

	for _, commit := range commits {
		date := commit.Date()

		if prev, ok := lastSeen[commit.AuthorEmail]; !ok || date.After(prev) {
			lastSeen[commit.AuthorEmail] = date
		}

		for _, fc := range commit.Files {
			prev, ok := touches[fc.Path]
			if !ok {
				order = append(order, fc.Path)
			}

			if !ok || date.After(prev.date) {
				touches[fc.Path] = lastTouch{
					authorName:  commit.AuthorName,
					authorEmail: commit.AuthorEmail,
					date:        date,
				}
			}
		}
	}

	entries := make([]Entry, 0, len(touches))

	for _, path := range order {
		touch := touches[path]
		daysStale := int(now.Sub(touch.date).Hours() / hoursPerDay)
		active := !lastSeen[touch.authorEmail].Before(activeCutoff)

		risk := classify(daysStale, active)
		if risk == RiskFresh {
			continue
		}

		entries = append(entries, Entry{
			Path:         path,
			LastAuthor:   touch.authorName,
			LastDate:     touch.date,
			DaysStale:    daysStale,
			AuthorActive: active,
			Risk:         risk,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Risk != entries[j].Risk {
			return entries[i].Risk < entries[j].Risk
		}

		if entries[i].DaysStale != entries[j].DaysStale {
			return entries[i].DaysStale > entries[j].DaysStale
		}

		return entries[i].Path < entries[j].Path
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}

	return &Metrics{Entries: entries}
}

// classify maps staleness and author activity to a risk tier. A fresh
// touch wins over everything; an inactive author wins over plain age.
func classify(daysStale int, active bool) Risk {
	switch {
	case daysStale < freshDays:
		return RiskFresh
	case !active:
		return RiskStale
	case daysStale > agingDays:
		return RiskAging
	default:
		return RiskFresh
	}
}
