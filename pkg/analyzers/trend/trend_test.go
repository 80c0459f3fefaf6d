package trend

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

const floatDelta = 1e-9

func commitAt(year int, month time.Month, adds, dels int, paths ...string) history.Commit {
	files := make([]history.FileChange, len(paths))
	for i, p := range paths {
		files[i] = history.FileChange{Path: p, Additions: adds, Deletions: dels}
	}

	return history.Commit{
		Hash:        fmt.Sprintf("h-%d-%d-%d-%d-%s", year, month, adds, dels, paths[0]),
		AuthorName:  "Dev",
		AuthorEmail: "dev@example.com",
		Timestamp:   time.Date(year, month, 15, 12, 0, 0, 0, time.UTC).Unix(),
		Files:       files,
	}
}

func periodsWithAvgs(avgs ...float64) []Period {
	periods := make([]Period, len(avgs))
	for i, avg := range avgs {
		periods[i] = Period{Label: fmt.Sprintf("2024 Q%d", i+1), AvgChurn: avg}
	}

	return periods
}

// --- Analyze Tests ---.

func TestAnalyze_Empty(t *testing.T) {
	t.Parallel()

	m := Analyze(nil)

	require.NotNil(t, m)
	assert.Empty(t, m.Periods)
}

func TestAnalyze_BucketsByQuarter(t *testing.T) {
	t.Parallel()

	commits := []history.Commit{
		commitAt(2024, time.December, 10, 0, "a.go"),
		commitAt(2024, time.October, 10, 0, "b.go"),
		commitAt(2024, time.July, 10, 0, "c.go"),
		commitAt(2024, time.April, 10, 0, "d.go"),
		commitAt(2024, time.January, 10, 0, "e.go"),
		commitAt(2025, time.February, 10, 0, "f.go"),
	}

	m := Analyze(commits)

	require.Len(t, m.Periods, 5)

	labels := make([]string, len(m.Periods))
	for i, p := range m.Periods {
		labels[i] = p.Label
	}

	assert.Equal(t, []string{"2024 Q1", "2024 Q2", "2024 Q3", "2024 Q4", "2025 Q1"}, labels)
	// October and December share a quarter.
	assert.Equal(t, 2, m.Periods[3].CommitCount)
}

func TestAnalyze_PeriodAggregates(t *testing.T) {
	t.Parallel()

	commits := []history.Commit{
		commitAt(2024, time.January, 10, 0, "a.go"),
		commitAt(2024, time.February, 5, 5, "a.go"),
	}

	m := Analyze(commits)

	require.Len(t, m.Periods, 1)

	period := m.Periods[0]
	assert.Equal(t, 2, period.CommitCount)
	assert.Equal(t, 15, period.TotalAdditions)
	assert.Equal(t, 5, period.TotalDeletions)
	assert.InDelta(t, 10.0, period.AvgChurn, floatDelta)
	assert.Equal(t, 1, period.FileCount)
	assert.Equal(t, DirectionStable, period.Direction)
}

func TestAnalyze_BinaryFilesCountedButNotSummed(t *testing.T) {
	t.Parallel()

	commit := commitAt(2024, time.January, 10, 5, "a.go")
	commit.Files = append(commit.Files, history.FileChange{
		Path:      "logo.png",
		Additions: history.BinaryStat,
		Deletions: history.BinaryStat,
	})

	m := Analyze([]history.Commit{commit})

	require.Len(t, m.Periods, 1)
	assert.Equal(t, 10, m.Periods[0].TotalAdditions)
	assert.Equal(t, 5, m.Periods[0].TotalDeletions)
	assert.Equal(t, 2, m.Periods[0].FileCount)
}

func TestAnalyze_RisingChurnTurnsUp(t *testing.T) {
	t.Parallel()

	commits := []history.Commit{
		commitAt(2024, time.January, 100, 0, "a.go"),
		commitAt(2024, time.April, 120, 0, "a.go"),
		commitAt(2024, time.July, 150, 0, "a.go"),
		commitAt(2024, time.October, 200, 0, "a.go"),
	}

	m := Analyze(commits)

	require.Len(t, m.Periods, 4)
	assert.Equal(t, DirectionStable, m.Periods[0].Direction)
	assert.Equal(t, DirectionUp, m.Periods[1].Direction)
	assert.Equal(t, DirectionUp, m.Periods[2].Direction)
	assert.Equal(t, DirectionUp, m.Periods[3].Direction)
}

func TestAnalyze_FallingChurnTurnsDown(t *testing.T) {
	t.Parallel()

	commits := []history.Commit{
		commitAt(2024, time.January, 100, 0, "a.go"),
		commitAt(2024, time.April, 80, 0, "a.go"),
	}

	m := Analyze(commits)

	require.Len(t, m.Periods, 2)
	assert.Equal(t, DirectionDown, m.Periods[1].Direction)
}

func TestAnalyze_SmallMovesStayStable(t *testing.T) {
	t.Parallel()

	commits := []history.Commit{
		commitAt(2024, time.January, 100, 0, "a.go"),
		commitAt(2024, time.April, 110, 0, "a.go"),
		commitAt(2024, time.July, 98, 0, "a.go"),
	}

	m := Analyze(commits)

	require.Len(t, m.Periods, 3)
	assert.Equal(t, DirectionStable, m.Periods[1].Direction)
	assert.Equal(t, DirectionStable, m.Periods[2].Direction)
}

// --- Overall Tests ---.

func TestOverall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		avgs []float64
		want Direction
	}{
		{"too short", []float64{10, 100}, DirectionStable},
		{"rising", []float64{10, 50, 100}, DirectionUp},
		{"falling", []float64{100, 50, 10}, DirectionDown},
		{"flat", []float64{100, 100, 100}, DirectionStable},
		{"long rising", []float64{10, 10, 30, 40, 50, 100, 100}, DirectionUp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Overall(periodsWithAvgs(tc.avgs...)))
		})
	}
}

// --- Direction Tests ---.

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "STABLE", DirectionStable.String())
	assert.Equal(t, "UP", DirectionUp.String())
	assert.Equal(t, "DOWN", DirectionDown.String())
}
