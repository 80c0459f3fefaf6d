package history //nolint:testpackage // testing internal implementation.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileChange_Churn(t *testing.T) {
	t.Parallel()

	fc := FileChange{Path: "a.go", Additions: 10, Deletions: 3}
	if fc.Churn() != 13 {
		t.Errorf("expected churn 13, got %d", fc.Churn())
	}
}

func TestFileChange_ChurnBinary(t *testing.T) {
	t.Parallel()

	// A binary change never contributes churn, even when one side parsed.
	fc := FileChange{Path: "logo.png", Additions: BinaryStat, Deletions: BinaryStat}
	if fc.Churn() != 0 {
		t.Errorf("expected churn 0 for binary change, got %d", fc.Churn())
	}

	half := FileChange{Path: "mixed.bin", Additions: 5, Deletions: BinaryStat}
	if half.Churn() != 0 {
		t.Errorf("expected churn 0 when one count is the sentinel, got %d", half.Churn())
	}
}

func TestFileChange_IsBinary(t *testing.T) {
	t.Parallel()

	require.True(t, FileChange{Additions: BinaryStat, Deletions: BinaryStat}.IsBinary())
	require.True(t, FileChange{Additions: 1, Deletions: BinaryStat}.IsBinary())
	require.False(t, FileChange{Additions: 0, Deletions: 0}.IsBinary())
}

func TestCommit_Date(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local).Unix()
	c := Commit{Hash: "abc", Timestamp: ts}

	got := c.Date()
	require.Equal(t, 2024, got.Year())
	require.Equal(t, time.March, got.Month())
	require.Equal(t, 15, got.Day())
}

func TestStats_SkipsSentinels(t *testing.T) {
	t.Parallel()

	var s Stats

	s.Add(FileChange{Additions: 10, Deletions: 2})
	s.Add(FileChange{Additions: BinaryStat, Deletions: BinaryStat})
	s.Add(FileChange{Additions: 3, Deletions: BinaryStat})

	require.Equal(t, 13, s.Additions)
	require.Equal(t, 2, s.Deletions)
	require.Equal(t, 15, s.Churn())
}
