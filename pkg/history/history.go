// Package history defines the normalized commit history model consumed by
// all analyzers. Records are immutable once parsed.
package history

import "time"

// BinaryStat is the sentinel line count for binary file changes where git
// reports no numbers. It is never included in churn or addition/deletion sums.
const BinaryStat = -1

// FileChange is a single file touched by a commit. Path is forward-slash
// separated and already rename-resolved to the file's current name.
type FileChange struct {
	Path      string
	Additions int
	Deletions int
}

// IsBinary reports whether either line count carries the binary sentinel.
func (fc FileChange) IsBinary() bool {
	return fc.Additions == BinaryStat || fc.Deletions == BinaryStat
}

// Churn returns additions plus deletions, or 0 for binary changes.
func (fc FileChange) Churn() int {
	if fc.IsBinary() {
		return 0
	}

	return fc.Additions + fc.Deletions
}

// Commit is one commit record. AuthorEmail is the stable author identity key;
// display names vary in spelling across commits from the same person.
type Commit struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	Timestamp   int64
	Subject     string
	Files       []FileChange
}

// Date returns the commit time in the local time zone.
func (c Commit) Date() time.Time {
	return time.Unix(c.Timestamp, 0)
}

// Stats aggregates line counts across a set of file changes,
// skipping binary sentinels field by field.
type Stats struct {
	Additions int
	Deletions int
}

// Add accumulates one file change into the stats. Negative counts are
// sentinels and contribute nothing.
func (s *Stats) Add(fc FileChange) {
	if fc.Additions > 0 {
		s.Additions += fc.Additions
	}

	if fc.Deletions > 0 {
		s.Deletions += fc.Deletions
	}
}

// Churn returns the combined additions and deletions.
func (s Stats) Churn() int {
	return s.Additions + s.Deletions
}
