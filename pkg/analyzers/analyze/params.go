// Package analyze holds the output format contract and the tuning knobs
// shared by the history analyzers.
package analyze

import "time"

const (
	// DefaultTopN is the default number of rows each analyzer reports.
	DefaultTopN = 10

	// DefaultDirDepth is the default number of leading path segments used
	// to group files into directories.
	DefaultDirDepth = 2

	// DefaultActiveDays is the default window, in days, after which an
	// author with no commits is considered inactive.
	DefaultActiveDays = 90
)

// Params bundles the tuning knobs shared by the history analyzers.
type Params struct {
	// TopN caps the number of rows in each analyzer result.
	TopN int

	// DirDepth is the number of leading path segments used to group files
	// into directories for ownership analysis.
	DirDepth int

	// ActiveDays is the inactivity window for knowledge decay, in days.
	ActiveDays int

	// Now anchors all recency calculations. The zero value means the wall
	// clock at analysis time.
	Now time.Time
}

// Normalized returns a copy of p with zero or negative knobs replaced by
// their defaults and a zero Now replaced by the wall clock.
func (p Params) Normalized() Params {
	if p.TopN <= 0 {
		p.TopN = DefaultTopN
	}

	if p.DirDepth <= 0 {
		p.DirDepth = DefaultDirDepth
	}

	if p.ActiveDays <= 0 {
		p.ActiveDays = DefaultActiveDays
	}

	if p.Now.IsZero() {
		p.Now = time.Now()
	}

	return p
}
