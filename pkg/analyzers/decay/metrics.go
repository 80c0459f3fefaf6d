package decay

import (
	"fmt"
	"time"
)

// Risk classifies how abandoned a file is. Lower values are more severe.
type Risk int

// Risk tiers, ordered by severity.
const (
	RiskStale Risk = iota
	RiskAging
	RiskFresh
)

// String returns the canonical risk label.
func (r Risk) String() string {
	switch r {
	case RiskStale:
		return "STALE"
	case RiskAging:
		return "AGING"
	case RiskFresh:
		return "FRESH"
	default:
		return fmt.Sprintf("Risk(%d)", int(r))
	}
}

// MarshalJSON encodes the risk as its canonical label.
func (r Risk) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// MarshalYAML encodes the risk as its canonical label.
func (r Risk) MarshalYAML() (any, error) {
	return r.String(), nil
}

// Entry is one file whose last maintainer may be gone.
type Entry struct {
	Path         string    `json:"path"          yaml:"path"`
	LastAuthor   string    `json:"last_author"   yaml:"last_author"`
	LastDate     time.Time `json:"last_date"     yaml:"last_date"`
	DaysStale    int       `json:"days_stale"    yaml:"days_stale"`
	AuthorActive bool      `json:"author_active" yaml:"author_active"`
	Risk         Risk      `json:"risk"          yaml:"risk"`
}

// Metrics holds the ranked decay entries for one analysis run.
type Metrics struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}
