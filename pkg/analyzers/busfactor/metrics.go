package busfactor

import "fmt"

// Risk classifies how concentrated a directory's change history is.
// Lower values are more severe.
type Risk int

// Risk tiers, ordered by severity.
const (
	RiskCritical Risk = iota
	RiskWarning
	RiskOK
)

// String returns the canonical risk label.
func (r Risk) String() string {
	switch r {
	case RiskCritical:
		return "CRITICAL"
	case RiskWarning:
		return "WARNING"
	case RiskOK:
		return "OK"
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

// Contributor is one leading author within a directory.
type Contributor struct {
	Name    string  `json:"name"    yaml:"name"`
	Email   string  `json:"email"   yaml:"email"`
	Commits int     `json:"commits" yaml:"commits"`
	Pct     float64 `json:"pct"     yaml:"pct"`
}

// Entry is one directory with its knowledge concentration assessment.
type Entry struct {
	Directory       string        `json:"directory"        yaml:"directory"`
	BusFactor       int           `json:"bus_factor"       yaml:"bus_factor"`
	TotalCommits    int           `json:"total_commits"    yaml:"total_commits"`
	TopContributors []Contributor `json:"top_contributors" yaml:"top_contributors"`
	Risk            Risk          `json:"risk"             yaml:"risk"`
}

// Metrics holds the ranked bus factor entries for one analysis run.
type Metrics struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}
