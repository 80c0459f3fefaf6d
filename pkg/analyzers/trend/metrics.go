package trend

import "fmt"

// Direction classifies how average churn moved against the prior quarter.
type Direction int

// Movement directions.
const (
	DirectionStable Direction = iota
	DirectionUp
	DirectionDown
)

// String returns the canonical direction label.
func (d Direction) String() string {
	switch d {
	case DirectionStable:
		return "STABLE"
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalJSON encodes the direction as its canonical label.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// MarshalYAML encodes the direction as its canonical label.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Period is one calendar quarter of commit activity.
type Period struct {
	Label          string    `json:"label"           yaml:"label"`
	CommitCount    int       `json:"commit_count"    yaml:"commit_count"`
	TotalAdditions int       `json:"total_additions" yaml:"total_additions"`
	TotalDeletions int       `json:"total_deletions" yaml:"total_deletions"`
	AvgChurn       float64   `json:"avg_churn"       yaml:"avg_churn"`
	FileCount      int       `json:"file_count"      yaml:"file_count"`
	Direction      Direction `json:"direction"       yaml:"direction"`
}

// Metrics holds the quarterly churn trend for one analysis run.
type Metrics struct {
	Periods []Period `json:"periods" yaml:"periods"`
}
