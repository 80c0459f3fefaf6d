package hotspots

// Hotspot is one ranked file with its change statistics and risk score.
type Hotspot struct {
	Path        string  `json:"path"            yaml:"path"`
	Language    string  `json:"language"        yaml:"language"`
	CommitCount int     `json:"commit_count"    yaml:"commit_count"`
	Additions   int     `json:"total_additions" yaml:"total_additions"`
	Deletions   int     `json:"total_deletions" yaml:"total_deletions"`
	Churn       int     `json:"total_churn"     yaml:"total_churn"`
	RiskScore   float64 `json:"risk_score"      yaml:"risk_score"`
}

// Metrics holds the ranked hotspot list for one analysis run.
type Metrics struct {
	Hotspots []Hotspot `json:"hotspots" yaml:"hotspots"`
}
