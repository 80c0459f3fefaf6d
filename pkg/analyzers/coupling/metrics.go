package coupling

// Entry is one coupled file pair with its confidence score.
type Entry struct {
	FileA          string  `json:"file_a"          yaml:"file_a"`
	FileB          string  `json:"file_b"          yaml:"file_b"`
	Score          float64 `json:"score"           yaml:"score"`
	CoCommits      int     `json:"co_commits"      yaml:"co_commits"`
	TotalA         int     `json:"total_a"         yaml:"total_a"`
	TotalB         int     `json:"total_b"         yaml:"total_b"`
	CrossDirectory bool    `json:"cross_directory" yaml:"cross_directory"`
}

// Metrics holds the ranked coupled pairs for one analysis run.
type Metrics struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}
