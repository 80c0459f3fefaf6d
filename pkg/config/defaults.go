package config

import "time"

// Git defaults.
const (
	DefaultGitTimeout = 2 * time.Minute
	DefaultMaxCommits = 0
	DefaultSkipVendor = false
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Output defaults.
const (
	DefaultOutputFormat = "text"
	DefaultNoColor      = false
)
