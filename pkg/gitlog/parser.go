package gitlog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

// headerLineCount is hash, author name, author email, timestamp, subject.
const headerLineCount = 5

// numstatFieldCount is additions, deletions, path.
const numstatFieldCount = 3

// renameBrace matches git's partial-rename syntax: prefix{old => new}suffix.
// Either side may be empty when a path segment was added or removed.
var renameBrace = regexp.MustCompile(`\{(.*?) => (.*?)\}`)

// parseLog splits raw git log output into commit records. Blocks with a
// malformed header are skipped rather than failing the whole load.
func parseLog(output string) []history.Commit {
	blocks := strings.Split(output, recordSeparator)
	commits := make([]history.Commit, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		commit, ok := parseBlock(block)
		if ok {
			commits = append(commits, commit)
		}
	}

	return commits
}

func parseBlock(block string) (history.Commit, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) < headerLineCount {
		return history.Commit{}, false
	}

	timestamp, err := strconv.ParseInt(strings.TrimSpace(lines[3]), 10, 64)
	if err != nil {
		return history.Commit{}, false
	}

	commit := history.Commit{
		Hash:        strings.TrimSpace(lines[0]),
		AuthorName:  strings.TrimSpace(lines[1]),
		AuthorEmail: strings.TrimSpace(lines[2]),
		Timestamp:   timestamp,
		Subject:     strings.TrimSpace(lines[4]),
	}

	for _, line := range lines[headerLineCount:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fc, fcOK := parseNumstatLine(line)
		if fcOK {
			commit.Files = append(commit.Files, fc)
		}
	}

	return commit, true
}

// parseNumstatLine parses one "adds<TAB>dels<TAB>path" line. Paths may
// themselves contain tabs, so only the first two fields are counts.
func parseNumstatLine(line string) (history.FileChange, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < numstatFieldCount {
		return history.FileChange{}, false
	}

	adds, addsOK := parseStat(parts[0])
	dels, delsOK := parseStat(parts[1])

	if !addsOK || !delsOK {
		return history.FileChange{}, false
	}

	return history.FileChange{
		Path:      resolveRename(strings.Join(parts[2:], "\t")),
		Additions: adds,
		Deletions: dels,
	}, true
}

// parseStat converts a numstat count. Binary files show "-" for both counts.
func parseStat(raw string) (int, bool) {
	if raw == "-" {
		return history.BinaryStat, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// resolveRename rewrites rename syntax to the new path. The braced form
// "src/{old => new}/file.go" becomes "src/new/file.go"; renames without a
// shared prefix or suffix arrive braceless as "old.go => new.go" and keep
// only the right side. Slash artifacts from empty segments are cleaned up
// afterward.
func resolveRename(path string) string {
	m := renameBrace.FindStringSubmatchIndex(path)
	if m == nil {
		if idx := strings.Index(path, " => "); idx >= 0 {
			return path[idx+len(" => "):]
		}

		return path
	}

	resolved := path[:m[0]] + path[m[4]:m[5]] + path[m[1]:]
	resolved = strings.ReplaceAll(resolved, "//", "/")

	return strings.TrimPrefix(resolved, "/")
}
