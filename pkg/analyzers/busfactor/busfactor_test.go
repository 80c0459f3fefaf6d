package busfactor

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

const (
	aliceEmail = "alice@example.com"
	bobEmail   = "bob@example.com"

	floatDelta = 0.01
)

func commitBy(email, name string, paths ...string) history.Commit {
	files := make([]history.FileChange, len(paths))
	for i, p := range paths {
		files[i] = history.FileChange{Path: p, Additions: 1, Deletions: 0}
	}

	return history.Commit{
		Hash:        fmt.Sprintf("hash-%s-%d", email, len(paths)),
		AuthorName:  name,
		AuthorEmail: email,
		Timestamp:   1700000000,
		Files:       files,
	}
}

func repeatCommits(n int, email, name, path string) []history.Commit {
	commits := make([]history.Commit, 0, n)
	for i := range n {
		c := commitBy(email, name, path)
		c.Hash = fmt.Sprintf("hash-%s-%s-%d", email, path, i)
		commits = append(commits, c)
	}

	return commits
}

// --- DirKey Tests ---.

func TestDirKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path  string
		depth int
		want  string
	}{
		{"a/b/c/d.go", 2, "a/b/"},
		{"a/b/c.go", 2, "a/b/"},
		{"a/b.go", 2, "a/"},
		{"main.go", 2, "(root)"},
		{"a/b/c/d.go", 1, "a/"},
		{"a/b/c/d/e.go", 3, "a/b/c/"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DirKey(tc.path, tc.depth), "DirKey(%q, %d)", tc.path, tc.depth)
	}
}

// --- Analyze Tests ---.

func TestAnalyze_Empty(t *testing.T) {
	t.Parallel()

	m := Analyze(nil, Options{TopN: 10, DirDepth: 2})

	require.NotNil(t, m)
	assert.Empty(t, m.Entries)
}

func TestAnalyze_SingleAuthorIsCritical(t *testing.T) {
	t.Parallel()

	commits := repeatCommits(6, aliceEmail, "Alice", "lib/x.py")

	m := Analyze(commits, Options{TopN: 10, DirDepth: 2})

	require.Len(t, m.Entries, 1)

	entry := m.Entries[0]
	assert.Equal(t, "lib/", entry.Directory)
	assert.Equal(t, 1, entry.BusFactor)
	assert.Equal(t, 6, entry.TotalCommits)
	assert.Equal(t, RiskCritical, entry.Risk)
}

func TestAnalyze_DominantAuthorScenario(t *testing.T) {
	t.Parallel()

	commits := repeatCommits(6, aliceEmail, "Alice", "lib/x.py")
	commits = append(commits, commitBy(bobEmail, "Bob", "lib/x.py"))

	m := Analyze(commits, Options{TopN: 10, DirDepth: 2})

	require.Len(t, m.Entries, 1)

	entry := m.Entries[0]
	assert.Equal(t, 7, entry.TotalCommits)
	// Alice alone covers 6/7 which is over half.
	assert.Equal(t, 1, entry.BusFactor)
	assert.Equal(t, RiskCritical, entry.Risk)

	require.Len(t, entry.TopContributors, 2)
	assert.Equal(t, "Alice", entry.TopContributors[0].Name)
	assert.Equal(t, aliceEmail, entry.TopContributors[0].Email)
	assert.Equal(t, 6, entry.TopContributors[0].Commits)
	assert.InDelta(t, 6.0/7.0*100, entry.TopContributors[0].Pct, floatDelta)
}

func TestAnalyze_CommitThreshold(t *testing.T) {
	t.Parallel()

	// Exactly five commits is included.
	m := Analyze(repeatCommits(5, aliceEmail, "Alice", "pkg/core/a.go"), Options{TopN: 10, DirDepth: 2})
	assert.Len(t, m.Entries, 1)

	// Four commits is excluded.
	m = Analyze(repeatCommits(4, aliceEmail, "Alice", "pkg/core/a.go"), Options{TopN: 10, DirDepth: 2})
	assert.Empty(t, m.Entries)
}

func TestAnalyze_TwoEvenAuthorsAreWarning(t *testing.T) {
	t.Parallel()

	commits := repeatCommits(3, aliceEmail, "Alice", "srv/api/a.go")
	commits = append(commits, repeatCommits(3, bobEmail, "Bob", "srv/api/b.go")...)

	m := Analyze(commits, Options{TopN: 10, DirDepth: 2})

	require.Len(t, m.Entries, 1)
	// 3 of 6 is exactly half, not over it, so a second author is needed.
	assert.Equal(t, 2, m.Entries[0].BusFactor)
	assert.Equal(t, RiskWarning, m.Entries[0].Risk)
}

func TestAnalyze_DedupesDirectoriesPerCommit(t *testing.T) {
	t.Parallel()

	var commits []history.Commit
	for range 5 {
		commits = append(commits, commitBy(aliceEmail, "Alice", "pkg/core/a.go", "pkg/core/b.go"))
	}

	m := Analyze(commits, Options{TopN: 10, DirDepth: 2})

	require.Len(t, m.Entries, 1)
	// Two files in the same directory within one commit count once.
	assert.Equal(t, 5, m.Entries[0].TotalCommits)
}

func TestAnalyze_SortsBySeverityThenCommits(t *testing.T) {
	t.Parallel()

	var commits []history.Commit

	// ok/: four authors sharing evenly, so two never cover over half.
	for i := range 3 {
		for _, who := range []string{"alice", "bob", "carol", "dave"} {
			c := commitBy(who+"@example.com", who, "ok/app/main.go")
			c.Hash = fmt.Sprintf("hash-ok-%s-%d", who, i)
			commits = append(commits, c)
		}
	}

	// solo/: one author, smaller volume.
	commits = append(commits, repeatCommits(5, aliceEmail, "Alice", "solo/tool/main.go")...)

	m := Analyze(commits, Options{TopN: 10, DirDepth: 1})

	require.Len(t, m.Entries, 2)
	// CRITICAL sorts before OK despite fewer commits.
	assert.Equal(t, "solo/", m.Entries[0].Directory)
	assert.Equal(t, RiskCritical, m.Entries[0].Risk)
	assert.Equal(t, "ok/", m.Entries[1].Directory)
	assert.Equal(t, RiskOK, m.Entries[1].Risk)
}

func TestAnalyze_TruncatesToTopN(t *testing.T) {
	t.Parallel()

	var commits []history.Commit
	for _, dir := range []string{"a", "b", "c"} {
		commits = append(commits, repeatCommits(5, aliceEmail, "Alice", dir+"/x/file.go")...)
	}

	m := Analyze(commits, Options{TopN: 2, DirDepth: 1})

	assert.Len(t, m.Entries, 2)
}

func TestAnalyze_CapsContributors(t *testing.T) {
	t.Parallel()

	var commits []history.Commit
	for i := range 7 {
		email := fmt.Sprintf("dev%d@example.com", i)
		commits = append(commits, commitBy(email, fmt.Sprintf("Dev %d", i), "pkg/core/a.go"))
	}

	m := Analyze(commits, Options{TopN: 10, DirDepth: 2})

	require.Len(t, m.Entries, 1)
	assert.Len(t, m.Entries[0].TopContributors, 5)
}

// --- Risk Tests ---.

func TestRisk_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CRITICAL", RiskCritical.String())
	assert.Equal(t, "WARNING", RiskWarning.String())
	assert.Equal(t, "OK", RiskOK.String())
}

func TestRisk_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Entry{Directory: "lib/", Risk: RiskCritical, TopContributors: []Contributor{}})

	require.NoError(t, err)
	assert.Contains(t, string(data), `"risk":"CRITICAL"`)
}
