package gitlog //nolint:testpackage // testing internal implementation.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitxray/pkg/history"
)

func logBlock(hash, name, email, ts, subject string, numstat ...string) string {
	lines := []string{recordSeparator, hash, name, email, ts, subject}
	lines = append(lines, numstat...)

	return strings.Join(lines, "\n") + "\n"
}

func TestParseLog_SingleCommit(t *testing.T) {
	t.Parallel()

	output := logBlock(
		"a1b2c3", "Alice Smith", "alice@example.com", "1700000000", "Add parser",
		"10\t2\tsrc/parser.go",
		"0\t5\tsrc/old.go",
	)

	commits := parseLog(output)
	require.Len(t, commits, 1)

	c := commits[0]
	require.Equal(t, "a1b2c3", c.Hash)
	require.Equal(t, "Alice Smith", c.AuthorName)
	require.Equal(t, "alice@example.com", c.AuthorEmail)
	require.Equal(t, int64(1700000000), c.Timestamp)
	require.Equal(t, "Add parser", c.Subject)
	require.Len(t, c.Files, 2)
	require.Equal(t, history.FileChange{Path: "src/parser.go", Additions: 10, Deletions: 2}, c.Files[0])
}

func TestParseLog_MultipleCommits(t *testing.T) {
	t.Parallel()

	output := logBlock("c1", "A", "a@x.com", "1700000000", "first", "1\t1\ta.go") +
		logBlock("c2", "B", "b@x.com", "1700000100", "second", "2\t0\tb.go")

	commits := parseLog(output)
	require.Len(t, commits, 2)
	require.Equal(t, "c1", commits[0].Hash)
	require.Equal(t, "c2", commits[1].Hash)
}

func TestParseLog_BinarySentinel(t *testing.T) {
	t.Parallel()

	output := logBlock("c1", "A", "a@x.com", "1700000000", "add logo",
		"-\t-\tassets/logo.png")

	commits := parseLog(output)
	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 1)

	fc := commits[0].Files[0]
	require.Equal(t, history.BinaryStat, fc.Additions)
	require.Equal(t, history.BinaryStat, fc.Deletions)
	require.True(t, fc.IsBinary())
	require.Equal(t, 0, fc.Churn())
}

func TestParseLog_SkipsMalformedTimestamp(t *testing.T) {
	t.Parallel()

	output := logBlock("bad", "A", "a@x.com", "not-a-number", "broken", "1\t1\ta.go") +
		logBlock("good", "B", "b@x.com", "1700000000", "fine", "1\t1\tb.go")

	commits := parseLog(output)
	require.Len(t, commits, 1)
	require.Equal(t, "good", commits[0].Hash)
}

func TestParseLog_SkipsShortBlock(t *testing.T) {
	t.Parallel()

	output := recordSeparator + "\nonlyhash\nname\n" +
		logBlock("good", "B", "b@x.com", "1700000000", "fine")

	commits := parseLog(output)
	require.Len(t, commits, 1)
	require.Equal(t, "good", commits[0].Hash)
	require.Empty(t, commits[0].Files)
}

func TestParseLog_CommitWithoutFiles(t *testing.T) {
	t.Parallel()

	commits := parseLog(logBlock("c1", "A", "a@x.com", "1700000000", "empty commit"))
	require.Len(t, commits, 1)
	require.Empty(t, commits[0].Files)
}

func TestParseNumstatLine_MalformedCount(t *testing.T) {
	t.Parallel()

	_, ok := parseNumstatLine("x\t2\ta.go")
	require.False(t, ok)

	_, ok = parseNumstatLine("2\ty\ta.go")
	require.False(t, ok)

	_, ok = parseNumstatLine("too few fields")
	require.False(t, ok)
}

func TestParseNumstatLine_TabInPath(t *testing.T) {
	t.Parallel()

	fc, ok := parseNumstatLine("1\t2\tweird\tname.txt")
	require.True(t, ok)
	require.Equal(t, "weird\tname.txt", fc.Path)
}

func TestResolveRename_MiddleSegment(t *testing.T) {
	t.Parallel()

	// The brace form must never reach analyzers.
	require.Equal(t, "src/new/file.go", resolveRename("src/{old => new}/file.go"))
}

func TestResolveRename_WholePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "b.py", resolveRename("{a.py => b.py}"))
}

func TestResolveRename_Braceless(t *testing.T) {
	t.Parallel()

	// Renames with no shared prefix or suffix have no braces.
	require.Equal(t, "b.py", resolveRename("a.py => b.py"))
}

func TestResolveRename_SegmentAdded(t *testing.T) {
	t.Parallel()

	require.Equal(t, "docs/README.md", resolveRename("{ => docs}/README.md"))
}

func TestResolveRename_SegmentRemoved(t *testing.T) {
	t.Parallel()

	require.Equal(t, "README.md", resolveRename("{docs => }/README.md"))
}

func TestResolveRename_NoBrace(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain/path.go", resolveRename("plain/path.go"))
}

func TestResolveRename_CollapsesDoubleSlash(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pkg/sub/file.go", resolveRename("pkg/{orig => sub}//file.go"))
}

func TestParseLog_RenameRoundTrip(t *testing.T) {
	t.Parallel()

	output := logBlock("c1", "A", "a@x.com", "1700000000", "move files",
		"5\t5\tsrc/{core => engine}/loop.go",
		"0\t0\t{cmd => tools}/main.go",
	)

	commits := parseLog(output)
	require.Len(t, commits, 1)

	for _, fc := range commits[0].Files {
		require.NotContains(t, fc.Path, "{")
		require.NotContains(t, fc.Path, "=>")
	}

	require.Equal(t, "src/engine/loop.go", commits[0].Files[0].Path)
	require.Equal(t, "tools/main.go", commits[0].Files[1].Path)
}
