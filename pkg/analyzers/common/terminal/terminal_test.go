package terminal //nolint:testpackage // testing internal implementation.

import (
	"strings"
	"testing"
)

func TestDetectWidth_FromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "100")

	if width := DetectWidth(); width != 100 {
		t.Errorf("DetectWidth() = %d, want %d", width, 100)
	}
}

func TestDetectWidth_ClampsLow(t *testing.T) {
	t.Setenv("COLUMNS", "20")

	if width := DetectWidth(); width != MinWidth {
		t.Errorf("DetectWidth() = %d, want %d", width, MinWidth)
	}
}

func TestDetectWidth_ClampsHigh(t *testing.T) {
	t.Setenv("COLUMNS", "500")

	if width := DetectWidth(); width != MaxWidth {
		t.Errorf("DetectWidth() = %d, want %d", width, MaxWidth)
	}
}

func TestDetectWidth_InvalidEnv(t *testing.T) {
	t.Setenv("COLUMNS", "invalid")

	// Falls through to the tty size or DefaultWidth, both inside bounds.
	width := DetectWidth()
	if width < MinWidth || width > MaxWidth {
		t.Errorf("DetectWidth() with invalid env = %d, want within [%d, %d]", width, MinWidth, MaxWidth)
	}
}

func TestNewConfig_NoColorFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := NewConfig()
	if !cfg.NoColor {
		t.Errorf("NewConfig().NoColor with NO_COLOR=1 = %v, want true", cfg.NoColor)
	}
}

func TestColorize_AppliesCodes(t *testing.T) {
	t.Parallel()

	cfg := Config{NoColor: false}

	got := cfg.Colorize("hot", ColorRed)
	if got != "\x1b[31mhot\x1b[0m" {
		t.Errorf("Colorize() = %q, want wrapped in red codes", got)
	}
}

func TestColorize_NoColor(t *testing.T) {
	t.Parallel()

	cfg := Config{NoColor: true}

	if got := cfg.Colorize("hot", ColorRed); got != "hot" {
		t.Errorf("Colorize() with NoColor = %q, want %q", got, "hot")
	}
}

func TestColorize_None(t *testing.T) {
	t.Parallel()

	cfg := Config{NoColor: false}

	if got := cfg.Colorize("plain", ColorNone); got != "plain" {
		t.Errorf("Colorize(ColorNone) = %q, want %q", got, "plain")
	}
}

func TestColorForRisk(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  Color
	}{
		{0.9, ColorRed},
		{RiskThresholdHigh, ColorRed},
		{0.69, ColorYellow},
		{RiskThresholdMedium, ColorYellow},
		{0.39, ColorGreen},
		{0.0, ColorGreen},
	}

	for _, tc := range cases {
		if got := ColorForRisk(tc.score); got != tc.want {
			t.Errorf("ColorForRisk(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestDrawProgressBar(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value float64
		width int
		want  string
	}{
		{"zero", 0, 10, "░░░░░░░░░░"},
		{"full", 1, 10, "██████████"},
		{"partial", 0.7, 10, "███████░░░"},
		{"clamped negative", -0.5, 4, "░░░░"},
		{"clamped over one", 1.5, 4, "████"},
	}

	for _, tc := range cases {
		if got := DrawProgressBar(tc.value, tc.width); got != tc.want {
			t.Errorf("%s: DrawProgressBar(%v, %d) = %q, want %q", tc.name, tc.value, tc.width, got, tc.want)
		}
	}
}

func TestDrawStackedBar(t *testing.T) {
	t.Parallel()

	got := DrawStackedBar([]float64{0.5, 0.3}, 10)
	if got != "█████▓▓▓  " {
		t.Errorf("DrawStackedBar() = %q, want %q", got, "█████▓▓▓  ")
	}
}

func TestDrawStackedBar_ClampsOverflow(t *testing.T) {
	t.Parallel()

	got := DrawStackedBar([]float64{0.9, 0.9}, 10)
	if got != "█████████▓" {
		t.Errorf("DrawStackedBar() = %q, want %q", got, "█████████▓")
	}
}

func TestDrawStackedBar_Empty(t *testing.T) {
	t.Parallel()

	got := DrawStackedBar(nil, 4)
	if got != "    " {
		t.Errorf("DrawStackedBar(nil) = %q, want blanks", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	if got := TruncateWithEllipsis("short", 10); got != "short" {
		t.Errorf("TruncateWithEllipsis(short) = %q, want unchanged", got)
	}

	if got := TruncateWithEllipsis("averylongstring", 10); got != "averylo..." {
		t.Errorf("TruncateWithEllipsis() = %q, want %q", got, "averylo...")
	}

	if got := TruncateWithEllipsis("abcdef", 2); got != ".." {
		t.Errorf("TruncateWithEllipsis() tiny width = %q, want %q", got, "..")
	}
}

func TestTruncatePath_KeepsTail(t *testing.T) {
	t.Parallel()

	got := TruncatePath("pkg/analyzers/busfactor/metrics.go", 20)
	if got != "...factor/metrics.go" {
		t.Errorf("TruncatePath() = %q, want %q", got, "...factor/metrics.go")
	}

	if len(got) != 20 {
		t.Errorf("TruncatePath() length = %d, want 20", len(got))
	}
}

func TestTruncatePath_ShortUnchanged(t *testing.T) {
	t.Parallel()

	if got := TruncatePath("main.go", 20); got != "main.go" {
		t.Errorf("TruncatePath(main.go) = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight() = %q, want %q", got, "ab   ")
	}

	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight() overlong = %q, want unchanged", got)
	}
}

func TestPadLeft(t *testing.T) {
	t.Parallel()

	if got := PadLeft("42", 5); got != "   42" {
		t.Errorf("PadLeft() = %q, want %q", got, "   42")
	}
}

func TestDrawSeparator(t *testing.T) {
	t.Parallel()

	if got := DrawSeparator(4); got != "────" {
		t.Errorf("DrawSeparator(4) = %q, want %q", got, "────")
	}

	if got := DrawSeparator(0); got != "" {
		t.Errorf("DrawSeparator(0) = %q, want empty", got)
	}
}

func TestDrawHeader(t *testing.T) {
	t.Parallel()

	header := DrawHeader("HOTSPOTS", "top 10", 40)

	lines := strings.Split(header, "\n")
	if len(lines) != 3 {
		t.Fatalf("DrawHeader() produced %d lines, want 3", len(lines))
	}

	if !strings.HasPrefix(lines[0], BoxHeavyTopLeft) {
		t.Errorf("DrawHeader() top border = %q", lines[0])
	}

	if !strings.Contains(lines[1], "HOTSPOTS") || !strings.Contains(lines[1], "top 10") {
		t.Errorf("DrawHeader() content = %q", lines[1])
	}

	if !strings.HasPrefix(lines[2], BoxHeavyBottomLeft) {
		t.Errorf("DrawHeader() bottom border = %q", lines[2])
	}
}

