package analyze

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// FormatText is the human-readable output format for CLI display.
	FormatText = "text"

	// FormatJSON is the machine-readable JSON output format.
	FormatJSON = "json"

	// FormatYAML is the machine-readable YAML output format.
	FormatYAML = "yaml"

	// FormatPlot is the self-contained HTML dashboard output format.
	FormatPlot = "plot"

	// FormatHTMLAlias is a short CLI alias for plot output.
	FormatHTMLAlias = "html"
)

var (
	// ErrUnsupportedFormat indicates the requested output format is not supported.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// NormalizeFormat canonicalizes a user-provided output format string.
func NormalizeFormat(format string) string {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == FormatHTMLAlias {
		return FormatPlot
	}

	return normalized
}

// SupportedFormats returns the canonical output formats supported by every report section.
func SupportedFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatPlot}
}

// ValidateFormat checks whether a format belongs to the supported contract.
func ValidateFormat(format string) (string, error) {
	normalized := NormalizeFormat(format)
	if slices.Contains(SupportedFormats(), normalized) {
		return normalized, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}
