package identity //nolint:testpackage // testing internal implementation.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolver_CanonicalNamePerEmail(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	r.Record("Alice Smith", "alice@example.com")
	r.Record("alice smith", "alice@example.com")

	// Last recorded name wins; one string per email.
	require.Equal(t, "alice smith", r.Name("alice@example.com"))
	require.Equal(t, 1, r.Len())
}

func TestResolver_UnknownEmailFallsBackToEmail(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	require.Equal(t, "ghost@example.com", r.Name("ghost@example.com"))
}

func TestResolver_IgnoresEmptyEmail(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	r.Record("Nobody", "")

	require.Equal(t, 0, r.Len())
}
