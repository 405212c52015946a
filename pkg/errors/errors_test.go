package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	t.Run("includes line number when known", func(t *testing.T) {
		t.Parallel()
		err := NewParseError("theme.yaml", 12, stderrors.New("bad mapping"))
		require.EqualError(t, err, "parse error: theme.yaml:12: bad mapping")
	})

	t.Run("omits line number when unknown", func(t *testing.T) {
		t.Parallel()
		err := NewParseError("theme.yaml", 0, stderrors.New("unexpected EOF"))
		require.EqualError(t, err, "parse error: theme.yaml: unexpected EOF")
	})

	t.Run("unwraps the underlying error", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("boom")
		err := NewParseError("theme.yaml", 3, cause)
		require.ErrorIs(t, err, cause)
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("includes field when present", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError("palette.primary", "not a hex colour", nil)
		require.EqualError(t, err, "validation error: palette.primary: not a hex colour")
	})

	t.Run("field is optional", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError("", "empty document", nil)
		require.EqualError(t, err, "validation error: empty document")
	})
}

func TestRangeError(t *testing.T) {
	t.Parallel()

	err := NewRangeError("currentPage", 12, 1, 10, 10)
	require.EqualError(t, err, "range error: currentPage=12 outside [1, 10], clamped to 10")

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, 10, rangeErr.Clamped)
}
