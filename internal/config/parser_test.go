package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseThemeValid(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `
version: "1.0.0"
name: midnight
base: dark
palette:
  primary:
    base:
      light: "#4f46e5"
      dark: "#818cf8"
spacing:
  padding: [0, 1, 2, 3, 4, 6]
`)

	theme, err := ParseTheme(path)
	require.NoError(t, err)
	require.Equal(t, "midnight", theme.Name)
	require.Equal(t, "dark", theme.Base)
	require.NotNil(t, theme.Palette.Primary)
	require.Equal(t, "#818cf8", theme.Palette.Primary.Base.Dark)
}

func TestParseThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var perr *glinterrors.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseThemeMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "version: \"1.0.0\"\nname: [broken\n")
	_, err := ParseTheme(path)
	require.Error(t, err)

	var perr *glinterrors.ParseError
	require.ErrorAs(t, err, &perr)
	require.Greater(t, perr.Line, 0)
}

func TestParseThemeValidationFailure(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `
version: "1.0.0"
name: "Bad Name"
`)
	_, err := ParseTheme(path)
	require.Error(t, err)

	var verr *glinterrors.ValidationError
	require.ErrorAs(t, err, &verr)
}
