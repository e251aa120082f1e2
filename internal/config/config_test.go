package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "generate"}
	cmd.Flags().Int("w", 0, "")
	cmd.Flags().Int("h", 0, "")
	cmd.Flags().Int("count", 1, "")
	cmd.Flags().String("format", "png", "")
	cmd.Flags().String("outdir", ".", "")
	cmd.Flags().StringSlice("patterns", nil, "")
	return cmd
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(nil, "")
	require.NoError(t, err)
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, 1, conf.Count)
	require.Equal(t, "png", conf.Format)
	require.Equal(t, ".", conf.OutDir)
	require.Zero(t, conf.Width)
	require.Empty(t, conf.Patterns)
}

func TestLoad_Precedence(t *testing.T) {
	file := writeFile(t, "wallgen.yaml", "count: 3\nformat: tiff\nwidth: 100\nheight: 200\noutdir: /from/file\n")

	// File over defaults.
	conf, err := Load(nil, file)
	require.NoError(t, err)
	require.Equal(t, 3, conf.Count)
	require.Equal(t, "tiff", conf.Format)
	require.Equal(t, 100, conf.Width)

	// Env over file.
	t.Setenv("WALLGEN_COUNT", "5")
	t.Setenv("WALLGEN_FORMAT", "bmp")
	conf, err = Load(nil, file)
	require.NoError(t, err)
	require.Equal(t, 5, conf.Count)
	require.Equal(t, "bmp", conf.Format)

	// Explicit flag over env; unset flags fall through.
	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("count", "9"))
	conf, err = Load(cmd, file)
	require.NoError(t, err)
	require.Equal(t, 9, conf.Count)
	require.Equal(t, "bmp", conf.Format)
	require.Equal(t, 200, conf.Height)
	require.Equal(t, "/from/file", conf.OutDir)
}

func TestLoad_PatternsList(t *testing.T) {
	file := writeFile(t, "wallgen.json", `{"patterns": ["dots", "waves"]}`)
	conf, err := Load(nil, file)
	require.NoError(t, err)
	require.Equal(t, []string{"dots", "waves"}, conf.Patterns)
}

func TestLoad_VerboseForcesDebug(t *testing.T) {
	t.Setenv("WALLGEN_VERBOSE", "true")
	conf, err := Load(nil, "")
	require.NoError(t, err)
	require.Equal(t, "debug", conf.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_BadFile(t *testing.T) {
	file := writeFile(t, "broken.yaml", "count: [unterminated\n")
	_, err := Load(nil, file)
	require.Error(t, err)
}
