package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/MooresLaw/src/dataset"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDefaultOutputPathIsSourceRelative(t *testing.T) {
	p := defaultOutputPath()
	assert.Equal(t, outputFileName, filepath.Base(p))
	wd, err := os.Getwd()
	require.NoError(t, err)
	// go test runs in the package directory, which is where main.go lives
	assert.Equal(t, wd, filepath.Dir(p))
}

func TestRenderWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fig.png")
	_, stderr, err := runCLI(t, "--output", out, "--dpi", "40", "--locale", "de")
	require.NoError(t, err)
	assert.Contains(t, stderr, "figure written")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}

func TestRenderFailsOnUnwritableOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nope", "fig.png")
	_, _, err := runCLI(t, "--output", out, "--dpi", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")
}

func TestRunExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := filepath.Join(t.TempDir(), "nope", "fig.png")
	assert.Equal(t, 1, run([]string{"--output", out, "--dpi", "40"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "mooreslaw failed")
	assert.Contains(t, stderr.String(), "create output")

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, 0, run([]string{"table", "--format", "csv"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Intel 4004")
	assert.NotContains(t, stderr.String(), "mooreslaw failed")
}

func TestRenderRejectsBadDPI(t *testing.T) {
	_, _, err := runCLI(t, "--output", filepath.Join(t.TempDir(), "x.png"), "--dpi", "0")
	require.Error(t, err)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := runCLI(t, "extra")
	require.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.png")
	cfg := filepath.Join(dir, "mooreslaw.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("output = \""+filepath.ToSlash(out)+"\"\ndpi = 40\n"), 0o644))
	t.Setenv("MOORESLAW_CAPTION", "from env")

	v := newViper()
	require.NoError(t, readConfigFile(v, cfg, newLogger(&bytes.Buffer{}, true, 0)))
	c, err := resolveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(out), c.Output)
	assert.Equal(t, 40.0, c.DPI)
	assert.Equal(t, "from env", c.Caption)
	assert.Equal(t, "en", c.Locale)

	_, _, err = runCLI(t, "--config", cfg)
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "table")
	require.Error(t, err)
}

func TestTableText(t *testing.T) {
	stdout, _, err := runCLI(t, "table")
	require.NoError(t, err)
	for _, want := range []string{"Intel 4004", "2,300", "2.3K", "Seagate Exos", "26,000", "26.0TB", "100MB"} {
		assert.Contains(t, stdout, want)
	}
}

func TestTableCSVStorageOnly(t *testing.T) {
	stdout, _, err := runCLI(t, "table", "--format", "csv", "--dataset", "storage")
	require.NoError(t, err)
	recs, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 15)
	assert.Equal(t, rowHeaders, recs[0])
	assert.Equal(t, []string{"storage", "1971", "IBM 3330", "0.1", "100MB"}, recs[1])
}

func TestTableJSONFromDatasetFile(t *testing.T) {
	data := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(data, []byte(`
transistors:
  - {year: 1990, device: Chip, value: 1000}
`), 0o644))
	stdout, _, err := runCLI(t, "table", "-f", "json", "--dataset", "transistors", "--data", data)
	require.NoError(t, err)
	var rows []row
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, row{Dataset: "transistors", Year: 1990, Device: "Chip", Value: 1000, Label: "1.0K"}, rows[0])
}

func TestTableYearFilter(t *testing.T) {
	stdout, _, err := runCLI(t, "table", "--format", "csv", "--year", "1971")
	require.NoError(t, err)
	recs, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"transistors", "1971", "Intel 4004", "2300", "2.3K"}, recs[1])
	assert.Equal(t, []string{"storage", "1971", "IBM 3330", "0.1", "100MB"}, recs[2])

	rows, err := tableRows(dataset.Builtin(), dataset.StorageName, 2007)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hitachi Deskstar 7K1000", rows[0].Device)
	assert.Equal(t, "1.0TB", rows[0].Label)

	_, err = tableRows(dataset.Builtin(), dataset.TransistorsName, 1975)
	assert.Error(t, err)
	_, _, err = runCLI(t, "table", "--year", "1975")
	assert.Error(t, err)
}

func TestTableRejectsUnknownOptions(t *testing.T) {
	_, _, err := runCLI(t, "table", "--format", "xml")
	assert.Error(t, err)
	_, _, err = runCLI(t, "table", "--dataset", "memory")
	assert.Error(t, err)
}

func TestHumanizeValue(t *testing.T) {
	assert.Equal(t, "80,000,000,000", humanizeValue(8e10))
	assert.Equal(t, "2.52", humanizeValue(2.52))
	assert.Equal(t, "0.1", humanizeValue(0.1))
}
