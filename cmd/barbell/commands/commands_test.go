package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BARBELL_SHAPE", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{
		"--state-dir", dir,
		"--env-file", filepath.Join(dir, "missing.env"),
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTotal_Default(t *testing.T) {
	out, err := run(t, t.TempDir(), "total")
	require.NoError(t, err)
	assert.Equal(t, "45\n", out)
}

func TestAddRemoveBar_Persist(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "add", "45", "25", "10")
	require.NoError(t, err)
	_, err = run(t, dir, "remove", "1")
	require.NoError(t, err)
	out, err := run(t, dir, "bar", "35")
	require.NoError(t, err)
	assert.Contains(t, out, "plates: [45, 10]")

	out, err = run(t, dir, "total")
	require.NoError(t, err)
	assert.Equal(t, "90\n", out)

	raw, err := os.ReadFile(filepath.Join(dir, "plates.json"))
	require.NoError(t, err)
	assert.Equal(t, "[45,10]", strings.TrimSpace(string(raw)))
}

func TestAdd_RejectsNonCatalogPlate(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "add", "5", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no 20 plate")

	out, err := run(t, dir, "total")
	require.NoError(t, err)
	assert.Equal(t, "45\n", out, "nothing added when any weight is invalid")
}

func TestBar_RejectsNonCatalogBar(t *testing.T) {
	_, err := run(t, t.TempDir(), "bar", "20")
	require.Error(t, err)
}

func TestRemove_OutOfRangeIsNoop(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "10")
	require.NoError(t, err)

	out, err := run(t, dir, "remove", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "plates: [10]")

	_, err = run(t, dir, "remove", "first")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "bar", "15")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "45")
	require.NoError(t, err)

	out, err := run(t, dir, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 45")
}

func TestEphemeral_DoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "--ephemeral", "add", "45")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "plates.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestShow_DrawsBar(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "45")
	require.NoError(t, err)

	out, err := run(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 90")
	assert.Contains(t, out, "█")
}

func TestShape_InvalidFlag(t *testing.T) {
	_, err := run(t, t.TempDir(), "--shape", "hexagon", "total")
	assert.Error(t, err)
}

func TestExport_XLSXFromExtension(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "25", "10")
	require.NoError(t, err)

	path := filepath.Join(dir, "loadout.xlsx")
	out, err := run(t, dir, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Loadout")
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "Total", last[0])
	assert.Contains(t, last, "80")
}

func TestExport_PDFExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadout.out")

	_, err := run(t, dir, "export", "--format", "pdf", "-o", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestExport_RequiresOutput(t *testing.T) {
	_, err := run(t, t.TempDir(), "export")
	assert.Error(t, err)
}

func TestWriteFile_RemovesPartialFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadout.pdf")
	boom := errors.New("boom")

	err := writeFile(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("%PDF-1.3 truncated"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial file left behind")
}

func TestStateDirFlag_WorksWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("BARBELL_STATE_DIR", "")

	out, err := run(t, t.TempDir(), "total")
	require.NoError(t, err)
	assert.Equal(t, "45\n", out)
}
