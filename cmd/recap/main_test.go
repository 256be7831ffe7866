package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/recap/hashid"
	"github.com/meigma/recap/internal/testutil"
)

var (
	typePhase = hashid.String("phase")
	bossID    = hashid.String("zelemboss")
)

func writeArchive(t *testing.T) string {
	t.Helper()
	phase := testutil.NewAsset(16).U32(8, 2).U8(12, 1).Bytes()
	data := testutil.Archive{Entries: []testutil.ArchiveEntry{
		{Type: typePhase, Group: 1, Instance: bossID, Data: phase, Compress: true},
		{Type: hashid.String("noun"), Group: 1, Instance: 0x42, Data: []byte("noun")},
	}}.Build(t)
	path := filepath.Join(t.TempDir(), "test.package")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"recap"}, args...))
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	pkg := writeArchive(t)

	out, err := run(t, "list", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, hashid.Format(bossID)+"."+hashid.Format(typePhase))
	assert.Contains(t, out, "0x00000042.")

	out, err = run(t, "list", "--type", "phase", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, hashid.Format(bossID)+".phase")
	assert.NotContains(t, out, "0x00000042")
	assert.Contains(t, out, "1 entries of type phase")

	out, err = run(t, "list", pkg, pkg)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("(2 entries)")))

	_, err = run(t, "list")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	t.Parallel()

	pkg := writeArchive(t)
	out, err := run(t, "decode", "--package", pkg, "--asset", "ZelemBoss.phase")
	require.NoError(t, err)
	assert.Equal(t, "phase: [Phase]\n"+
		"  gambit: [0 items]\n"+
		"  phaseType: random (0x00000002)\n"+
		"  startNode: true\n", out)

	_, err = run(t, "decode")
	require.Error(t, err)
}

func TestDecodeCommandFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "boss.phase")
	require.NoError(t, os.WriteFile(path, make([]byte, 16), 0o600))

	out, err := run(t, "decode", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "phaseType: prioritizedList (0x00000000)")
}

func TestExtractCommand(t *testing.T) {
	t.Parallel()

	pkg := writeArchive(t)
	dest := t.TempDir()

	out, err := run(t, "extract", "--out", dest, "--type", "phase", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 1 files")

	got, err := os.ReadFile(filepath.Join(dest, hashid.Format(1), hashid.Format(bossID)+".phase"))
	require.NoError(t, err)
	assert.Len(t, got, 16)

	out, err = run(t, "extract", "--out", dest, "--type", "phase", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped 1")
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "schema", "Phase")
	require.NoError(t, err)
	assert.Contains(t, out, "Phase (0x10 bytes)")
	assert.Contains(t, out, "phaseType")
	assert.Contains(t, out, "[]cGambitDefinition")

	out, err = run(t, "schema", "phaseType")
	require.NoError(t, err)
	assert.Contains(t, out, "sequential")

	out, err = run(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "NonPlayerClass")

	_, err = run(t, "schema", "NoSuchLayout")
	require.Error(t, err)
}

func TestCacheDirFlag(t *testing.T) {
	t.Parallel()

	pkg := writeArchive(t)
	cacheDir := t.TempDir()
	args := []string{"--cache-dir", cacheDir, "decode", "--package", pkg, "--asset", "ZelemBoss.phase"}

	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
