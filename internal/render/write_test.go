package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	path, err := Destination{}.Write(&buf, "report body", FormatText)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "report body", buf.String())
}

func TestWriteToExplicitPath(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.txt")
	path, err := Destination{Path: out}.Write(nil, "report body", FormatText)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))
}

func TestWriteSaveDerivesDatedName(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	now := func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

	path, err := Destination{Save: true, Now: now}.Write(nil, "first", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "standup_20250602.json", path)

	// A second save on the same day must not overwrite the first
	path, err = Destination{Save: true, Now: now}.Write(nil, "second", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "standup_20250602_1.json", path)

	data, err := os.ReadFile("standup_20250602.json")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}
