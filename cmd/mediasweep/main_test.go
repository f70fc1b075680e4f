package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject builds root/en with index.md referencing a.png and an images
// folder holding a.png, b.png and .keep.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	images := filepath.Join(root, "en", "images")
	require.NoError(t, os.MkdirAll(images, 0o755))
	for _, name := range []string{"a.png", "b.png", ".keep"} {
		require.NoError(t, os.WriteFile(filepath.Join(images, name), []byte(name), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "index.md"), []byte("![a](images/a.png)\n"), 0o644))
	return root
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_ArchivesUnreferenced(t *testing.T) {
	root := newProject(t)

	code, out, _ := runCLI(t, "", "--no-color", root)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(root, "en", "images", "a.png"))
	assert.FileExists(t, filepath.Join(root, "en", "images", ".keep"))
	assert.FileExists(t, filepath.Join(root, "en", "images", "archive", "b.png"))
	assert.NoFileExists(t, filepath.Join(root, "en", "images", "b.png"))
	assert.Contains(t, out, "delete the archive folders")
}

func TestRun_PromptsForRoot(t *testing.T) {
	root := newProject(t)

	code, out, _ := runCLI(t, root+"\n", "--no-color")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, promptText))
	assert.FileExists(t, filepath.Join(root, "en", "images", "archive", "b.png"))
}

func TestRun_ArgumentKeepsSurroundingSpaces(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, " spaced ")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "en", "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "images", "x.png"), nil, 0o644))

	code, _, _ := runCLI(t, "", "--no-color", root)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(root, "en", "images", "archive", "x.png"))
}

func TestRun_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	code, _, errOut := runCLI(t, "", "--no-color", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "does not exist")
	assert.NoDirExists(t, missing)
}

func TestRun_DryRunMovesNothing(t *testing.T) {
	root := newProject(t)

	code, _, _ := runCLI(t, "", "--no-color", "--dry-run", root)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(root, "en", "images", "b.png"))
	assert.NoDirExists(t, filepath.Join(root, "en", "images", "archive"))
}

func TestRun_CheckMode(t *testing.T) {
	root := newProject(t)
	code, _, _ := runCLI(t, "", "--no-color", "--check", root)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(root, "en", "images", "b.png"), "check must not move anything")

	broken := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(broken, "en"), 0o755))
	code, _, _ = runCLI(t, "", "--no-color", "-c", broken)
	assert.Equal(t, 1, code)
}

func TestRun_FailedDirectoryExitsNonZero(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "en"), 0o755))

	code, _, errOut := runCLI(t, "", "--no-color", root)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "1 of 1 directories failed")
}

func TestRun_BootstrapErrors(t *testing.T) {
	root := newProject(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus", root}},
		{"bad policy", []string{"--on-collision", "merge", root}},
		{"too many args", []string{root, root}},
		{"archive equals media", []string{"--archive-dir", "images", root}},
		{"missing config file", []string{"--config", filepath.Join(root, "none.yaml"), root}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "mediasweep: ")
		})
	}
	assert.FileExists(t, filepath.Join(root, "en", "images", "b.png"))
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	root := t.TempDir()
	media := filepath.Join(root, "fr", "media")
	require.NoError(t, os.MkdirAll(media, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(media, "x.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fr", "doc.md"), []byte("none"), 0o644))

	cfgPath := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language_dir: fr\nmedia_dir: media\narchive_dir: old\n"), 0o644))

	code, _, _ := runCLI(t, "", "--no-color", "--config", cfgPath, "--archive-dir", "stale", root)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(media, "stale", "x.png"))
	assert.NoDirExists(t, filepath.Join(media, "old"))
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, version)
}
