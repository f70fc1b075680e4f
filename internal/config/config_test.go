package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/docs/project", "/docs/project"},
		{"single trailing slash", "/docs/project/", "/docs/project"},
		{"multiple trailing slashes", "/docs/project///", "/docs/project"},
		{"root path", "/", "/"},
		{"relative path", "slug", "slug"},
		{"relative with slash", "slug/", "slug"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "en", cfg.LanguageDirName)
	assert.Equal(t, ".md", cfg.DocumentExtension)
	assert.Equal(t, "images", cfg.MediaDirName)
	assert.Equal(t, "archive", cfg.ArchiveDirName)
	assert.Equal(t, CollisionFail, cfg.OnCollision)
	assert.Equal(t, []string{".keep", "banner.png"}, cfg.SortedKeepNames())
}

func TestKeepSet_DropsBlanks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeepNames = []string{"logo.svg", " ", "", " logo.svg "}
	set := cfg.KeepSet()
	assert.Len(t, set, 1)
	assert.Contains(t, set, "logo.svg")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"rename policy", func(c *Config) { c.OnCollision = CollisionRename }, false},
		{"overwrite policy", func(c *Config) { c.OnCollision = CollisionOverwrite }, false},
		{"unknown policy", func(c *Config) { c.OnCollision = "skip" }, true},
		{"empty policy", func(c *Config) { c.OnCollision = "" }, true},
		{"unknown color", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"empty language dir", func(c *Config) { c.LanguageDirName = "" }, true},
		{"nested media dir", func(c *Config) { c.MediaDirName = "static/images" }, true},
		{"dot-dot archive dir", func(c *Config) { c.ArchiveDirName = ".." }, true},
		{"archive equals media", func(c *Config) { c.ArchiveDirName = c.MediaDirName }, true},
		{"empty extension", func(c *Config) { c.DocumentExtension = "" }, true},
		{"missing root", func(c *Config) { c.Root = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Root = "/docs"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasweep.yaml")
	content := "language_dir: fr\nkeep_names:\n  - logo.svg\non_collision: rename\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(path, &cfg))

	assert.Equal(t, "fr", cfg.LanguageDirName)
	assert.Equal(t, []string{"logo.svg"}, cfg.KeepNames)
	assert.Equal(t, CollisionRename, cfg.OnCollision)
	assert.Equal(t, ".md", cfg.DocumentExtension, "absent keys keep their value")
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(path, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("langauge_dir: fr\n"), 0o644))

	cfg := DefaultConfig()
	assert.Error(t, LoadFile(path, &cfg))
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MEDIASWEEP_LANGUAGE_DIR", "de")
	t.Setenv("MEDIASWEEP_KEEP_NAMES", ".keep,cover.jpg")
	t.Setenv("MEDIASWEEP_ON_COLLISION", "overwrite")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, "de", cfg.LanguageDirName)
	assert.Equal(t, []string{".keep", "cover.jpg"}, cfg.KeepNames)
	assert.Equal(t, CollisionOverwrite, cfg.OnCollision)
	assert.Equal(t, "images", cfg.MediaDirName, "unset variables leave defaults")
}

func TestFlags_ApplyOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("mediasweep", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--ext", ".markdown", "--on-collision", "RENAME", "-n", "--no-color"}))

	cfg := DefaultConfig()
	cfg.LanguageDirName = "fr" // e.g. from a config file
	f.Apply(fs, &cfg)

	assert.Equal(t, "fr", cfg.LanguageDirName, "unchanged flag must not reset file value")
	assert.Equal(t, ".markdown", cfg.DocumentExtension)
	assert.Equal(t, CollisionRename, cfg.OnCollision)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestFlags_InvalidCollisionPolicy(t *testing.T) {
	fs := pflag.NewFlagSet("mediasweep", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--on-collision", "skip"}))
}

func TestFlags_KeepReplacesDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("mediasweep", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--keep", "a.png,b.png"}))

	cfg := DefaultConfig()
	f.Apply(fs, &cfg)
	assert.Equal(t, []string{"a.png", "b.png"}, cfg.KeepNames)
}
