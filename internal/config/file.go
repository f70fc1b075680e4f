package config

// This file layers a YAML config file and MEDIASWEEP_* environment variables
// over the defaults. Flags are applied last by [Flags.Apply].

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides (MEDIASWEEP_MEDIA_DIR, ...).
const EnvPrefix = "MEDIASWEEP"

// LoadFile decodes the YAML file at path into cfg. Keys absent from the file
// keep their current value; unknown keys are an error. An empty file is a no-op.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// envOverrides mirrors the environment-settable subset of Config. Zero values
// mean "not set" and leave cfg untouched.
type envOverrides struct {
	LanguageDir string   `envconfig:"LANGUAGE_DIR"`
	DocumentExt string   `envconfig:"DOCUMENT_EXT"`
	MediaDir    string   `envconfig:"MEDIA_DIR"`
	ArchiveDir  string   `envconfig:"ARCHIVE_DIR"`
	KeepNames   []string `envconfig:"KEEP_NAMES"`
	OnCollision string   `envconfig:"ON_COLLISION"`
	LogFile     string   `envconfig:"LOG_FILE"`
}

// ApplyEnv copies any MEDIASWEEP_* variables that are set into cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("load config from env: %w", err)
	}
	if env.LanguageDir != "" {
		cfg.LanguageDirName = env.LanguageDir
	}
	if env.DocumentExt != "" {
		cfg.DocumentExtension = env.DocumentExt
	}
	if env.MediaDir != "" {
		cfg.MediaDirName = env.MediaDir
	}
	if env.ArchiveDir != "" {
		cfg.ArchiveDirName = env.ArchiveDir
	}
	if len(env.KeepNames) > 0 {
		cfg.KeepNames = env.KeepNames
	}
	if env.OnCollision != "" {
		cfg.OnCollision = CollisionPolicy(env.OnCollision)
	}
	if env.LogFile != "" {
		cfg.LogFile = env.LogFile
	}
	return nil
}
