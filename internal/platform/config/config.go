package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the on-disk layout of a focal base directory. The document
// database and the active-session file are separate stores with separate
// sibling lock files, so goal mutations and timer transitions never contend.
type Config struct {
	BaseDir      string
	DBPath       string
	SessionPath  string
	IndexPath    string
	SettingsPath string
}

func New(baseDir string) (Config, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".focal")
	}
	return Config{
		BaseDir:      baseDir,
		DBPath:       filepath.Join(baseDir, "db.json"),
		SessionPath:  filepath.Join(baseDir, "session.json"),
		IndexPath:    filepath.Join(baseDir, "index.db"),
		SettingsPath: filepath.Join(baseDir, "config.yaml"),
	}, nil
}
