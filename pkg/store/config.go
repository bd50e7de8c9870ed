package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config remembers the last schedule directory across sessions,
// independently of the schedule document itself.
type Config interface {
	LatestDir() string
}

const configName = ".prodsched"

// LoadConfig reads the per-user config via viper: ~/.prodsched.json (or a
// directory named by PRODSCHED_CONFIG_PATH), with PRODSCHED_* env
// overrides. A missing config falls back to ~/Schedules.
func LoadConfig() (Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("latest_dir", filepath.Join(home, "Schedules"))
	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.SetEnvPrefix("PRODSCHED")
	viper.AutomaticEnv()

	if override := os.Getenv("PRODSCHED_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath(home)
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{Dir: viper.GetString("latest_dir")}, nil
}

// SaveLatestDir persists the chosen schedule directory to the user config
// file. Failure is non-fatal for the session; the caller decides whether
// to surface it.
func SaveLatestDir(dir string) error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("store: resolve home: %w", err)
	}
	path := filepath.Join(home, configName+".json")
	data, err := json.MarshalIndent(map[string]string{"latest_dir": dir}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write config: %w", err)
	}
	return nil
}

// SanitizeDir cleans a user-entered directory path: trims whitespace and
// stray quotes and expands a leading ~.
func SanitizeDir(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	if expanded, err := homedir.Expand(s); err == nil {
		return expanded
	}
	return s
}

type fileConfig struct {
	Dir string `json:"latest_dir"`
}

func (f *fileConfig) LatestDir() string {
	return f.Dir
}
