package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells Load where and how to persist.
type Config interface {
	BasePath() string
	Backend() string
}

// Configuration keys understood by LoadConfig.
const (
	KeyPath      = "path"
	KeyStore     = "store"
	KeyTimezone  = "timezone"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// LoadConfig reads the planner configuration from the global viper instance.
func LoadConfig() (*FileConfig, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom reads .planner.yaml, PLANNER_* environment variables and any
// flags already bound to v.
func LoadConfigFrom(v *viper.Viper) (*FileConfig, error) {
	v.SetDefault(KeyPath, "~/.planner")
	v.SetDefault(KeyStore, BackendDisk)
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetConfigName(".planner") // .yaml is implicit
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	cfg := &FileConfig{
		Path:      path,
		Store:     strings.ToLower(v.GetString(KeyStore)),
		Timezone:  v.GetString(KeyTimezone),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileConfig is the resolved planner configuration.
type FileConfig struct {
	Path      string `json:"path"`
	Store     string `json:"store"`
	Timezone  string `json:"timezone"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

var _ Config = (*FileConfig)(nil)

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Backend() string {
	return f.Store
}

// Location resolves the configured timezone. Empty and "Local" are the
// process local zone.
func (f *FileConfig) Location() (*time.Location, error) {
	switch f.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("store: timezone %q: %w", f.Timezone, err)
	}
	return loc, nil
}

// Validate checks the backend name and timezone.
func (f *FileConfig) Validate() error {
	switch f.Store {
	case BackendDisk, BackendMemory, BackendNone:
	default:
		return fmt.Errorf("store: unknown backend %q (want %s, %s or %s)", f.Store, BackendDisk, BackendMemory, BackendNone)
	}
	if f.Store == BackendDisk && strings.TrimSpace(f.Path) == "" {
		return errors.New("store: path is required for the disk backend")
	}
	if _, err := f.Location(); err != nil {
		return err
	}
	return nil
}
