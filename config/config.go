// Package config loads devkit settings from an optional YAML file and
// DEVKIT_* environment variables using Viper. Environment variables take
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable devkit reads.
	EnvPrefix = "DEVKIT"
	// DirName is the directory under the user's home holding config.yaml.
	DirName = ".devkit"
	// FileName is the default config file name.
	FileName = "config.yaml"
)

// Config is the application configuration.
type Config struct {
	ExportDir        string        `mapstructure:"export_dir" validate:"required"`
	LogFile          string        `mapstructure:"log_file"`
	LogLevel         string        `mapstructure:"log_level" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	ClipboardTimeout time.Duration `mapstructure:"clipboard_timeout" validate:"gt=0"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout" validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from path, or from ~/.devkit/config.yaml when path
// is empty. A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"export_dir", "log_file", "log_level", "clipboard_timeout", "idle_timeout"} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("export_dir", "export")
	v.SetDefault("log_file", filepath.Join(os.TempDir(), "devkit.log"))
	v.SetDefault("log_level", "INFO")
	v.SetDefault("clipboard_timeout", "30s")
	v.SetDefault("idle_timeout", "10m")
}

func readConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, DirName, FileName)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading config file: %w", err)
	}
	return nil
}
