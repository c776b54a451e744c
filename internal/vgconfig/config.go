// Package vgconfig resolves cmd/vgrepeater's run configuration from
// (in precedence order) CLI flags, VGREPEATER_* environment variables,
// and an optional vgrepeater.yaml file, via Viper.
package vgconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved configuration for one vgrepeater run.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls the injected logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig controls where netfile.WriteResult places its output.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load resolves a Config. configPath, if non-empty, is read as an
// explicit config file; otherwise Viper looks for vgrepeater.yaml in
// the current directory. A missing config file is not an error —
// defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vgrepeater")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// SetConfigFile bypasses Viper's own search, so a missing explicit
		// path surfaces as a plain os.PathError rather than notFound.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("vgconfig: reading config: %w", err)
		}
	}

	v.SetEnvPrefix("VGREPEATER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("vgconfig: unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("output.dir", ".")
}
