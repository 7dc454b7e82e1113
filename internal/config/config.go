// Package config resolves docmaker settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/logging"
)

// Configuration keys.
const (
	KeyOutputDir   = "output_dir"
	KeyNamespace   = "namespace"
	KeyStrictTypes = "strict_types"
	KeyDebug       = "debug"
	KeyNoColor     = "no_color"
	KeyLogFormat   = "log_format"
)

// EnvPrefix prefixes environment overrides, e.g. DOCMAKER_OUTPUT_DIR.
const EnvPrefix = "docmaker"

// FileName is the config file looked up in the home directory.
const FileName = ".docmaker"

// Config holds the resolved settings.
type Config struct {
	OutputDir   string // empty means next to the executable
	Namespace   string
	StrictTypes bool
	Debug       bool
	NoColor     bool
	LogFormat   logging.LogFormat
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyNamespace, `App\Document`)
	v.SetDefault(KeyStrictTypes, true)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyOutputDir, "")
	v.SetDefault(KeyLogFormat, string(logging.DefaultLogFormat))
}

// ReadInConfig points v at cfgFile, or at $HOME/.docmaker.yaml when cfgFile
// is empty, and enables environment overrides. A missing default file is
// not an error. It returns the file used, if any.
func ReadInConfig(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OutputDir:   v.GetString(KeyOutputDir),
		Namespace:   v.GetString(KeyNamespace),
		StrictTypes: v.GetBool(KeyStrictTypes),
		Debug:       v.GetBool(KeyDebug),
		NoColor:     v.GetBool(KeyNoColor),
	}

	format, err := logging.ParseLogFormat(v.GetString(KeyLogFormat))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogFormat, err)
	}
	cfg.LogFormat = format

	if cfg.Namespace == "" {
		return nil, fmt.Errorf("%s cannot be empty", KeyNamespace)
	}
	if err := document.CanUseNamespace(cfg.Namespace).Error(); err != nil {
		return nil, err
	}
	if cfg.OutputDir != "" {
		abs, err := filepath.Abs(cfg.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", KeyOutputDir, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyOutputDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("invalid %s: %s is not a directory", KeyOutputDir, abs)
		}
		cfg.OutputDir = abs
	}

	return cfg, nil
}
