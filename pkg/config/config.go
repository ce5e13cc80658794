// Package config loads importer settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chichermo/detentions/pkg/nablijven"
)

// Config holds the settings of one import run.
type Config struct {
	InputFile    string `validate:"required"`
	OutputDir    string `validate:"required"`
	AcademicYear int    `validate:"min=1900,max=9998"`
	Log          LogConfig
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn error"`
	Format string `validate:"omitempty,oneof=console json"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"input":         "INPUT_FILE",
	"output-dir":    "OUTPUT_DIR",
	"academic-year": "ACADEMIC_YEAR",
	"log-level":     "LOG_LEVEL",
}

// RegisterFlags adds the configuration flags to the flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("input", nablijven.DefaultInputPath, "Workbook to import")
	flags.String("output-dir", nablijven.DefaultOutputDir, "Directory for students.json and detentions.json")
	flags.Int("academic-year", nablijven.DefaultOptions().AcademicYear, "Calendar year in which the school year starts")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
}

// Load resolves the configuration. Flags set on the command line win over
// environment variables, which win over .env and the defaults. flags may be
// nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults(v)

	// SetConfigFile skips viper's search, so a missing .env surfaces as a
	// plain not-exist error rather than ConfigFileNotFoundError.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil && flag.Changed {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		InputFile:    v.GetString("INPUT_FILE"),
		OutputDir:    v.GetString("OUTPUT_DIR"),
		AcademicYear: v.GetInt("ACADEMIC_YEAR"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into import options.
func (c *Config) Options() nablijven.Options {
	return nablijven.Options{
		InputPath:    c.InputFile,
		OutputDir:    c.OutputDir,
		AcademicYear: c.AcademicYear,
	}
}

func setDefaults(v *viper.Viper) {
	defaults := nablijven.DefaultOptions()

	v.SetDefault("INPUT_FILE", defaults.InputPath)
	v.SetDefault("OUTPUT_DIR", defaults.OutputDir)
	v.SetDefault("ACADEMIC_YEAR", defaults.AcademicYear)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
