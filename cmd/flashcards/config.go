package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultFile        = "flashcards.txt"
	defaultWaitSeconds = 5.0
)

// appConfig holds the resolved runtime configuration.
type appConfig struct {
	File string
	Wait time.Duration
}

// newFlagSet declares the CLI surface. Kept separate from main so config
// tests can parse against the same definitions.
func newFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("flashcards", flag.ContinueOnError)
	flags.StringP("flashcards", "f", defaultFile, "flashcard file")
	flags.Float64P("wait", "w", defaultWaitSeconds, "seconds between flashcards (fractional allowed)")
	flags.String("config", "", "config file (default is $HOME/.config/flashcards/config.yml)")
	flags.BoolP("version", "V", false, "print version information")
	return flags
}

// loadConfig resolves configuration in layers: defaults, then the config
// file, then FLASHCARDS_* environment variables, then explicit flags.
func loadConfig(configPath string, flags *flag.FlagSet) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("FLASHCARDS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("flashcards", defaultFile)
	v.SetDefault("wait", defaultWaitSeconds)

	if err := v.BindPFlags(flags); err != nil {
		return cfg, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "flashcards", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	waitSec := v.GetFloat64("wait")
	if waitSec <= 0 {
		return cfg, fmt.Errorf("wait must be greater than zero, got %v", waitSec)
	}

	cfg.File = v.GetString("flashcards")
	cfg.Wait = time.Duration(waitSec * float64(time.Second))
	return cfg, nil
}
