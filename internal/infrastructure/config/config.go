// Package config provides configuration management for the display acceptance harness.
// It uses viper for loading configuration from command-line flags, environment variables,
// and optionally config files.
//
// Configuration priority (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (with DISPLAYTEST_ prefix)
// 3. Config file (if specified)
// 4. Defaults
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the harness reads.
const EnvPrefix = "DISPLAYTEST"

// Input modes for operator answers.
const (
	InputModePlain       = "plain"
	InputModeInteractive = "interactive"
)

var (
	ErrEmptyDisplayApp  = errors.New("display app cannot be empty")
	ErrUnknownInputMode = errors.New("unknown input mode")
	ErrEmptyFormat      = errors.New("report format cannot be empty")
)

// Config holds all configuration values for the application.
type Config struct {
	// DisplayApp is the display settings application started by the launch steps.
	// Defaults to "xfce4-display-settings"
	DisplayApp string

	// FeaturePaths are the feature files or directories to run.
	// Defaults to ["features"]
	FeaturePaths []string

	// Format is the godog report format, e.g. pretty, progress, cucumber.
	// Defaults to "pretty"
	Format string

	// Tags is a godog tag expression that filters scenarios.
	Tags string

	// Strict fails the run on undefined or pending steps.
	// Defaults to true
	Strict bool

	// StopOnFailure stops the run at the first failed scenario.
	StopOnFailure bool

	// NoColors disables colored report output.
	NoColors bool

	// InputMode selects how answers are read: "plain" (line based, works with pipes)
	// or "interactive" (line editor with completion).
	// Defaults to "plain"
	InputMode string

	// CommentLog is a file operator comments are appended to.
	// Empty means standard error.
	CommentLog string

	// LogLevel is the level of harness diagnostics written to standard error.
	// Defaults to "info"
	LogLevel string

	// InterruptTimeout is how long a first Ctrl+C waits for a second one
	// before it is forgotten.
	// Defaults to 2s
	InterruptTimeout time.Duration
}

// Defaults returns a Config struct with all default values set.
func Defaults() *Config {
	return &Config{
		DisplayApp:       "xfce4-display-settings",
		FeaturePaths:     []string{"features"},
		Format:           "pretty",
		Strict:           true,
		InputMode:        InputModePlain,
		LogLevel:         "info",
		InterruptTimeout: 2 * time.Second,
	}
}

// envBindings maps viper keys to their environment variable suffixes.
var envBindings = map[string]string{
	"displayApp":       "DISPLAY_APP",
	"featurePaths":     "FEATURE_PATHS",
	"format":           "FORMAT",
	"tags":             "TAGS",
	"strict":           "STRICT",
	"stopOnFailure":    "STOP_ON_FAILURE",
	"noColors":         "NO_COLORS",
	"inputMode":        "INPUT_MODE",
	"commentLog":       "COMMENT_LOG",
	"logLevel":         "LOG_LEVEL",
	"interruptTimeout": "INTERRUPT_TIMEOUT",
}

// LoadConfig loads and returns the configuration from viper.
// It sets up environment variable bindings with the DISPLAYTEST_ prefix.
//
// The caller is expected to have set up viper with BindPFlag() calls
// for command-line flags before calling this function.
func LoadConfig() *Config {
	cfg := Defaults()

	for key, env := range envBindings {
		_ = viper.BindEnv(key, EnvPrefix+"_"+env)
	}

	if viper.IsSet("displayApp") {
		cfg.DisplayApp = viper.GetString("displayApp")
	}
	if viper.IsSet("featurePaths") {
		cfg.FeaturePaths = viper.GetStringSlice("featurePaths")
	}
	if viper.IsSet("format") {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("tags") {
		cfg.Tags = viper.GetString("tags")
	}
	if viper.IsSet("strict") {
		cfg.Strict = viper.GetBool("strict")
	}
	if viper.IsSet("stopOnFailure") {
		cfg.StopOnFailure = viper.GetBool("stopOnFailure")
	}
	if viper.IsSet("noColors") {
		cfg.NoColors = viper.GetBool("noColors")
	}
	if viper.IsSet("inputMode") {
		cfg.InputMode = strings.ToLower(viper.GetString("inputMode"))
	}
	if viper.IsSet("commentLog") {
		cfg.CommentLog = viper.GetString("commentLog")
	}
	if viper.IsSet("logLevel") {
		cfg.LogLevel = viper.GetString("logLevel")
	}
	if viper.IsSet("interruptTimeout") {
		cfg.InterruptTimeout = viper.GetDuration("interruptTimeout")
	}

	return cfg
}

// Validate reports the first setting the harness cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DisplayApp) == "" {
		return ErrEmptyDisplayApp
	}
	if strings.TrimSpace(c.Format) == "" {
		return ErrEmptyFormat
	}
	switch c.InputMode {
	case InputModePlain, InputModeInteractive:
	default:
		return errors.Wrapf(ErrUnknownInputMode, "%q", c.InputMode)
	}
	return nil
}
