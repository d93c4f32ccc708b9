package config

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Defaults verifies the values used when nothing is configured.
func TestConfig_Defaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "xfce4-display-settings", cfg.DisplayApp)
	assert.Equal(t, []string{"features"}, cfg.FeaturePaths)
	assert.Equal(t, "pretty", cfg.Format)
	assert.True(t, cfg.Strict, "undefined steps should fail a manual run by default")
	assert.False(t, cfg.StopOnFailure)
	assert.Equal(t, InputModePlain, cfg.InputMode)
	assert.Empty(t, cfg.CommentLog, "comments go to stderr by default")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.InterruptTimeout)
	assert.NoError(t, cfg.Validate())
}

// TestConfig_EnvironmentVariables verifies environment variable overrides.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Helper to reset viper between tests
	resetViper := func() {
		viper.Reset()
	}

	t.Run("DISPLAYTEST_DISPLAY_APP overrides default", func(t *testing.T) {
		resetViper()
		defer resetViper()

		t.Setenv("DISPLAYTEST_DISPLAY_APP", "gnome-control-center")

		cfg := LoadConfig()

		assert.Equal(t, "gnome-control-center", cfg.DisplayApp)
	})

	t.Run("DISPLAYTEST_FEATURE_PATHS accepts several paths", func(t *testing.T) {
		resetViper()
		defer resetViper()

		t.Setenv("DISPLAYTEST_FEATURE_PATHS", "features/profiles features/hotplug.feature")

		cfg := LoadConfig()

		assert.Equal(t, []string{"features/profiles", "features/hotplug.feature"}, cfg.FeaturePaths)
	})

	t.Run("boolean switches", func(t *testing.T) {
		resetViper()
		defer resetViper()

		t.Setenv("DISPLAYTEST_STRICT", "false")
		t.Setenv("DISPLAYTEST_STOP_ON_FAILURE", "true")
		t.Setenv("DISPLAYTEST_NO_COLORS", "1")

		cfg := LoadConfig()

		assert.False(t, cfg.Strict)
		assert.True(t, cfg.StopOnFailure)
		assert.True(t, cfg.NoColors)
	})

	t.Run("input mode is case insensitive", func(t *testing.T) {
		resetViper()
		defer resetViper()

		t.Setenv("DISPLAYTEST_INPUT_MODE", "Interactive")

		cfg := LoadConfig()

		assert.Equal(t, InputModeInteractive, cfg.InputMode)
	})

	t.Run("remaining string and duration settings", func(t *testing.T) {
		resetViper()
		defer resetViper()

		t.Setenv("DISPLAYTEST_FORMAT", "cucumber")
		t.Setenv("DISPLAYTEST_TAGS", "@hotplug && ~@wip")
		t.Setenv("DISPLAYTEST_COMMENT_LOG", "/tmp/comments.log")
		t.Setenv("DISPLAYTEST_LOG_LEVEL", "debug")
		t.Setenv("DISPLAYTEST_INTERRUPT_TIMEOUT", "5s")

		cfg := LoadConfig()

		assert.Equal(t, "cucumber", cfg.Format)
		assert.Equal(t, "@hotplug && ~@wip", cfg.Tags)
		assert.Equal(t, "/tmp/comments.log", cfg.CommentLog)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.InterruptTimeout)
	})

	t.Run("nothing set keeps defaults", func(t *testing.T) {
		resetViper()
		defer resetViper()

		assert.Equal(t, Defaults(), LoadConfig())
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "empty display app", mutate: func(c *Config) { c.DisplayApp = " " }, wantErr: ErrEmptyDisplayApp},
		{name: "empty format", mutate: func(c *Config) { c.Format = "" }, wantErr: ErrEmptyFormat},
		{name: "unknown input mode", mutate: func(c *Config) { c.InputMode = "voice" }, wantErr: ErrUnknownInputMode},
		{name: "interactive mode", mutate: func(c *Config) { c.InputMode = InputModeInteractive }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
