package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scene: SceneConfig{
			MaxTurns:  100,
			TiePolicy: "antagonist",
		},
		Scripting: ScriptingConfig{
			InstructionLimit: 100_000,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 100, cfg.Scene.MaxTurns)
	assert.Equal(t, "antagonist", cfg.Scene.TiePolicy)
	assert.False(t, cfg.Scene.Color)
	assert.Empty(t, cfg.Cast.Path)
	assert.Empty(t, cfg.Scripting.Dir)
	assert.Equal(t, 100_000, cfg.Scripting.InstructionLimit)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
scene:
  max_turns: 12
  tie_policy: draw
  color: true
cast:
  path: /tmp/cast.yaml
scripting:
  dir: /tmp/scripts
  instruction_limit: 500
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 12, cfg.Scene.MaxTurns)
	assert.Equal(t, "draw", cfg.Scene.TiePolicy)
	assert.True(t, cfg.Scene.Color)
	assert.Equal(t, "/tmp/cast.yaml", cfg.Cast.Path)
	assert.Equal(t, "/tmp/scripts", cfg.Scripting.Dir)
	assert.Equal(t, 500, cfg.Scripting.InstructionLimit)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  max_turns: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scene.MaxTurns)
	assert.Equal(t, "antagonist", cfg.Scene.TiePolicy)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WAYFARERS_SCENE_MAX_TURNS", "7")
	t.Setenv("WAYFARERS_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scene.MaxTurns)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValuesFail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene:\n  max_turns: -1\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scene.max_turns")
}

func TestValidateLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateTiePolicy(t *testing.T) {
	for _, policy := range []string{"antagonist", "protagonist", "draw", "DRAW"} {
		cfg := validConfig()
		cfg.Scene.TiePolicy = policy
		assert.NoError(t, cfg.Validate(), policy)
	}

	cfg := validConfig()
	cfg.Scene.TiePolicy = "coin-flip"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scene.tie_policy")
}

func TestValidateInstructionLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Scripting.InstructionLimit = -1
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scripting.instruction_limit")
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Scene.MaxTurns = -5
	cfg.Scene.TiePolicy = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "scene.max_turns")
	assert.Contains(t, err.Error(), "scene.tie_policy")
}

func TestLoadEnvUnboundedMaxTurns(t *testing.T) {
	t.Setenv("WAYFARERS_SCENE_MAX_TURNS", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Scene.MaxTurns)
}

func TestPropertyNonNegativeMaxTurnsValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Scene.MaxTurns = rapid.IntRange(0, 1_000_000).Draw(t, "max_turns")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("max_turns %d should be valid: %v", cfg.Scene.MaxTurns, err)
		}
	})
}

func TestPropertyNegativeMaxTurnsInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Scene.MaxTurns = rapid.IntRange(-1000, -1).Draw(t, "max_turns")
		if err := cfg.Validate(); err == nil {
			t.Fatalf("max_turns %d should be invalid", cfg.Scene.MaxTurns)
		}
	})
}
