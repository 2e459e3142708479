package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/super-dash/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "super-dash.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[world]
coin_count = 12
seed = 7

[gameplay]
hyperdrive_chance = 0
frame_interval = "20ms"

[storage]
type = "sqlite"
path = ":memory:"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.World.CoinCount)
	assert.Equal(t, uint64(7), cfg.World.Seed)
	assert.Equal(t, parameter.WorldSize, cfg.World.Size)
	assert.Zero(t, cfg.Gameplay.HyperdriveChance, "explicit zero must survive defaults")
	assert.Equal(t, 20*time.Millisecond, cfg.Gameplay.FrameInterval)
	assert.Equal(t, ":memory:", cfg.Storage.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SD_WORLD_COIN_COUNT", "33")
	t.Setenv("SD_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfig(writeConfig(t, "[world]\ncoin_count = 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.World.CoinCount)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"chance above one", "[gameplay]\nspawn_near_player_chance = 1.5\n"},
		{"unknown storage", "[storage]\ntype = \"redis\"\n"},
		{"postgres without url", "[storage]\ntype = \"postgres\"\n"},
		{"zero coins", "[world]\ncoin_count = 0\n"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg := LoadConfigOrDefault(writeConfig(t, "[world]\ncoin_count = -1\n"))
	assert.Equal(t, Default(), cfg)
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.World.Seed = 5
	cfg.World.CoinCount = 9
	cfg.Gameplay.HyperdriveChance = 1

	opts := cfg.EngineOptions()
	assert.Equal(t, uint64(5), opts.Seed)
	assert.Equal(t, 9, opts.CoinCount)
	assert.Equal(t, 1.0, opts.HyperdriveChance)

	cfg.World.Seed = 0
	assert.NotZero(t, cfg.EngineOptions().Seed)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	lc := LoggingConfig{Level: "debug", Format: "json", Output: "file", FilePath: path}

	log, closer, err := lc.NewLogger()
	require.NoError(t, err)
	log.Debug("hello", "k", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, "WARN", LoggingConfig{Level: "warn"}.SlogLevel().String())
	assert.Equal(t, "INFO", LoggingConfig{Level: "nope"}.SlogLevel().String())
}
