package config

import (
	"github.com/spf13/viper"

	"github.com/lixenwraith/super-dash/parameter"
)

// Default returns the configuration used when no file or env overrides exist
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Size:          parameter.WorldSize,
			CoinCount:     parameter.InitialCoinCount,
			ObstacleCount: parameter.ObstacleCount,
		},
		Gameplay: GameplayConfig{
			HyperdriveChance:      parameter.HyperdriveChance,
			SpawnNearPlayerChance: parameter.SpawnNearPlayerChance,
			FrameInterval:         parameter.FrameUpdateInterval,
			KeyHold:               parameter.KeyHoldWindow,
			SnapshotEvery:         parameter.SnapshotEvery,
		},
		Storage: StorageConfig{
			Type: "sqlite",
			Path: "super-dash.db",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: "super-dash.log",
		},
	}
}

// registerDefaults seeds every key so env overrides resolve without a config file
func registerDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("world.size", d.World.Size)
	v.SetDefault("world.coin_count", d.World.CoinCount)
	v.SetDefault("world.obstacle_count", d.World.ObstacleCount)
	v.SetDefault("world.seed", d.World.Seed)

	v.SetDefault("gameplay.hyperdrive_chance", d.Gameplay.HyperdriveChance)
	v.SetDefault("gameplay.spawn_near_player_chance", d.Gameplay.SpawnNearPlayerChance)
	v.SetDefault("gameplay.frame_interval", d.Gameplay.FrameInterval)
	v.SetDefault("gameplay.key_hold", d.Gameplay.KeyHold)
	v.SetDefault("gameplay.snapshot_every", d.Gameplay.SnapshotEvery)

	v.SetDefault("storage.type", d.Storage.Type)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.url", d.Storage.URL)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.file_path", d.Logging.FilePath)
	v.SetDefault("logging.include_caller", d.Logging.IncludeCaller)
}
