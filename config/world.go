package config

import (
	"time"

	"github.com/lixenwraith/super-dash/engine"
)

// WorldConfig holds map generation settings
type WorldConfig struct {
	Size          float64 `mapstructure:"size" validate:"gte=1000"`
	CoinCount     int     `mapstructure:"coin_count" validate:"min=1,max=500"`
	ObstacleCount int     `mapstructure:"obstacle_count" validate:"min=0,max=500"`

	// Seed 0 picks a seed from the clock at startup
	Seed uint64 `mapstructure:"seed"`
}

// GameplayConfig holds tuning and host loop settings
type GameplayConfig struct {
	HyperdriveChance      float64 `mapstructure:"hyperdrive_chance" validate:"gte=0,lte=1"`
	SpawnNearPlayerChance float64 `mapstructure:"spawn_near_player_chance" validate:"gte=0,lte=1"`

	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"gte=1ms,lte=1s"`

	// KeyHold is how long a key press counts as held on terminals without release events
	KeyHold time.Duration `mapstructure:"key_hold" validate:"gte=10ms,lte=2s"`

	SnapshotEvery int `mapstructure:"snapshot_every" validate:"min=1"`
}

// EngineOptions maps the world and gameplay sections onto controller options
func (c *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.WorldSize = c.World.Size
	opts.CoinCount = c.World.CoinCount
	opts.ObstacleCount = c.World.ObstacleCount
	opts.Seed = c.World.Seed
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	opts.HyperdriveChance = c.Gameplay.HyperdriveChance
	opts.SpawnNearPlayerChance = c.Gameplay.SpawnNearPlayerChance
	opts.SnapshotEvery = c.Gameplay.SnapshotEvery
	return opts
}
