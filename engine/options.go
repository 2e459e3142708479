package engine

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/super-dash/parameter"
)

// Options configures a controller, start from DefaultOptions
type Options struct {
	WorldSize     float64
	CoinCount     int
	ObstacleCount int
	Seed          uint64

	HyperdriveChance      float64
	SpawnNearPlayerChance float64

	// SnapshotEvery is the tick stride of sink emission
	SnapshotEvery int

	Logger *slog.Logger
}

// DefaultOptions returns the stock tuning with a fixed seed
func DefaultOptions() Options {
	return Options{
		WorldSize:             parameter.WorldSize,
		CoinCount:             parameter.InitialCoinCount,
		ObstacleCount:         parameter.ObstacleCount,
		Seed:                  1,
		HyperdriveChance:      parameter.HyperdriveChance,
		SpawnNearPlayerChance: parameter.SpawnNearPlayerChance,
		SnapshotEvery:         parameter.SnapshotEvery,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.WorldSize <= 0 {
		o.WorldSize = d.WorldSize
	}
	if o.CoinCount <= 0 {
		o.CoinCount = d.CoinCount
	}
	if o.ObstacleCount < 0 {
		o.ObstacleCount = 0
	}
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	if o.HyperdriveChance < 0 {
		o.HyperdriveChance = 0
	}
	if o.SpawnNearPlayerChance < 0 {
		o.SpawnNearPlayerChance = 0
	}
	if o.SnapshotEvery <= 0 {
		o.SnapshotEvery = d.SnapshotEvery
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
