package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/engine"
	"github.com/lixenwraith/super-dash/status"
	"github.com/lixenwraith/super-dash/storage"
	"github.com/lixenwraith/super-dash/system"
)

// NewSimulateCommand creates the headless bot run command
func NewSimulateCommand() *cobra.Command {
	var (
		character  string
		ticks      int
		useAbility bool
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a seeded headless race driven by the autopilot bot",
		Long: `Simulate plays one run without a screen: the tutorial is skipped, the bot
steers toward the nearest coin and the final snapshot is printed.
Same seed and flags always give the same result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, closer, err := cfg.Logging.NewLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			opts := cfg.EngineOptions()
			opts.Logger = log
			ctrl := system.NewController(opts)

			snap, err := Simulate(ctrl, "Bot", character, ticks, useAbility, cfg.Gameplay.FrameInterval)
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), opts.Seed, snap)
			printMetrics(cmd.OutOrStdout(), ctrl.Metrics())

			if record && snap.Result != nil {
				db, err := storage.NewConnection(&cfg.Storage)
				if err != nil {
					return err
				}
				defer storage.Close(db)
				if err := storage.NewUnlockStore(db).RecordResult(cmd.Context(), *snap.Result); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "  Recorded")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&character, "character", "dash", "Character ID")
	cmd.Flags().IntVar(&ticks, "ticks", 36000, "Maximum ticks before giving up")
	cmd.Flags().BoolVar(&useAbility, "ability", true, "Fire the ability whenever it is ready")
	cmd.Flags().BoolVar(&record, "record", false, "Persist a win and its unlocks to storage")

	return cmd
}

// Simulate skips the tutorial and drives ctrl with an engine.Bot until a win or maxTicks
func Simulate(ctrl *engine.Controller, name, character string, maxTicks int, useAbility bool, dt time.Duration) (engine.Snapshot, error) {
	if err := ctrl.Start(name, character); err != nil {
		return engine.Snapshot{}, err
	}
	for ctrl.Phase() == engine.PhaseTutorial {
		if err := ctrl.AdvanceTutorial(); err != nil {
			return engine.Snapshot{}, err
		}
	}

	bot := &engine.Bot{UseAbility: useAbility}
	for i := 0; i < maxTicks && ctrl.Phase() == engine.PhasePlaying; i++ {
		ctrl.SetInput(bot.Input(ctrl.State()))
		ctrl.Tick(dt)
	}
	return ctrl.Snapshot(), nil
}

func printSnapshot(w io.Writer, seed uint64, s engine.Snapshot) {
	fmt.Fprintf(w, "Seed %d, %s as %s\n", seed, s.PlayerName, s.CharacterID)
	fmt.Fprintf(w, "  Ticks:     %d\n", s.Tick)
	fmt.Fprintf(w, "  Run clock: %.2fs\n", s.Elapsed.Seconds())
	fmt.Fprintf(w, "  Coins:     %d/%d\n", s.CoinsCollected, s.CoinsTotal)
	fmt.Fprintf(w, "  Position:  (%.0f, %.0f)\n", s.Position.X, s.Position.Y)
	if s.Result == nil {
		fmt.Fprintln(w, "  Result:    unfinished")
		return
	}
	fmt.Fprintf(w, "  Score:     %d\n", s.Result.Score)
	for _, key := range s.Result.Unlocks {
		for _, c := range component.Characters {
			if c.UnlockKey == key {
				fmt.Fprintf(w, "  Unlocked:  %s\n", c.Name)
			}
		}
	}
}

func printMetrics(w io.Writer, metrics []status.Metric) {
	if len(metrics) == 0 {
		return
	}
	fmt.Fprintln(w, "  Metrics:")
	for _, m := range metrics {
		fmt.Fprintf(w, "    %-24s %g\n", m.Key, m.Value)
	}
}
