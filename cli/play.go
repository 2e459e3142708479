package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/super-dash/storage"
	"github.com/lixenwraith/super-dash/system"
	"github.com/lixenwraith/super-dash/terminal"
)

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The screen owns stderr while the UI runs
			if cfg.Logging.Output == "stderr" {
				cfg.Logging.Output = "file"
			}
			log, closer, err := cfg.Logging.NewLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			db, err := storage.NewConnection(&cfg.Storage)
			if err != nil {
				return err
			}
			defer storage.Close(db)

			opts := cfg.EngineOptions()
			opts.Logger = log
			ctrl := system.NewController(opts)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to init screen: %w", err)
			}
			// Restore the terminal before a panic prints
			defer func() {
				if r := recover(); r != nil {
					terminal.HandleCrash(screen, r)
				}
				screen.Fini()
			}()
			screen.HideCursor()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := terminal.NewApp(ctx, screen, ctrl, terminal.AppConfig{
				PlayerName:    name,
				FrameInterval: cfg.Gameplay.FrameInterval,
				KeyHold:       cfg.Gameplay.KeyHold,
				Store:         storage.NewUnlockStore(db),
				Logger:        log,
			})
			log.Info("session started", "player", name, "seed", opts.Seed)

			if err := app.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", defaultPlayerName(), "Player name, 1 to 15 characters")

	return cmd
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" && len([]rune(u)) <= 15 {
		return u
	}
	return "Player"
}
