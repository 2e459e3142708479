package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/super-dash/config"
)

var (
	// Global flags
	configPath string
	seed       uint64
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "super-dash",
		Short: "Super Dash - top-down coin racing in the terminal",
		Long: `Super Dash races a character around an obstacle field collecting every coin
against the clock. Power-ups, a boost tank and one ability per character
shave seconds off a run; fast wins unlock secret characters.

Examples:
  super-dash play --name Ada
  super-dash simulate --character sparky --ticks 20000
  super-dash unlocks`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to super-dash.toml (default: search ., ./configs, ~/.config/super-dash)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"World seed override (0 uses the configured seed)")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewUnlocksCommand())

	return rootCmd
}

// loadConfig applies global flag overrides on top of the loaded configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.World.Seed = seed
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
