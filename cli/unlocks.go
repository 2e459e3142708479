package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/super-dash/component"
	"github.com/lixenwraith/super-dash/storage"
)

// NewUnlocksCommand creates the unlock listing command
func NewUnlocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlocks",
		Short: "List secret characters and whether they are unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := storage.NewConnection(&cfg.Storage)
			if err != nil {
				return err
			}
			defer storage.Close(db)
			store := storage.NewUnlockStore(db)

			flags, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			unlocked := make(map[string]time.Time, len(flags))
			for _, f := range flags {
				unlocked[f.Key] = f.UnlockedAt
			}

			fmt.Fprintln(out, "Secret characters:")
			for _, c := range component.Characters {
				if !c.Secret {
					continue
				}
				if at, ok := unlocked[c.UnlockKey]; ok {
					fmt.Fprintf(out, "  ✓ %-16s unlocked %s\n", c.Name, at.Local().Format(time.DateTime))
				} else {
					fmt.Fprintf(out, "  ✗ %-16s locked\n", c.Name)
				}
			}

			return nil
		},
	}

	return cmd
}
