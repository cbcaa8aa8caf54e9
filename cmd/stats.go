package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karimf/wortspatz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show star totals from the reward log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath, nil)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		totals, err := st.StarEventRepo().Totals(ctx)
		if err != nil {
			return fmt.Errorf("read star totals: %w", err)
		}

		fmt.Printf("Total stars earned: %d\n", totals.Total)
		for activity, stars := range totals.ByActivity {
			fmt.Printf("  %-12s %d\n", activity, stars)
		}

		recent, err := st.StarEventRepo().Recent(ctx, 10)
		if err != nil {
			return fmt.Errorf("read recent events: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent awards:")
			for _, ev := range recent {
				fmt.Printf("  %s  +%d  %s/%s (%s)\n",
					ev.CreatedAt.Format("2006-01-02 15:04"),
					ev.Stars, ev.Activity, ev.Category, ev.Reason)
			}
		}
		return nil
	},
}
