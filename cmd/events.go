package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent generation attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.Events().RecentGenEvents(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No generation events recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-8s  %-8s  %-7s  %s\n",
			"ID", "Timestamp", "Kind", "Outcome", "Ms", "Detail")
		fmt.Println(strings.Repeat("─", 90))

		for _, e := range events {
			detail := e.Detail
			if len(detail) > 40 {
				detail = detail[:40]
			}
			fmt.Printf("%-5d  %-19s  %-8s  %-8s  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.ArtifactKind,
				e.Outcome,
				e.LatencyMs,
				detail,
			)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}
