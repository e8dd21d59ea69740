package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-topic content completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		pathFilter, _ := cmd.Flags().GetString("path")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		catalog := st.Catalog()
		agg := completion.New(catalog)

		paths, err := catalog.ListLearningPaths(ctx)
		if err != nil {
			return fmt.Errorf("list learning paths: %w", err)
		}
		if len(paths) == 0 {
			fmt.Println("No learning paths. Import a curriculum with `bitesmith import`.")
			return nil
		}

		for _, p := range paths {
			if pathFilter != "" && p.ID != pathFilter {
				continue
			}

			lessons, lessonByTopic, err := agg.Path(ctx, store.ArtifactLesson, p.ID)
			if err != nil {
				return fmt.Errorf("path %q: %w", p.Name, err)
			}
			practice, practiceByTopic, err := agg.Path(ctx, store.ArtifactPractice, p.ID)
			if err != nil {
				return fmt.Errorf("path %q: %w", p.Name, err)
			}

			fmt.Printf("%s  (%s)\n", p.Name, p.ID)
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-40s  %12s  %12s\n", "Topic", "Lessons", "Practice")
			fmt.Println(strings.Repeat("─", 72))

			topics, err := catalog.ListTopics(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list topics: %w", err)
			}
			for _, t := range topics {
				fmt.Printf("%-40s  %12s  %12s\n",
					clip(t.Name, 40),
					lessonByTopic[t.ID].String(),
					practiceByTopic[t.ID].String())
			}

			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-40s  %12s  %12s\n\n", "TOTAL", lessons.String(), practice.String())
		}
		return nil
	},
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func init() {
	statusCmd.Flags().String("path", "", "Only show this learning path ID")
}
