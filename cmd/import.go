package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mathsinbites/bitesmith/internal/curriculum"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a curriculum file into a learning path",
	Long:  "Reads a JSON array of {name, icon?, subtopics[]} topics and upserts them into the named learning path. Re-importing an updated file adjusts icons and ordering without duplicating rows.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathName, _ := cmd.Flags().GetString("path-name")
		grade, _ := cmd.Flags().GetString("grade")
		icon, _ := cmd.Flags().GetString("icon")
		if pathName == "" {
			return fmt.Errorf("--path-name is required")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read curriculum file: %w", err)
		}
		topics, err := curriculum.Parse(raw)
		if err != nil {
			return err
		}

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

		pathID, err := catalog.UpsertLearningPath(ctx, pathName, grade, icon, 0)
		if err != nil {
			return fmt.Errorf("upsert learning path: %w", err)
		}

		sum, err := curriculum.NewImporter(catalog).Import(ctx, pathID, topics)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d topic(s), %d subtopic(s) into %q (%s)\n",
			sum.Topics, sum.Subtopics, pathName, pathID)
		return nil
	},
}

func init() {
	importCmd.Flags().String("path-name", "", "Learning path to import into (created if missing)")
	importCmd.Flags().String("grade", "", "Grade label for a newly created path")
	importCmd.Flags().String("icon", "", "Icon for a newly created path")
}
