package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content without the TUI",
	Long:  "Run bulk generation headless: one topic (--topic) or every topic in a learning path (--path --all), streaming the log to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topicID, _ := cmd.Flags().GetString("topic")
		pathID, _ := cmd.Flags().GetString("path")
		all, _ := cmd.Flags().GetBool("all")
		kindFlag, _ := cmd.Flags().GetString("kind")
		force, _ := cmd.Flags().GetBool("force")

		kind, err := parseKind(kindFlag)
		if err != nil {
			return err
		}
		if topicID == "" && !all {
			return fmt.Errorf("nothing to do: pass --topic <id> or --path <id> --all")
		}
		if all && pathID == "" {
			return fmt.Errorf("--all requires --path <id>")
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gen, backend, err := buildGenerator(ctx, st)
		if err != nil {
			return err
		}
		fmt.Println("generation backend:", backend)

		led := ledger.New()
		r := runner.New(st.Catalog(), gen, led, st.Events(), runner.DefaultConfig())
		catalog := st.Catalog()

		var topics []store.Topic
		if all {
			topics, err = catalog.ListTopics(ctx, pathID)
			if err != nil {
				return fmt.Errorf("list topics: %w", err)
			}
		} else {
			t, err := catalog.GetTopic(ctx, topicID)
			if err != nil {
				return fmt.Errorf("load topic: %w", err)
			}
			topics = []store.Topic{*t}
		}

		for _, topic := range topics {
			subs, err := catalog.ListSubtopics(ctx, topic.ID)
			if err != nil {
				return fmt.Errorf("list subtopics for %q: %w", topic.Name, err)
			}
			if force {
				ids := make([]string, len(subs))
				for i, s := range subs {
					ids[i] = s.ID
				}
				n, err := r.DeleteArtifacts(ctx, kind, ids)
				if err != nil {
					return fmt.Errorf("delete existing artifacts for %q: %w", topic.Name, err)
				}
				fmt.Printf("deleted %d existing artifact(s) for %q\n", n, topic.Name)
			}

			fmt.Printf("\n── %s ──\n", topic.Name)
			if err := runAndStream(ctx, r, led, kind, topic, subs); err != nil {
				return err
			}
		}
		return nil
	},
}

// runAndStream runs one topic on a goroutine and tails its ledger to
// stdout until the run finishes.
func runAndStream(ctx context.Context, r *runner.Runner, led *ledger.Ledger, kind store.ArtifactKind, topic store.Topic, subs []store.Subtopic) error {
	led.StartTopic(topic.ID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.RunTopic(ctx, runner.NewControl(), kind, topic, subs)
	}()

	printed := 0
	flush := func() {
		snap := led.Snapshot(topic.ID)
		for ; printed < len(snap.Entries); printed++ {
			fmt.Println(snap.Entries[printed].Message)
		}
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			flush()
		case <-done:
			flush()
			return ctx.Err()
		}
	}
}

func parseKind(s string) (store.ArtifactKind, error) {
	switch s {
	case "", "lesson", "lessons":
		return store.ArtifactLesson, nil
	case "practice":
		return store.ArtifactPractice, nil
	}
	return "", fmt.Errorf("unknown kind %q: want lesson or practice", s)
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic ID to generate")
	generateCmd.Flags().String("path", "", "Learning path ID (with --all)")
	generateCmd.Flags().Bool("all", false, "Generate every topic in the learning path")
	generateCmd.Flags().StringP("kind", "k", "lesson", "Artifact kind: lesson or practice")
	generateCmd.Flags().BoolP("force", "f", false, "Delete existing artifacts first and regenerate")
}
