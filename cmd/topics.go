package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/mastery"
	"github.com/mathpath/mathpath/internal/store"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse the knowledge graph with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v := viperFor(cmd)
		logger := newLogger(v)

		st, err := openStore(v)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		state, err := store.NewResilientState(st, logger).LoadState(ctx)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		for _, c := range knowledge.AllCategories() {
			topics := knowledge.ByCategory(c)
			if len(topics) == 0 {
				continue
			}
			fmt.Printf("\n%s\n", knowledge.CategoryDisplayName(c))
			fmt.Println(strings.Repeat("─", 60))
			for _, t := range topics {
				level := mastery.DisplayLevel(state, t.ID)
				var m float64
				if ts := state.Topic(t.ID); ts != nil {
					m = ts.Mastery()
				}
				fmt.Printf("  %s %-28s %-11s %5.1f%%\n", t.Emoji, t.Name, level, m)
			}
		}
		fmt.Println()
		return nil
	},
}
