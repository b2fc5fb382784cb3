package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathpath/mathpath/internal/session"
	"github.com/mathpath/mathpath/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's session plan without starting it",
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

		now := time.Now()
		rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
		plan := session.NewPlanner(rng).PlanLearning(state, now)

		if len(plan.Tasks) == 0 {
			fmt.Println("Nothing due today.")
			return nil
		}

		if len(plan.ReviewTopics) > 0 {
			fmt.Printf("Review: %s\n", topicNames(plan.ReviewTopics))
		}
		if len(plan.NewTopics) > 0 {
			fmt.Printf("New:    %s\n", topicNames(plan.NewTopics))
		}
		fmt.Println()

		for i, task := range plan.Tasks {
			fmt.Printf("%2d. %-15s %s\n", i+1, task.Type, topicName(task.TopicID))
		}
		fmt.Printf("\n%d tasks. Run `mathpath practice` to start.\n", len(plan.Tasks))
		return nil
	},
}
