package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathpath/mathpath/internal/session"
	"github.com/mathpath/mathpath/internal/spacedrep"
	"github.com/mathpath/mathpath/internal/store"
	"github.com/mathpath/mathpath/internal/student"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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
		sessions, err := st.ListSessions(ctx)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		now := time.Now()
		week := session.WeekStats(sessions, state, now)
		due := spacedrep.DueForReview(state, now)

		fmt.Println("Progress")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Level:        %d  (%d/%d XP to next)\n",
			state.Level, student.XPProgress(state.TotalXP), student.XPPerLevel)
		fmt.Printf("Total XP:     %d\n", state.TotalXP)
		fmt.Printf("Today's XP:   %d / %d\n", session.TodayXP(sessions, now), student.DailyXPTarget)
		fmt.Printf("Streak:       %d days (best %d)\n", state.CurrentStreak, state.LongestStreak)
		fmt.Printf("Sessions:     %d\n", state.SessionsCompleted)
		fmt.Printf("Due reviews:  %d\n", len(due))

		fmt.Println()
		fmt.Println("This Week")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Sessions:     %d\n", week.Sessions)
		fmt.Printf("XP earned:    %d\n", week.XP)
		fmt.Printf("Mastered:     %d topics\n", week.TopicsMastered)
		fmt.Printf("Accuracy:     %d%%\n", week.AverageAccuracy)
		return nil
	},
}
