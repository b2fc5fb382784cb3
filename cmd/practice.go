package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathpath/mathpath/internal/content"
	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/llm"
	"github.com/mathpath/mathpath/internal/session"
	"github.com/mathpath/mathpath/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a practice session",
	Long:  "Plans a session from due reviews and newly unlocked topics, then works through it interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	practiceCmd.Flags().Bool("review", false, "Review-only session: due topics, no new material")
}

// buildProvider resolves the LLM backend from MATHPATH_* configuration,
// falling back to probing the standard provider key variables.
func buildProvider(ctx context.Context, logger *slog.Logger) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, logger)
}

func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	v := viperFor(cmd)
	logger := newLogger(v)

	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := buildProvider(ctx, logger)
	if err != nil {
		return fmt.Errorf("no LLM provider configured: %w", err)
	}

	states := store.NewResilientState(st, logger)
	state, err := states.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	svc := content.NewService(provider, st, logger, rng)
	planner := session.NewPlanner(rng)

	now := time.Now()
	var plan *session.Plan
	if reviewOnly, _ := cmd.Flags().GetBool("review"); reviewOnly {
		plan = planner.PlanReview(state, now)
	} else {
		plan = planner.PlanLearning(state, now)
	}
	if len(plan.Tasks) == 0 {
		fmt.Println("Nothing to practice right now. Come back tomorrow!")
		return nil
	}

	runner := session.NewRunner(state, plan, states, st, logger, time.Now)
	sess := runner.Session()

	fmt.Printf("Session planned: %d tasks", len(sess.Tasks))
	if len(plan.NewTopics) > 0 {
		fmt.Printf(", new: %s", topicNames(plan.NewTopics))
	}
	if len(plan.ReviewTopics) > 0 {
		fmt.Printf(", review: %s", topicNames(plan.ReviewTopics))
	}
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		task := sess.NextIncompleteTask()
		if task == nil {
			break
		}
		progress := sess.Progress()
		fmt.Printf("\n[%d/%d] %s\n", progress.Completed+1, progress.Total, topicName(task.TopicID))

		if task.Type == session.TaskWorkedExample {
			err = runWorkedExampleTask(ctx, runner, svc, task, in)
		} else {
			err = runProblemTask(ctx, runner, svc, task, in)
		}
		if errors.Is(err, errNoContent) {
			fmt.Println("No content available for this one, skipping.")
			if err := runner.SkipTask(task.ID); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Ending session early:", err)
			break
		}
	}

	final, err := runner.Finish(ctx)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("─", 40))
	p := final.Progress()
	fmt.Printf("Session complete: %d/%d tasks, +%d XP\n", p.Completed, p.Total, final.TotalXPEarned)
	fmt.Printf("Level %d  |  %d XP total  |  %d day streak\n",
		state.Level, state.TotalXP, state.CurrentStreak)
	return nil
}

// errNoContent marks a task whose content could not be fetched or was
// malformed; the session skips it rather than aborting.
var errNoContent = errors.New("no content available")

func runWorkedExampleTask(ctx context.Context, r *session.Runner, svc *content.Service, task *session.Task, in *bufio.Scanner) error {
	ex, err := svc.WorkedExample(ctx, task.TopicID, task.KnowledgePointID)
	if err != nil {
		return fmt.Errorf("%w: %w", errNoContent, err)
	}

	fmt.Printf("\n  %s\n\n", ex.Title)
	fmt.Printf("  %s\n\n", ex.Problem)
	for _, step := range ex.Steps {
		fmt.Printf("  %s\n  %s\n\n", step.Label, step.Content)
	}
	fmt.Printf("  %s\n\n", ex.FinalAnswer)
	fmt.Print("Press Enter to continue... ")
	in.Scan()

	xp, err := r.CompleteWorkedExample(ctx, task.ID, 0)
	if err != nil {
		return err
	}
	fmt.Printf("+%d XP\n", xp)
	return nil
}

func runProblemTask(ctx context.Context, r *session.Runner, svc *content.Service, task *session.Task, in *bufio.Scanner) error {
	p, err := svc.Problem(ctx, task.TopicID, task.KnowledgePointID)
	if err != nil {
		return fmt.Errorf("%w: %w", errNoContent, err)
	}

	started := time.Now()
	fmt.Printf("\n  %s\n\n", p.Question)
	if p.Type == content.MultipleChoice {
		for _, c := range p.Choices {
			fmt.Printf("    %s) %s\n", c.Label, c.Value)
		}
		fmt.Println()
	}

	hintsUsed := 0
	var answer string
	for {
		fmt.Print("Your answer (or 'hint'): ")
		if !in.Scan() {
			return fmt.Errorf("input closed")
		}
		answer = strings.TrimSpace(in.Text())
		if !strings.EqualFold(answer, "hint") {
			break
		}
		if hintsUsed >= len(p.Hints) {
			fmt.Println("No more hints for this one.")
			continue
		}
		fmt.Printf("Hint: %s\n", p.Hints[hintsUsed])
		hintsUsed++
	}

	correct := checkAnswer(p, answer)
	if correct {
		fmt.Println("Correct!")
	} else {
		fmt.Printf("Not quite. The answer is: %s\n", p.CorrectAnswer)
	}
	fmt.Printf("%s\n", p.Explanation)

	xp, err := r.RecordAnswer(ctx, task.ID, correct, hintsUsed, p.XPValue, time.Since(started))
	if err != nil {
		return err
	}
	if xp > 0 {
		fmt.Printf("+%d XP\n", xp)
	}
	return nil
}

// checkAnswer compares the learner's input against the problem. For
// multiple choice, a choice label counts as picking that choice.
func checkAnswer(p *content.Problem, answer string) bool {
	if strings.EqualFold(answer, p.CorrectAnswer) {
		return true
	}
	if p.Type == content.MultipleChoice {
		for _, c := range p.Choices {
			if strings.EqualFold(answer, c.Label) {
				return c.IsCorrect
			}
		}
	}
	if p.Type == content.TrueFalse {
		norm := func(s string) string {
			switch strings.ToLower(s) {
			case "t", "true", "yes":
				return "true"
			case "f", "false", "no":
				return "false"
			}
			return strings.ToLower(s)
		}
		return norm(answer) == norm(p.CorrectAnswer)
	}
	return false
}

func topicName(id string) string {
	t, err := knowledge.GetTopic(id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s %s", t.Emoji, t.Name)
}

func topicNames(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = topicName(id)
	}
	return strings.Join(names, ", ")
}
