package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long:  "Deletes the student state. Session history and cached content are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v := viperFor(cmd)

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Print("This erases all mastery and streak data. Type 'yes' to confirm: ")
			in := bufio.NewScanner(os.Stdin)
			if !in.Scan() || strings.TrimSpace(in.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(v)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetState(ctx); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
