package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathpath/mathpath/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mathpath to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		checker := selfupdate.NewChecker()

		if checkOnly, _ := cmd.Flags().GetBool("check"); checkOnly {
			result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s -> %s\n%s\n",
					result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
			} else {
				fmt.Printf("Up to date (%s, latest %s).\n", result.CurrentVersion, result.LatestVersion)
			}
			return nil
		}

		target, _ := cmd.Flags().GetString("version")
		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return fmt.Errorf("development builds cannot self-update; install a release build")
		case err != nil:
			return err
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether an update is available")
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
	rootCmd.AddCommand(updateCmd)
}
