package main

import (
	"github.com/spf13/cobra"
)

var statusProfile string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show scaffold status",
	Long:  `Display every check and required path of the profile with its current state.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusProfile, "profile", "p", "", "Check profile: minimal or standard (default: from config)")
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	return ctx.ShowStatus(statusProfile)
}
