package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/release"
)

var nextVersionCmd = &cobra.Command{
	Use:   "next-version <patch|minor>",
	Short: "Print the next version for the given release type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := release.ParseReleaseType(args[0])
		if err != nil {
			return err
		}
		root, err := projectRoot()
		if err != nil {
			return err
		}
		current, err := release.CurrentVersion(root)
		if err != nil {
			return err
		}
		next, err := release.NextVersion(current, rt)
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextVersionCmd)
}
