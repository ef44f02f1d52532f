package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/release"
)

var getVersionCmd = &cobra.Command{
	Use:   "get-version",
	Short: "Print the current project version",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		version, err := release.CurrentVersion(root)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getVersionCmd)
}
