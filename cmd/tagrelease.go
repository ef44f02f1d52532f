package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/config"
	"github.com/apfromiit/chalice/internal/executor"
	"github.com/apfromiit/chalice/internal/release"
	"github.com/apfromiit/chalice/internal/utils"
)

var tagReleaseCmd = &cobra.Command{
	Use:   "tag-release",
	Short: "Create an annotated tag named after the current version",
	Long:  "Create an annotated tag named exactly the current version string. Assumes the version file was already updated by a prior bump; no clean-tree or duplicate-tag check is performed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmFlag, _ := cmd.Flags().GetBool("confirm")

		root, err := projectRoot()
		if err != nil {
			return err
		}
		tools, err := config.LoadTools(root)
		if err != nil {
			return err
		}
		version, err := release.CurrentVersion(root)
		if err != nil {
			return err
		}

		if confirmFlag {
			if !utils.Confirm(fmt.Sprintf("Tag release %s now?", version)) {
				fmt.Println("aborted")
				return nil
			}
		}

		r := executor.New(false)
		if err := release.Tag(context.Background(), r, tools.Git, root, version, os.Stdout); err != nil {
			return err
		}
		fmt.Printf("tagged release %s\n", version)
		recordEvent("tag-release", version, "")
		return nil
	},
}

func init() {
	tagReleaseCmd.Flags().Bool("confirm", false, "Ask for confirmation before tagging")
	rootCmd.AddCommand(tagReleaseCmd)
}
