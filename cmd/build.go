package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/config"
	"github.com/apfromiit/chalice/internal/executor"
	"github.com/apfromiit/chalice/internal/release"
)

var buildCmd = &cobra.Command{
	Use:   "build-release",
	Short: "Build source and wheel distributions from the project root",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		root, err := projectRoot()
		if err != nil {
			return err
		}
		tools, err := config.LoadTools(root)
		if err != nil {
			return err
		}

		r := &executor.Executor{Verbose: verbose, Stderr: os.Stderr}
		if err := release.Build(context.Background(), r, tools.Packaging, root, os.Stdout); err != nil {
			return err
		}

		version, err := release.CurrentVersion(root)
		if err != nil {
			return err
		}
		fmt.Printf("built release artifacts for %s\n", version)
		recordEvent("build-release", version, "")
		return nil
	},
}

func init() {
	buildCmd.Flags().Bool("verbose", false, "Print external tool invocations")
	rootCmd.AddCommand(buildCmd)
}
