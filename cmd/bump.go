package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/apfromiit/chalice/internal/changelog"
	"github.com/apfromiit/chalice/internal/config"
	"github.com/apfromiit/chalice/internal/executor"
	"github.com/apfromiit/chalice/internal/release"
)

var bumpCmd = &cobra.Command{
	Use:   "bump-version",
	Short: "Rewrite the version in registered files and regenerate the changelog",
	Long:  "Fold pending changelog entries into a new release section, then rewrite the version string in every registered file. Edits are applied in registry order with no rollback on failure.",
	RunE: func(cmd *cobra.Command, args []string) error {
		versionNumber, _ := cmd.Flags().GetString("version-number")
		releaseType, _ := cmd.Flags().GetString("release-type")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if (versionNumber == "") == (releaseType == "") {
			return fmt.Errorf("exactly one of --version-number and --release-type is required")
		}

		root, err := projectRoot()
		if err != nil {
			return err
		}
		tools, err := config.LoadTools(root)
		if err != nil {
			return err
		}

		newVersion := versionNumber
		if releaseType != "" {
			rt, err := release.ParseReleaseType(releaseType)
			if err != nil {
				return err
			}
			current, err := release.CurrentVersion(root)
			if err != nil {
				return err
			}
			if newVersion, err = release.NextVersion(current, rt); err != nil {
				return err
			}
		} else if !semver.IsValid("v" + strings.TrimPrefix(newVersion, "v")) {
			return fmt.Errorf("version %q is not valid semver", newVersion)
		}

		r := executor.New(verbose)
		ch := changelog.New(r, tools.Changelog, tools.Template, root)
		b := release.NewBumper(root, ch)

		ctx := context.Background()
		if dryRun {
			fmt.Printf("dry run for version %s\n", newVersion)
			return b.Plan(ctx, newVersion, os.Stdout)
		}
		if err := b.Bump(ctx, newVersion); err != nil {
			return err
		}
		fmt.Printf("bumped version to %s\n", newVersion)
		recordEvent("bump-version", newVersion, "")
		return nil
	},
}

func init() {
	bumpCmd.Flags().String("version-number", "", "Explicit new version string")
	bumpCmd.Flags().String("release-type", "", "Compute the new version from the current one (patch or minor)")
	bumpCmd.Flags().Bool("dry-run", false, "Print the per-file plan without writing or invoking the changelog tool")
	bumpCmd.Flags().Bool("verbose", false, "Print external tool invocations")
	rootCmd.AddCommand(bumpCmd)
}
