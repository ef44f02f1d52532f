package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/config"
	"github.com/apfromiit/chalice/internal/db"
	"github.com/apfromiit/chalice/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "chalice-release",
	Short: "chalice-release automates version bumps, changelogs, tags, and package builds",
	Long:  "chalice-release rewrites version strings across the project's registered files, regenerates the changelog, creates annotated release tags, and builds distribution artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("chalice-release: run 'chalice-release --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// projectRoot locates the enclosing project root from the current directory.
func projectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.FindProjectRoot(cwd)
}

// recordEvent appends to the release ledger. The ledger is an audit trail:
// failures here are reported as warnings, never as command failures.
func recordEvent(operation, version, detail string) {
	dbConn, err := db.InitDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: release history unavailable: %v\n", err)
		return
	}
	defer func() { _ = dbConn.Close() }()

	if err := history.NewRepository(dbConn).Record(operation, version, detail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record release event: %v\n", err)
	}
}
