package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apfromiit/chalice/internal/db"
	"github.com/apfromiit/chalice/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent release events recorded by this tool",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		events, err := history.NewRepository(dbConn).Recent(limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("no release events recorded")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-13s %s\n", e.CreatedAt, e.Operation, e.Version)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	rootCmd.AddCommand(historyCmd)
}
