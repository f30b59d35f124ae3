package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripsmith/trip-cli/internal/planner"
)

var (
	bookSession string
	bookOption  int
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a previously composed itinerary by its 1-based option index",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initPlanner(ctx, "")
		if err != nil {
			return err
		}
		defer env.Close()

		conf, err := env.Planner.Book(ctx, bookSession, bookOption)
		if err != nil {
			if planner.IsUserError(err) {
				return fmt.Errorf("cannot book option %d for session %s: %w", bookOption, bookSession, err)
			}
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(conf)
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookSession, "session", "", "session identifier (required)")
	bookCmd.Flags().IntVar(&bookOption, "option", 0, "1-based option index from the last plan (required)")

	_ = bookCmd.MarkFlagRequired("session")
	_ = bookCmd.MarkFlagRequired("option")

	rootCmd.AddCommand(bookCmd)
}
