package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripsmith/trip-cli/internal/ledger"
)

var candidatesSession string

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Show the ranked candidate list recorded for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initPlanner(ctx, "")
		if err != nil {
			return err
		}
		defer env.Close()

		candidates, err := env.Planner.Candidates(ctx, candidatesSession)
		if err != nil {
			if errors.Is(err, ledger.ErrNoCandidates) {
				return fmt.Errorf("no plan recorded for session %s", candidatesSession)
			}
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	},
}

func init() {
	candidatesCmd.Flags().StringVar(&candidatesSession, "session", "", "session identifier (required)")
	_ = candidatesCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(candidatesCmd)
}
