package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripsmith/trip-cli/internal/model"
)

var (
	planSession     string
	planOrigin      string
	planDest        string
	planStart       string
	planEnd         string
	planPassengers  int
	planBudget      float64
	planWalkable    bool
	planBoutique    bool
	planNoRedeye    bool
	planDepartAfter string
	planReturnAfter string
	planScenario    string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose ranked candidate itineraries for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initPlanner(ctx, planScenario)
		if err != nil {
			return err
		}
		defer env.Close()

		req := model.TripRequest{
			Origin:     planOrigin,
			Dest:       planDest,
			StartDate:  planStart,
			EndDate:    planEnd,
			Passengers: planPassengers,
			BudgetEUR:  planBudget,
			Prefs: model.Preferences{
				Walkable:    planWalkable,
				Boutique:    planBoutique,
				NoRedeye:    planNoRedeye,
				DepartAfter: planDepartAfter,
				ReturnAfter: planReturnAfter,
			},
		}

		result := env.Planner.PlanTrip(ctx, planSession, req)
		if result.Status != model.StatusOK {
			zap.L().Warn("plan did not complete", zap.String("message", result.Message))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	planCmd.Flags().StringVar(&planSession, "session", "", "session identifier (required)")
	planCmd.Flags().StringVar(&planOrigin, "origin", "", "departure city (required)")
	planCmd.Flags().StringVar(&planDest, "dest", "", "destination city (required)")
	planCmd.Flags().StringVar(&planStart, "start", "", "trip start date YYYY-MM-DD (required)")
	planCmd.Flags().StringVar(&planEnd, "end", "", "trip end date YYYY-MM-DD (required)")
	planCmd.Flags().IntVar(&planPassengers, "passengers", 1, "passenger count")
	planCmd.Flags().Float64Var(&planBudget, "budget", 0, "overall budget in EUR (0 = unlimited)")
	planCmd.Flags().BoolVar(&planWalkable, "walkable", false, "prefer walkable locations")
	planCmd.Flags().BoolVar(&planBoutique, "boutique", false, "prefer boutique hotels")
	planCmd.Flags().BoolVar(&planNoRedeye, "no-redeye", false, "avoid red-eye flights")
	planCmd.Flags().StringVar(&planDepartAfter, "depart-after", "", "earliest outbound departure HH:MM")
	planCmd.Flags().StringVar(&planReturnAfter, "return-after", "", "earliest return departure HH:MM")
	planCmd.Flags().StringVar(&planScenario, "scenario", "", "path to an offline scenario file instead of live agents")

	_ = planCmd.MarkFlagRequired("session")
	_ = planCmd.MarkFlagRequired("origin")
	_ = planCmd.MarkFlagRequired("dest")
	_ = planCmd.MarkFlagRequired("start")
	_ = planCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(planCmd)
}
