package cli

import (
	"encoding/json"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/cli/formatter"
	"itinerary-service/internal/services"

	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App, format *string) *cobra.Command {
	var params services.RequestParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a day-by-day itinerary",
		Example: "  itinerary generate --city Jaipur --days 3 --budget medium --companion friends\n" +
			"  itinerary generate --city Jaipur --start 08:00 --end 22:00 --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.TrafficModel == "" {
				params.TrafficModel = app.DefaultTrafficModel
			}
			req, err := params.Build()
			if err != nil {
				return err
			}

			result, err := app.Generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if *format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.NewItineraryResponse(result.Itinerary, result.Traffic, result.Stats, result.FinalCity))
			}
			_, err = out.Write([]byte(formatter.FormatItinerary(result)))
			return err
		},
	}

	cmd.Flags().StringVar(&params.StartCity, "city", "", "Starting city (required)")
	cmd.Flags().IntVar(&params.NumDays, "days", services.DefaultNumDays, "Number of days (1-10)")
	cmd.Flags().StringVar(&params.Budget, "budget", string(services.DefaultBudget), "Budget: low, medium or high")
	cmd.Flags().StringVar(&params.Companion, "companion", string(services.DefaultCompanion), "Travelling with: family, friends or solo")
	cmd.Flags().StringVar(&params.DayStart, "start", services.DefaultDayStart, "Day start time (HH:MM)")
	cmd.Flags().StringVar(&params.DayEnd, "end", services.DefaultDayEnd, "Day end time (HH:MM)")
	cmd.Flags().StringVar(&params.TrafficModel, "traffic-model", "", "Traffic model: best_guess, pessimistic, optimistic or none")
	cmd.Flags().StringVar(&params.APIKey, "api-key", "", "Travel API key overriding TRAVEL_API_KEY")
	cmd.Flags().StringVar(&params.Date, "date", "", "Date of the first day (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
