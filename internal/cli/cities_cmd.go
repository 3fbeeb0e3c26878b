package cli

import (
	"encoding/json"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newCitiesCmd(app *App, format *string) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List catalog cities grouped by state",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := app.Catalog.CitiesByState()
			if state != "" {
				filtered := infos[:0]
				for _, c := range infos {
					if c.State == state {
						filtered = append(filtered, c)
					}
				}
				infos = filtered
			}

			out := cmd.OutOrStdout()
			if *format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(infos))}
				for _, c := range infos {
					res.Cities = append(res.Cities, dto.CityResponse{State: c.State, City: c.City, Places: c.Places})
				}
				return enc.Encode(res)
			}
			_, err := out.Write([]byte(formatter.FormatCities(infos)))
			return err
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Only list cities of this state")

	return cmd
}
