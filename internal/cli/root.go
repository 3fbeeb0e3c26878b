package cli

import (
	"context"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"

	"github.com/spf13/cobra"
)

// Generator is the itinerary use case driven by the generate command.
type Generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error)
}

// App holds what the commands need from the composition root.
type App struct {
	Catalog             *domain.Catalog
	Generator           Generator
	DefaultTrafficModel string
}

const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCmd creates the top-level "itinerary" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "itinerary",
		Short:         "Multi-day travel itinerary planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("--format must be %q or %q", formatText, formatJSON)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&format, "format", formatText, "Output format: text or json")

	root.AddCommand(
		newGenerateCmd(app, &format),
		newCitiesCmd(app, &format),
	)

	return root
}
