package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brisa-ai/brisa/internal/geo"
	"github.com/brisa-ai/brisa/internal/weather"
)

func (a *App) historyCmd() *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent weather lookups",
		Long: `Show recent lookups from the local history database, newest first.

Example:
  brisa history
  brisa history --limit 25
  brisa history --clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			if clear {
				if !promptYesNo("Delete the entire lookup history?") {
					fmt.Println("Aborted.")
					return nil
				}
				n, err := a.repo.ClearLookups(ctx)
				if err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
				fmt.Printf("Removed %d lookups.\n", n)
				return nil
			}

			lookups, err := a.repo.RecentLookups(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			if len(lookups) == 0 {
				fmt.Println("No lookups recorded yet.")
				return nil
			}

			for _, l := range lookups {
				printLookup(l)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of lookups to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete the entire lookup history")

	return cmd
}

func printLookup(l *weather.Lookup) {
	coord := geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
	fmt.Printf("  %s  %s (%s)  %s %s\n",
		formatMuted(l.CreatedAt.Format("2006-01-02 15:04")),
		formatLocation(l.Location),
		coord,
		l.Type,
		formatMuted("["+sourceLabel(l.Source)+"]"),
	)
	fmt.Printf("      %s\n", formatMuted(l.Query))
}

// sourceLabel is the short human name of the resolution tier that produced
// the coordinates.
func sourceLabel(s geo.Source) string {
	switch s {
	case geo.SourceCoordinates:
		return "coords"
	case geo.SourceGeocoder:
		return "geocoded"
	case geo.SourceCityTable:
		return "city table"
	case geo.SourceDefault:
		return "default"
	default:
		return string(s)
	}
}
