package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"snowreg/internal/varsom"
)

// forecast [regions...]: download avalanche forecasts and print danger
// levels, or tabulate them to CSV.
func forecastCmd() *cobra.Command {
	var priorities bool
	var problems bool

	cmd := &cobra.Command{
		Use:   "forecast [regions...]",
		Short: "Download avalanche forecasts",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := parseRegions(args)
			if err != nil {
				return err
			}
			from, to, err := dateRange()
			if err != nil {
				return err
			}

			client := varsom.NewClient(logger)
			if cfg.Varsom.BaseURL != "" {
				client.WithBaseURL(cfg.Varsom.BaseURL)
			}
			product, err := client.FetchAll(cmd.Context(), regions, from, to)
			if err != nil {
				return err
			}

			if output != "" {
				f, err := product.DangerLevelFrame()
				if problems {
					f, err = product.ProblemFrame(priorities)
				}
				if err != nil {
					return err
				}
				return f.WriteCSVFile(output)
			}

			for _, reg := range product.Regions.Keys() {
				timeline, _ := product.Regions.Get(reg)
				for _, date := range timeline.Forecasts.Keys() {
					forecast, _ := timeline.Forecasts.Get(date)
					fmt.Printf("%s %s: danger level %d, %d problems\n",
						date, reg, forecast.DangerLevel, len(forecast.Problems))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to file instead of printing")
	cmd.Flags().BoolVar(&problems, "problems", false, "tabulate avalanche problems instead of danger levels")
	cmd.Flags().BoolVar(&priorities, "priorities", false, "include problem priorities in the CSV")
	return cmd
}
