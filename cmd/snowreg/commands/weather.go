package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snowreg/internal/aps"
)

// weather [regions...]: download the gridded weather product and
// tabulate it to CSV.
func weatherCmd() *cobra.Command {
	var windDir bool

	cmd := &cobra.Command{
		Use:   "weather [regions...]",
		Short: "Download regional mountain weather",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := parseRegions(args)
			if err != nil {
				return err
			}
			from, to, err := dateRange()
			if err != nil {
				return err
			}

			client := aps.NewClient(logger)
			if cfg.Aps.BaseURL != "" {
				client.WithBaseURL(cfg.Aps.BaseURL)
			}
			product, err := client.FetchAll(cmd.Context(), regions, from, to)
			if err != nil {
				return err
			}

			f, err := product.Frame(aps.FrameOptions{WithWindDir: windDir})
			if err != nil {
				return err
			}
			if output != "" {
				return f.WriteCSVFile(output)
			}
			if err := f.WriteCSV(os.Stdout); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "%d rows\n", f.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to file instead of printing")
	cmd.Flags().BoolVar(&windDir, "wind-dir", false, "include wind direction distributions")
	return cmd
}
