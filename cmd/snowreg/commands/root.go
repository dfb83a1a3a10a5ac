package commands

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"snowreg/internal/config"
	"snowreg/internal/regobs"
	"snowreg/internal/region"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	fromFlag string
	toFlag   string
	output   string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "snowreg",
		Short:         "Snow observations, avalanche forecasts, and mountain weather",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger = cfg.NewLogger()
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&fromFlag, "from", "", "first date of the range (ISO, default today)")
	root.PersistentFlags().StringVar(&toFlag, "to", "", "last date of the range (ISO, default today)")

	root.AddCommand(forecastCmd(), weatherCmd(), searchCmd(), submitCmd())
	return root.Execute()
}

func dateRange() (from, to regobs.Date, err error) {
	today := regobs.DateOf(time.Now())
	from, to = today, today
	if fromFlag != "" {
		if from, err = regobs.ParseDate(fromFlag); err != nil {
			return "", "", err
		}
	}
	if toFlag != "" {
		if to, err = regobs.ParseDate(toFlag); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}

func parseRegions(args []string) ([]region.SnowRegion, error) {
	if len(args) == 0 {
		return region.ARegions, nil
	}
	var regions []region.SnowRegion
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || !region.SnowRegion(id).Valid() {
				return nil, fmt.Errorf("unknown forecast region %q", part)
			}
			regions = append(regions, region.SnowRegion(id))
		}
	}
	return regions, nil
}
