package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"snowreg/internal/regobs"
)

// search [regions...]: query the observation service for snow
// registrations.
func searchCmd() *cobra.Command {
	var nickname string
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "search [regions...]",
		Short: "Search snow registrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := parseRegions(args)
			if err != nil {
				return err
			}
			from, to, err := dateRange()
			if err != nil {
				return err
			}
			fromTime := from.Time()
			toTime := to.Add(1).Time()

			conn := newConnection()
			search := conn.Search(regobs.SearchCriteria{
				Regions:          regions,
				FromObsTime:      &fromTime,
				ToObsTime:        &toTime,
				ObserverNickname: nickname,
			})

			if countOnly {
				count, err := search.Count(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(count)
				return nil
			}

			for {
				reg, err := search.Next(cmd.Context())
				if err != nil {
					return err
				}
				if reg == nil {
					return nil
				}
				id := 0
				if reg.ID != nil {
					id = *reg.ID
				}
				nick := ""
				if reg.Observer != nil {
					nick = reg.Observer.Nickname
				}
				fmt.Printf("%d %s %s\n", id, reg.ObsTime.Format("2006-01-02 15:04"), nick)
			}
		},
	}
	cmd.Flags().StringVar(&nickname, "observer", "", "filter by observer nickname")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matches")
	return cmd
}

func newConnection() *regobs.Connection {
	conn := regobs.NewConnection(cfg.Regobs.Prod, logger)
	if cfg.Regobs.APIURL != "" || cfg.Regobs.AuthURL != "" {
		conn.WithBaseURLs(cfg.Regobs.APIURL, cfg.Regobs.AuthURL)
	}
	return conn
}
