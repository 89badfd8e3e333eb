package cli

import (
	"fmt"
	"text/tabwriter"

	"textmud/internal/db"

	"github.com/spf13/cobra"
)

func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count rows per table",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeFn, err := openGateway(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			type row struct {
				table string
				count int64
			}
			var rows []row
			err = gateway.Do(commandContext(cmd), func(s *db.Session) error {
				counters := []struct {
					table string
					count func(*db.Session) (int64, error)
				}{
					{"players", db.Count[db.Player]},
					{"things", db.Count[db.Thing]},
					{"locations", db.Count[db.Location]},
					{"location_exits", db.Count[db.LocationExit]},
					{"player_locations", db.Count[db.PlayerLocation]},
				}
				for _, counter := range counters {
					n, err := counter.count(s)
					if err != nil {
						return err
					}
					rows = append(rows, row{table: counter.table, count: n})
				}
				return nil
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS")
			fmt.Fprintln(w, "-----\t----")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.table, r.count)
			}
			return w.Flush()
		},
	}
}
