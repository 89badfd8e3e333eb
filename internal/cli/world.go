package cli

import (
	"textmud/internal/db"

	"github.com/spf13/cobra"
)

func LoadWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load-world",
		Short: "Load locations and things from a CSV file",
		Long: `Reads rows of kind,name,detail (with a header line). Locations use the
detail as their description; things use it as the name of the location
they lie in. Existing rows are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			gateway, closeFn, err := openGateway(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			counts, err := db.LoadWorldFile(commandContext(cmd), gateway, path)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "loaded %d locations and %d things from %s", counts.Locations, counts.Things, path)
			return nil
		},
	}
	cmd.Flags().String("file", "world.csv", "path to world csv")
	return cmd
}
