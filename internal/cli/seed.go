package cli

import (
	"textmud/internal/db"

	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the starting world if the database has no locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeFn, err := openGateway(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := db.Seed(commandContext(cmd), gateway)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !result.Seeded {
				notice(out, "world already has locations, nothing seeded")
				return nil
			}
			success(out, "seeded %s (%s)", result.Location.Name, result.Location.ID)
			success(out, "seeded %s (%s)", result.Player.Name, result.Player.ID)
			success(out, "seeded %s (%s)", result.Thing.Name, result.Thing.ID)
			return nil
		},
	}
}
