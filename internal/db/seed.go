package db

import (
	"context"
	"fmt"
)

const (
	SeedLocationName        = "Limbo"
	SeedLocationDescription = "A formless grey void between places."
	SeedPlayerName          = "Wizard"
	SeedThingName           = "Veeblefetzer"
)

// SeedResult reports what Seed inserted.
type SeedResult struct {
	Seeded   bool
	Location *Location
	Player   *Player
	Thing    *Thing
}

// Seed creates the starting world: Limbo, a Wizard standing in it and a
// Veeblefetzer lying there. It does nothing once any location exists, so it
// is safe to run on every start.
func Seed(ctx context.Context, g *Gateway) (SeedResult, error) {
	var result SeedResult
	err := g.Do(ctx, func(s *Session) error {
		count, err := Count[Location](s)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		limbo := NewLocation(SeedLocationName, SeedLocationDescription)
		if _, err := Create(s, limbo); err != nil {
			return err
		}
		wizard := NewPlayer(SeedPlayerName, &limbo.ID)
		if _, err := Create(s, wizard); err != nil {
			return err
		}
		where := limbo.ID.String()
		item := NewThing(SeedThingName, &where)
		if _, err := Create(s, item); err != nil {
			return err
		}
		result = SeedResult{Seeded: true, Location: limbo, Player: wizard, Thing: item}
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed world: %w", err)
	}
	return result, nil
}
