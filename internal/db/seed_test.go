package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesStartingWorld(t *testing.T) {
	_, g := openTestDB(t)
	ctx := context.Background()

	result, err := Seed(ctx, g)
	require.NoError(t, err)
	require.True(t, result.Seeded)
	assert.Equal(t, SeedLocationName, result.Location.Name)
	assert.Equal(t, SeedLocationDescription, result.Location.Description)
	assert.Equal(t, SeedPlayerName, result.Player.Name)
	require.NotNil(t, result.Player.Location)
	assert.Equal(t, result.Location.ID, *result.Player.Location)
	require.NotNil(t, result.Thing.Location)
	assert.Equal(t, result.Location.ID.String(), *result.Thing.Location)

	require.NoError(t, g.Do(ctx, func(s *Session) error {
		wizard, err := Get[Player](s, result.Player.ID)
		require.NoError(t, err)
		require.NotNil(t, wizard)
		assert.Equal(t, SeedPlayerName, wizard.Name)
		return nil
	}))
}

func TestSeedIsGuarded(t *testing.T) {
	_, g := openTestDB(t)
	ctx := context.Background()

	_, err := Seed(ctx, g)
	require.NoError(t, err)

	again, err := Seed(ctx, g)
	require.NoError(t, err)
	assert.False(t, again.Seeded)

	require.NoError(t, g.Do(ctx, func(s *Session) error {
		locations, err := Count[Location](s)
		require.NoError(t, err)
		assert.EqualValues(t, 1, locations)

		players, err := Count[Player](s)
		require.NoError(t, err)
		assert.EqualValues(t, 1, players)
		return nil
	}))
}

func TestSeedSkipsPopulatedWorld(t *testing.T) {
	_, g := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, g.Do(ctx, func(s *Session) error {
		_, err := Create(s, NewLocation("Tavern", "Smells of ale."))
		return err
	}))

	result, err := Seed(ctx, g)
	require.NoError(t, err)
	assert.False(t, result.Seeded)

	require.NoError(t, g.Do(ctx, func(s *Session) error {
		things, err := Count[Thing](s)
		require.NoError(t, err)
		assert.Zero(t, things)
		return nil
	}))
}
