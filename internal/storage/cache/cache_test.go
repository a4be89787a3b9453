package cache

import (
	"testing"
	"time"

	"github.com/keoko/mots/internal/catalog"
	"github.com/keoko/mots/internal/clock"
	"github.com/keoko/mots/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCache_Game(t *testing.T) {
	t.Parallel()

	c := NewCache()
	cat, err := catalog.Default()
	require.NoError(t, err)

	created := 0
	newGame := func() *game.Game {
		created++
		return game.NewGame("tg:1", cat, nil, nil, clock.NewFake(time.Unix(0, 0)), zap.NewNop())
	}

	first := c.Game(1, newGame)
	second := c.Game(1, newGame)
	assert.Same(t, first, second)
	assert.Equal(t, 1, created)

	got, ok := c.GetGame(1)
	require.True(t, ok)
	assert.Same(t, first, got)

	c.DeleteGame(1)
	_, ok = c.GetGame(1)
	assert.False(t, ok)
}

func TestCache_AwaitingName(t *testing.T) {
	t.Parallel()

	c := NewCache()
	assert.False(t, c.AwaitingName(1))

	c.SetAwaitingName(1, true)
	assert.True(t, c.AwaitingName(1))
	assert.False(t, c.AwaitingName(2))

	c.SetAwaitingName(1, false)
	assert.False(t, c.AwaitingName(1))
}
