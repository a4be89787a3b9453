package cache

import (
	"sync"

	"github.com/keoko/mots/internal/game"
)

type Cache struct {
	mu           sync.Mutex
	games        map[int64]*game.Game
	awaitingName map[int64]bool
}

func NewCache() *Cache {
	return &Cache{
		games:        make(map[int64]*game.Game),
		awaitingName: make(map[int64]bool),
	}
}

// Game returns the user's game, creating it with newGame on first use.
func (c *Cache) Game(userID int64, newGame func() *game.Game) *game.Game {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.games[userID]
	if !ok {
		g = newGame()
		c.games[userID] = g
	}
	return g
}

func (c *Cache) GetGame(userID int64) (*game.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, exists := c.games[userID]
	return g, exists
}

func (c *Cache) DeleteGame(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.games, userID)
}

func (c *Cache) SetAwaitingName(userID int64, awaiting bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if awaiting {
		c.awaitingName[userID] = true
		return
	}
	delete(c.awaitingName, userID)
}

func (c *Cache) AwaitingName(userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaitingName[userID]
}
