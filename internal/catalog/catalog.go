package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/keoko/mots/internal/models"
)

//go:embed topics.json
var defaultTopics []byte

var (
	ErrDuplicateTopic = errors.New("duplicate topic id")
	ErrEmptyTarget    = errors.New("word with empty target")
	ErrNoTopics       = errors.New("catalog has no topics")
)

type Catalog struct {
	topics []models.Topic
	byID   map[string]int
}

func New(topics []models.Topic) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	c := &Catalog{
		topics: make([]models.Topic, 0, len(topics)),
		byID:   make(map[string]int, len(topics)),
	}

	for _, t := range topics {
		if t.ID == "" || t.ID == models.PracticeTopicID {
			return nil, fmt.Errorf("invalid topic id %q", t.ID)
		}
		if _, ok := c.byID[t.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTopic, t.ID)
		}
		for i, w := range t.Words {
			if strings.TrimSpace(w.Target) == "" {
				return nil, fmt.Errorf("%w: topic %s, word %d", ErrEmptyTarget, t.ID, i)
			}
		}

		words := make([]models.WordPair, len(t.Words))
		copy(words, t.Words)
		t.Words = words

		c.byID[t.ID] = len(c.topics)
		c.topics = append(c.topics, t)
	}

	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	var topics []models.Topic
	if err := json.Unmarshal(defaultTopics, &topics); err != nil {
		return nil, fmt.Errorf("failed to decode embedded topics: %w", err)
	}
	return New(topics)
}

func (c *Catalog) Topics() []models.Topic {
	out := make([]models.Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

func (c *Catalog) Topic(id string) (models.Topic, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Topic{}, false
	}
	return c.topics[i], true
}
