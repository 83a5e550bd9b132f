// Package catalog reads and writes the board and card definitions a
// simulation runs on.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"monopolysim/internal/engine"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	Version        string  `yaml:"version"`
	MaxHops        int     `yaml:"max_hops,omitempty"`
	Board          []Space `yaml:"board"`
	Chance         []Card  `yaml:"chance"`
	CommunityChest []Card  `yaml:"community_chest"`
}

type Space struct {
	Name     string `yaml:"name"`
	Group    string `yaml:"group,omitempty"`
	Category string `yaml:"category,omitempty"`
}

type Card struct {
	Text   string `yaml:"text"`
	Effect Effect `yaml:"effect"`
}

type Effect struct {
	Kind        string      `yaml:"kind"`
	Destination int         `yaml:"destination,omitempty"`
	Table       map[int]int `yaml:"table,omitempty"`
	Offset      int         `yaml:"offset,omitempty"`
}

const currentVersion = "1"

// Default returns the standard US board and decks.
func Default() *Catalog {
	c := &Catalog{Version: currentVersion, MaxHops: engine.DefaultMaxHops}
	c.ApplyDefaults()
	return c
}

// Load reads a catalog file. Sections left out of the file fall back to
// the standard data.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes, fills defaults and validates a catalog document.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills every empty section from the standard data.
func (c *Catalog) ApplyDefaults() {
	if c.Version == "" {
		c.Version = currentVersion
	}
	if c.MaxHops <= 0 {
		c.MaxHops = engine.DefaultMaxHops
	}
	if len(c.Board) == 0 {
		for _, s := range engine.StandardSpaces() {
			c.Board = append(c.Board, Space{Name: s.Name, Group: s.Group, Category: s.Category.String()})
		}
	}
	for i := range c.Board {
		if c.Board[i].Category == "" {
			c.Board[i].Category = engine.CategoryPlain.String()
		}
	}
	if len(c.Chance) == 0 {
		c.Chance = fromEngineCards(engine.StandardChance())
	}
	if len(c.CommunityChest) == 0 {
		c.CommunityChest = fromEngineCards(engine.StandardCommunityChest())
	}
}

// Validate checks the catalog can be turned into a working board.
func (c *Catalog) Validate() error {
	if len(c.Board) != engine.BoardSize {
		return fmt.Errorf("%w: board has %d spaces, want %d", ErrInvalidCatalog, len(c.Board), engine.BoardSize)
	}
	hasChance, hasChest := false, false
	for i, s := range c.Board {
		if s.Name == "" {
			return fmt.Errorf("%w: space %d has no name", ErrInvalidCatalog, i)
		}
		cat, ok := engine.ParseCategory(s.Category)
		if !ok {
			return fmt.Errorf("%w: space %d (%s) has unknown category %q", ErrInvalidCatalog, i, s.Name, s.Category)
		}
		if i == engine.JailIndex && cat != engine.CategoryPlain {
			return fmt.Errorf("%w: jail (space %d) must be plain", ErrInvalidCatalog, i)
		}
		hasChance = hasChance || cat == engine.CategoryChance
		hasChest = hasChest || cat == engine.CategoryCommunityChest
	}
	if err := validateDeck("chance", c.Chance, hasChance); err != nil {
		return err
	}
	return validateDeck("community_chest", c.CommunityChest, hasChest)
}

func validateDeck(name string, cards []Card, required bool) error {
	if required && len(cards) == 0 {
		return fmt.Errorf("%w: %s deck is empty", ErrInvalidCatalog, name)
	}
	for i, card := range cards {
		if card.Text == "" {
			return fmt.Errorf("%w: %s card %d has no text", ErrInvalidCatalog, name, i)
		}
		if err := card.Effect.validate(); err != nil {
			return fmt.Errorf("%w: %s card %d (%s): %v", ErrInvalidCatalog, name, i, card.Text, err)
		}
	}
	return nil
}

func (e Effect) validate() error {
	inRange := func(i int) bool { return i >= 0 && i < engine.BoardSize }
	switch engine.EffectKind(e.Kind) {
	case engine.EffectNone:
	case engine.EffectAdvance:
		if !inRange(e.Destination) {
			return fmt.Errorf("destination %d off the board", e.Destination)
		}
	case engine.EffectNearest:
		if len(e.Table) == 0 {
			return errors.New("nearest effect needs a table")
		}
		for from, to := range e.Table {
			if !inRange(from) || !inRange(to) {
				return fmt.Errorf("table entry %d -> %d off the board", from, to)
			}
		}
	case engine.EffectOffset:
		if e.Offset == 0 {
			return errors.New("offset effect needs a non-zero offset")
		}
	default:
		return fmt.Errorf("unknown effect kind %q", e.Kind)
	}
	return nil
}

// Setup converts a validated catalog to engine data.
func (c *Catalog) Setup() engine.Setup {
	spaces := make([]engine.Space, len(c.Board))
	for i, s := range c.Board {
		cat, _ := engine.ParseCategory(s.Category)
		spaces[i] = engine.Space{Index: i, Name: s.Name, Group: s.Group, Category: cat}
	}
	return engine.Setup{
		Spaces:         spaces,
		Chance:         toEngineCards(c.Chance),
		CommunityChest: toEngineCards(c.CommunityChest),
		MaxHops:        c.MaxHops,
	}
}

// Marshal renders the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func toEngineCards(cards []Card) []engine.Card {
	out := make([]engine.Card, len(cards))
	for i, c := range cards {
		out[i] = engine.Card{
			Text: c.Text,
			Effect: engine.Effect{
				Kind:        engine.EffectKind(c.Effect.Kind),
				Destination: c.Effect.Destination,
				Table:       c.Effect.Table,
				Offset:      c.Effect.Offset,
			},
		}
	}
	return out
}

func fromEngineCards(cards []engine.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = Card{
			Text: c.Text,
			Effect: Effect{
				Kind:        string(c.Effect.Kind),
				Destination: c.Effect.Destination,
				Table:       c.Effect.Table,
				Offset:      c.Effect.Offset,
			},
		}
	}
	return out
}
