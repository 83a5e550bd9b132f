package engine

import (
	"errors"
	"fmt"
)

var ErrEmptyDeck = errors.New("deck has no cards")

// Rand is the slice of math/rand/v2 the engine draws from. Dice and both
// decks share one source so a seed reproduces a whole run.
type Rand interface {
	IntN(n int) int
}

// CardSource hands out the next card of a deck.
type CardSource interface {
	Draw() (Card, error)
}

// Deck is a draw pile and a discard pile. Drawn cards go to the discard
// pile, and the discard pile is shuffled back only once the draw pile is
// empty.
type Deck struct {
	name    string
	draw    []Card
	discard []Card
	rng     Rand
}

// NewDeck puts every card in the discard pile; the first Draw shuffles.
func NewDeck(name string, cards []Card, rng Rand) *Deck {
	d := &Deck{
		name:    name,
		draw:    make([]Card, 0, len(cards)),
		discard: make([]Card, len(cards)),
		rng:     rng,
	}
	copy(d.discard, cards)
	return d
}

// Draw returns the top card of the draw pile, reshuffling first when the
// pile is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.draw) == 0 {
		d.shuffle()
	}
	if len(d.draw) == 0 {
		return Card{}, fmt.Errorf("draw %s: %w", d.name, ErrEmptyDeck)
	}
	card := d.draw[0]
	d.draw = d.draw[1:]
	d.discard = append(d.discard, card)
	return card, nil
}

// shuffle moves the discard pile onto the draw pile in random order by
// repeatedly swap-removing a random discard.
func (d *Deck) shuffle() {
	for len(d.discard) > 0 {
		i := d.rng.IntN(len(d.discard))
		last := len(d.discard) - 1
		d.draw = append(d.draw, d.discard[i])
		d.discard[i] = d.discard[last]
		d.discard = d.discard[:last]
	}
}

// Counts returns the sizes of the draw and discard piles.
func (d *Deck) Counts() (draw, discard int) {
	return len(d.draw), len(d.discard)
}

// Size is the total number of cards, which never changes.
func (d *Deck) Size() int {
	return len(d.draw) + len(d.discard)
}

func (d *Deck) Name() string {
	return d.name
}

// Peek returns the next n cards of the draw pile without drawing them.
func (d *Deck) Peek(n int) []Card {
	if n > len(d.draw) {
		n = len(d.draw)
	}
	out := make([]Card, n)
	copy(out, d.draw[:n])
	return out
}
