package engine_test

import (
	"fmt"
	"testing"

	"monopolysim/internal/engine"
)

// fixedRand returns the queued values in order, then zeros.
type fixedRand struct {
	values []int
}

func (r *fixedRand) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// fixedDice throws the queued pairs and fails the test when it runs out.
type fixedDice struct {
	t     *testing.T
	pairs [][2]int
	rolls int
}

func (d *fixedDice) Roll() (int, int) {
	d.t.Helper()
	if len(d.pairs) == 0 {
		d.t.Fatalf("unexpected roll %d", d.rolls+1)
	}
	p := d.pairs[0]
	d.pairs = d.pairs[1:]
	d.rolls++
	return p[0], p[1]
}

func dice(t *testing.T, pairs ...[2]int) *fixedDice {
	return &fixedDice{t: t, pairs: pairs}
}

// stackedDeck hands out cards in the given order.
type stackedDeck struct {
	cards []engine.Card
	drawn int
}

func (s *stackedDeck) Draw() (engine.Card, error) {
	if len(s.cards) == 0 {
		return engine.Card{}, engine.ErrEmptyDeck
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	s.drawn++
	return c, nil
}

func stacked(cards ...engine.Card) *stackedDeck {
	return &stackedDeck{cards: cards}
}

func numberedCards(n int) []engine.Card {
	cards := make([]engine.Card, n)
	for i := range cards {
		cards[i] = engine.Card{Text: fmt.Sprintf("card %d", i), Effect: engine.Stay()}
	}
	return cards
}

func countEvents(events []engine.Event, typ engine.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

var (
	boardwalk = engine.Card{Text: "Advance to Boardwalk", Effect: engine.AdvanceTo(39)}
	backThree = engine.Card{Text: "Go Back 3 Spaces", Effect: engine.MoveBy(-3)}
	nothing   = engine.Card{Text: "Bank error in your favor. Collect $200", Effect: engine.Stay()}
	toJail    = engine.Card{Text: "Go to Jail", Effect: engine.AdvanceTo(engine.JailIndex)}
)
