package engine

import (
	"errors"
	"fmt"
)

// MaxDoubles is the number of consecutive doubles that sends a player to
// jail instead of moving.
const MaxDoubles = 3

// DefaultMaxHops bounds the landings a single movement may chain through
// Go To Jail redirects and card moves.
const DefaultMaxHops = 16

var ErrRedirectLoop = errors.New("space effects did not settle")

// Resolver plays turns against a board and the two shared decks.
type Resolver struct {
	Board          *Board
	Chance         CardSource
	CommunityChest CardSource
	Dice           Roller
	MaxHops        int
}

// turn is the state carried through one player's turn, including any
// extra throws earned with doubles.
type turn struct {
	player    *Player
	phase     TurnPhase
	doubles   int
	dice      [2]int
	candidate int
	hops      int
	rollAgain bool
	deck      DeckKind
	events    []Event
}

// TakeTurn resolves a full turn for p: the throw, the space effects it
// triggers and every extra throw earned by doubles. p.Position holds the
// final space when it returns. The events come back even on error.
func (r *Resolver) TakeTurn(p *Player) ([]Event, error) {
	t := &turn{player: p, phase: PhaseRolling}
	for t.phase != PhaseDone {
		var err error
		switch t.phase {
		case PhaseRolling:
			r.roll(t)
		case PhaseMoving:
			r.move(t)
		case PhaseResolving:
			err = r.resolve(t)
		case PhaseDrawing:
			err = r.drawCard(t)
		case PhaseAwaitingRoll:
			t.rollAgain = false
			t.phase = PhaseRolling
		default:
			err = fmt.Errorf("unknown turn phase %s", t.phase)
		}
		if err != nil {
			return t.events, fmt.Errorf("%s turn: %w", p.Name, err)
		}
	}
	return t.events, nil
}

func (r *Resolver) roll(t *turn) {
	d1, d2 := r.Dice.Roll()
	t.dice = [2]int{d1, d2}
	t.events = append(t.events, Event{
		Type:   EventRoll,
		Player: t.player.Name,
		Dice:   t.dice,
		Space:  t.player.Position,
	})
	t.candidate = t.player.Position + d1 + d2
	t.hops = 0

	if d1 != d2 {
		t.phase = PhaseMoving
		return
	}

	t.doubles++
	if t.doubles >= MaxDoubles {
		// Straight to jail: no wrap, no space effects, no more throws.
		t.events = append(t.events, Event{
			Type:    EventThirdDoubles,
			Player:  t.player.Name,
			Dice:    t.dice,
			Doubles: t.doubles,
			Space:   JailIndex,
		})
		r.Board.RecordLanding(JailIndex)
		t.land(JailIndex, r.Board.Space(JailIndex).Name)
		t.player.Position = JailIndex
		t.phase = PhaseDone
		return
	}
	t.events = append(t.events, Event{
		Type:    EventDoubles,
		Player:  t.player.Name,
		Dice:    t.dice,
		Doubles: t.doubles,
	})
	t.rollAgain = true
	t.phase = PhaseMoving
}

func (r *Resolver) move(t *turn) {
	t.candidate = r.Board.Wrap(t.candidate)
	t.phase = PhaseResolving
}

func (r *Resolver) resolve(t *turn) error {
	t.hops++
	if limit := r.maxHops(); t.hops > limit {
		return fmt.Errorf("%w after %d landings", ErrRedirectLoop, limit)
	}

	cat := r.Board.RecordLanding(t.candidate)
	t.land(t.candidate, r.Board.Space(t.candidate).Name)

	switch cat {
	case CategoryGoToJail:
		t.candidate = JailIndex
	case CategoryChance:
		t.deck = DeckChance
		t.phase = PhaseDrawing
	case CategoryCommunityChest:
		t.deck = DeckCommunityChest
		t.phase = PhaseDrawing
	default:
		t.settle()
	}
	return nil
}

func (r *Resolver) drawCard(t *turn) error {
	src := r.Chance
	if t.deck == DeckCommunityChest {
		src = r.CommunityChest
	}
	card, err := src.Draw()
	if err != nil {
		return err
	}
	t.events = append(t.events, Event{
		Type:   EventCardDrawn,
		Player: t.player.Name,
		Space:  t.candidate,
		Deck:   t.deck,
		Card:   card.Text,
	})

	dest, moved := card.Effect.Resolve(t.candidate)
	if !moved {
		t.settle()
		return nil
	}
	if dest < 0 || dest >= r.Board.Len() {
		return fmt.Errorf("card %q sends token to %d, off the board", card.Text, dest)
	}
	t.candidate = dest
	t.phase = PhaseResolving
	return nil
}

func (r *Resolver) maxHops() int {
	if r.MaxHops > 0 {
		return r.MaxHops
	}
	return DefaultMaxHops
}

func (t *turn) land(space int, name string) {
	t.events = append(t.events, Event{
		Type:   EventLanded,
		Player: t.player.Name,
		Space:  space,
		Name:   name,
	})
}

// settle commits the candidate space and decides whether doubles earned
// another throw.
func (t *turn) settle() {
	t.player.Position = t.candidate
	if t.rollAgain {
		t.phase = PhaseAwaitingRoll
		return
	}
	t.phase = PhaseDone
}
