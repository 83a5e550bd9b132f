package engine

import "fmt"

// Summary is the outcome of one simulation run.
type Summary struct {
	Players       []string `json:"players"`
	Turns         int      `json:"turns"`
	Seed          uint64   `json:"seed,omitempty"`
	Tally         []Tally  `json:"tally"`
	TotalLandings uint64   `json:"total_landings"`
	Positions     []int    `json:"positions"`
}

// Simulation owns the board, both decks and the players. It runs
// strictly sequentially; nothing in it is safe for concurrent use.
type Simulation struct {
	Players        []*Player
	Board          *Board
	Chance         *Deck
	CommunityChest *Deck
	Resolver       *Resolver
	Seed           uint64
}

// NewSimulation seats one player per name and builds the board and decks
// from setup. rng is the single random stream used for dice and shuffles.
func NewSimulation(names []string, setup Setup, rng Rand) *Simulation {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name)
	}

	board := NewBoard(setup.Spaces)
	chance := NewDeck(string(DeckChance), setup.Chance, rng)
	chest := NewDeck(string(DeckCommunityChest), setup.CommunityChest, rng)

	return &Simulation{
		Players:        players,
		Board:          board,
		Chance:         chance,
		CommunityChest: chest,
		Resolver: &Resolver{
			Board:          board,
			Chance:         chance,
			CommunityChest: chest,
			Dice:           NewDice(rng),
			MaxHops:        setup.MaxHops,
		},
	}
}

// Run plays turns rounds. Each round every player takes one turn in seat
// order. Positions and counters start from zero on every call; the decks
// carry over between runs.
func (s *Simulation) Run(turns int, sink Sink) (Summary, error) {
	if sink == nil {
		sink = Discard
	}
	for _, p := range s.Players {
		p.Reset()
	}
	s.Board.Reset()

	for round := 1; round <= turns; round++ {
		sink.Emit(Event{Type: EventTurnStarted, Turn: round})
		for _, p := range s.Players {
			events, err := s.Resolver.TakeTurn(p)
			for _, ev := range events {
				ev.Turn = round
				sink.Emit(ev)
			}
			if err != nil {
				return s.summary(round), fmt.Errorf("turn %d: %w", round, err)
			}
		}
	}
	return s.summary(turns), nil
}

func (s *Simulation) summary(turns int) Summary {
	names := make([]string, len(s.Players))
	positions := make([]int, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
		positions[i] = p.Position
	}
	return Summary{
		Players:       names,
		Turns:         turns,
		Seed:          s.Seed,
		Tally:         s.Board.Tally(),
		TotalLandings: s.Board.TotalLandings(),
		Positions:     positions,
	}
}
