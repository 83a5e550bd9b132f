// Package lobby seats the named players of a simulation.
package lobby

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMinPlayers = 2
	DefaultMaxPlayers = 8
)

var (
	ErrFull        = errors.New("lobby is full")
	ErrDuplicate   = errors.New("name already seated")
	ErrEmptyName   = errors.New("player name is empty")
	ErrNotEnough   = errors.New("not enough players")
	ErrBadCapacity = errors.New("invalid lobby capacity")
)

// Lobby holds player names in seat order. Seat order is turn order.
type Lobby struct {
	MinPlayers int
	MaxPlayers int
	names      []string
}

// NewLobby creates an empty lobby for min..max players.
func NewLobby(minPlayers, maxPlayers int) (*Lobby, error) {
	if minPlayers < 1 || maxPlayers < minPlayers {
		return nil, fmt.Errorf("%w: %d..%d", ErrBadCapacity, minPlayers, maxPlayers)
	}
	return &Lobby{MinPlayers: minPlayers, MaxPlayers: maxPlayers}, nil
}

// Seat adds a player at the next seat.
func (l *Lobby) Seat(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(l.names) >= l.MaxPlayers {
		return fmt.Errorf("%w (%d seats)", ErrFull, l.MaxPlayers)
	}
	for _, n := range l.names {
		if strings.EqualFold(n, name) {
			return fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
	}
	l.names = append(l.names, name)
	return nil
}

// SeatDefaults fills n seats with "Player 1", "Player 2", ...
func (l *Lobby) SeatDefaults(n int) error {
	for i := 1; i <= n; i++ {
		if err := l.Seat(fmt.Sprintf("Player %d", i)); err != nil {
			return err
		}
	}
	return nil
}

// Ready returns true once the minimum number of players is seated.
func (l *Lobby) Ready() bool {
	return len(l.names) >= l.MinPlayers
}

// Names returns a copy of the seated names, or ErrNotEnough.
func (l *Lobby) Names() ([]string, error) {
	if !l.Ready() {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnough, len(l.names), l.MinPlayers)
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out, nil
}

// Len returns the number of seated players.
func (l *Lobby) Len() int {
	return len(l.names)
}
