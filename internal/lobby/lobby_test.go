package lobby

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatDefaults(t *testing.T) {
	l, err := NewLobby(DefaultMinPlayers, DefaultMaxPlayers)
	require.NoError(t, err)
	require.NoError(t, l.SeatDefaults(3))

	names, err := l.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Player 1", "Player 2", "Player 3"}, names)
}

func TestSeatRules(t *testing.T) {
	l, err := NewLobby(2, 3)
	require.NoError(t, err)

	assert.True(t, errors.Is(l.Seat("  "), ErrEmptyName))
	require.NoError(t, l.Seat("Ada"))
	assert.False(t, l.Ready())
	_, err = l.Names()
	assert.True(t, errors.Is(err, ErrNotEnough))

	assert.True(t, errors.Is(l.Seat("ada"), ErrDuplicate))
	require.NoError(t, l.Seat("Grace"))
	require.NoError(t, l.Seat(" Linus "))
	assert.True(t, errors.Is(l.Seat("Ken"), ErrFull))
	assert.Equal(t, 3, l.Len())

	names, err := l.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ada", "Grace", "Linus"}, names)
}

func TestNewLobbyCapacity(t *testing.T) {
	_, err := NewLobby(0, 4)
	assert.True(t, errors.Is(err, ErrBadCapacity))
	_, err = NewLobby(5, 4)
	assert.True(t, errors.Is(err, ErrBadCapacity))
}
