package engine_test

import (
	"testing"

	"monopolysim/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T, players int, seed uint64) *engine.Simulation {
	t.Helper()
	rng, _, err := engine.NewRand(seed)
	require.NoError(t, err)
	names := make([]string, players)
	for i := range names {
		names[i] = "Player" + string(rune('1'+i))
	}
	return engine.NewSimulation(names, engine.DefaultSetup(), rng)
}

func TestRunCountsEveryLanding(t *testing.T) {
	sim := newTestSimulation(t, 4, 11)

	landed := 0
	sink := engine.SinkFunc(func(ev engine.Event) {
		if ev.Type == engine.EventLanded {
			landed++
		}
	})
	summary, err := sim.Run(200, sink)
	require.NoError(t, err)

	assert.Equal(t, uint64(landed), summary.TotalLandings)
	assert.Greater(t, summary.TotalLandings, uint64(4*200))
	assert.Len(t, summary.Tally, engine.BoardSize)

	var sum uint64
	for _, tl := range summary.Tally {
		sum += tl.Count
	}
	assert.Equal(t, summary.TotalLandings, sum)
}

func TestRunKeepsDeckSizes(t *testing.T) {
	sim := newTestSimulation(t, 6, 5)
	sink := engine.SinkFunc(func(ev engine.Event) {
		for _, d := range []*engine.Deck{sim.Chance, sim.CommunityChest} {
			draw, discard := d.Counts()
			require.Equal(t, 16, draw+discard, "%s after %s", d.Name(), ev.Type)
		}
	})
	_, err := sim.Run(300, sink)
	require.NoError(t, err)
}

func TestRunTurnOrder(t *testing.T) {
	sim := newTestSimulation(t, 3, 9)

	var turns []int
	var firstRollers []string
	sink := engine.SinkFunc(func(ev engine.Event) {
		switch ev.Type {
		case engine.EventTurnStarted:
			turns = append(turns, ev.Turn)
		case engine.EventRoll:
			if ev.Turn == 1 && (len(firstRollers) == 0 || firstRollers[len(firstRollers)-1] != ev.Player) {
				firstRollers = append(firstRollers, ev.Player)
			}
		}
	})
	summary, err := sim.Run(5, sink)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, turns)
	assert.Equal(t, []string{"Player1", "Player2", "Player3"}, firstRollers)
	assert.Equal(t, []string{"Player1", "Player2", "Player3"}, summary.Players)
	assert.Equal(t, 5, summary.Turns)
}

func TestRunResetsBetweenRuns(t *testing.T) {
	sim := newTestSimulation(t, 2, 21)

	first, err := sim.Run(50, nil)
	require.NoError(t, err)
	require.NotZero(t, first.TotalLandings)

	var startPositions []int
	sink := engine.SinkFunc(func(ev engine.Event) {
		if ev.Type == engine.EventRoll && ev.Turn == 1 && len(startPositions) < 1 {
			startPositions = append(startPositions, ev.Space)
		}
	})
	second, err := sim.Run(1, sink)
	require.NoError(t, err)

	assert.Equal(t, []int{engine.GoIndex}, startPositions)
	assert.Less(t, second.TotalLandings, first.TotalLandings)
}

func TestRunIsReproducibleFromSeed(t *testing.T) {
	a, err := newTestSimulation(t, 4, 1234).Run(50, nil)
	require.NoError(t, err)
	b, err := newTestSimulation(t, 4, 1234).Run(50, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewRandPicksSeed(t *testing.T) {
	_, seed, err := engine.NewRand(0)
	require.NoError(t, err)
	assert.NotZero(t, seed)

	_, seed, err = engine.NewRand(99)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), seed)
}

func TestDiceRange(t *testing.T) {
	rng, _, err := engine.NewRand(77)
	require.NoError(t, err)
	d := engine.NewDice(rng)
	for i := 0; i < 1000; i++ {
		a, b := d.Roll()
		require.True(t, a >= 1 && a <= engine.DieSides)
		require.True(t, b >= 1 && b <= engine.DieSides)
	}
}

func TestMultiSink(t *testing.T) {
	var a, b int
	sink := engine.MultiSink{
		engine.SinkFunc(func(engine.Event) { a++ }),
		nil,
		engine.SinkFunc(func(engine.Event) { b++ }),
	}
	sink.Emit(engine.Event{Type: engine.EventRoll})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
