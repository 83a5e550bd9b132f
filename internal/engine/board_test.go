package engine_test

import (
	"testing"

	"monopolysim/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestStandardBoardCategories(t *testing.T) {
	b := engine.StandardBoard()
	assert.Equal(t, engine.BoardSize, b.Len())

	want := map[int]engine.SpaceCategory{
		2: engine.CategoryCommunityChest, 17: engine.CategoryCommunityChest, 33: engine.CategoryCommunityChest,
		7: engine.CategoryChance, 22: engine.CategoryChance, 36: engine.CategoryChance,
		30: engine.CategoryGoToJail,
	}
	for i := 0; i < b.Len(); i++ {
		s := b.Space(i)
		assert.Equal(t, i, s.Index)
		cat, ok := want[i]
		if !ok {
			cat = engine.CategoryPlain
		}
		assert.Equal(t, cat, s.Category, "space %d (%s)", i, s.Name)
	}
	assert.Equal(t, "Go", b.Space(0).Name)
	assert.Equal(t, "Jail", b.Space(engine.JailIndex).Name)
	assert.Equal(t, "Boardwalk", b.Space(39).Name)
}

func TestBoardWrap(t *testing.T) {
	b := engine.StandardBoard()
	tests := []struct {
		pos, want int
	}{
		{0, 0},
		{39, 39},
		{40, 0},
		{41, 1},
		{51, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Wrap(tt.pos), "Wrap(%d)", tt.pos)
	}
}

func TestBoardRecordLanding(t *testing.T) {
	b := engine.StandardBoard()
	assert.Equal(t, engine.CategoryChance, b.RecordLanding(7))
	assert.Equal(t, engine.CategoryChance, b.RecordLanding(7))
	assert.Equal(t, engine.CategoryPlain, b.RecordLanding(39))

	assert.Equal(t, uint64(2), b.Space(7).Landed)
	assert.Equal(t, uint64(3), b.TotalLandings())

	tally := b.Tally()
	assert.Len(t, tally, engine.BoardSize)
	assert.Equal(t, engine.Tally{Index: 39, Name: "Boardwalk", Group: "dark_blue", Count: 1}, tally[39])

	b.Reset()
	assert.Zero(t, b.TotalLandings())
}

func TestBoardIndexOutOfRangePanics(t *testing.T) {
	b := engine.StandardBoard()
	assert.Panics(t, func() { b.Space(40) })
	assert.Panics(t, func() { b.RecordLanding(-1) })
}

func TestNewBoardRejectsWrongSize(t *testing.T) {
	assert.Panics(t, func() { engine.NewBoard(engine.StandardSpaces()[:39]) })
}

func TestCategoryNames(t *testing.T) {
	for _, c := range []engine.SpaceCategory{
		engine.CategoryPlain, engine.CategoryChance, engine.CategoryCommunityChest, engine.CategoryGoToJail,
	} {
		got, ok := engine.ParseCategory(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := engine.ParseCategory("free_parking")
	assert.False(t, ok)
}
