package engine

import "fmt"

const (
	BoardSize = 40
	GoIndex   = 0
	JailIndex = 10
)

// Space is one square of the board. Landed only ever grows during a run.
type Space struct {
	Index    int           `json:"index"`
	Name     string        `json:"name"`
	Group    string        `json:"group,omitempty"`
	Category SpaceCategory `json:"category"`
	Landed   uint64        `json:"landed"`
}

// Tally is the landing count of one space after a run.
type Tally struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Group string `json:"group,omitempty"`
	Count uint64 `json:"count"`
}

// Board is the fixed ring of BoardSize spaces. The successor of the last
// space is space 0.
type Board struct {
	spaces []Space
}

// NewBoard copies the given spaces into a board, renumbering them by
// position. It panics unless exactly BoardSize spaces are given.
func NewBoard(spaces []Space) *Board {
	if len(spaces) != BoardSize {
		panic(fmt.Sprintf("engine: board needs %d spaces, got %d", BoardSize, len(spaces)))
	}
	b := &Board{spaces: make([]Space, BoardSize)}
	copy(b.spaces, spaces)
	for i := range b.spaces {
		b.spaces[i].Index = i
		b.spaces[i].Landed = 0
	}
	return b
}

// StandardBoard returns the US board layout with zeroed counters.
func StandardBoard() *Board {
	return NewBoard(StandardSpaces())
}

// Space returns a copy of the space at i. An index outside the board is a
// caller bug and panics.
func (b *Board) Space(i int) Space {
	b.mustIndex(i)
	return b.spaces[i]
}

// RecordLanding counts a landing on space i and reports its category.
func (b *Board) RecordLanding(i int) SpaceCategory {
	b.mustIndex(i)
	b.spaces[i].Landed++
	return b.spaces[i].Category
}

// Wrap folds a tentative position past the last space back onto the board.
func (b *Board) Wrap(pos int) int {
	for pos >= len(b.spaces) {
		pos -= len(b.spaces)
	}
	for pos < 0 {
		pos += len(b.spaces)
	}
	return pos
}

// Len returns the number of spaces.
func (b *Board) Len() int {
	return len(b.spaces)
}

// Reset zeroes every landing counter.
func (b *Board) Reset() {
	for i := range b.spaces {
		b.spaces[i].Landed = 0
	}
}

// Tally returns the landing counts in board order.
func (b *Board) Tally() []Tally {
	out := make([]Tally, len(b.spaces))
	for i, s := range b.spaces {
		out[i] = Tally{Index: i, Name: s.Name, Group: s.Group, Count: s.Landed}
	}
	return out
}

// TotalLandings sums every counter.
func (b *Board) TotalLandings() uint64 {
	var n uint64
	for _, s := range b.spaces {
		n += s.Landed
	}
	return n
}

// Spaces returns a copy of all spaces.
func (b *Board) Spaces() []Space {
	out := make([]Space, len(b.spaces))
	copy(out, b.spaces)
	return out
}

func (b *Board) mustIndex(i int) {
	if i < 0 || i >= len(b.spaces) {
		panic(fmt.Sprintf("engine: board index %d out of range", i))
	}
}

// StandardSpaces returns the 40 spaces of the US Monopoly board.
func StandardSpaces() []Space {
	var spaces []Space
	add := func(name, group string, cat SpaceCategory) {
		spaces = append(spaces, Space{Index: len(spaces), Name: name, Group: group, Category: cat})
	}
	plain := func(name, group string) { add(name, group, CategoryPlain) }
	chance := func() { add("Chance", "", CategoryChance) }
	chest := func() { add("Community Chest", "", CategoryCommunityChest) }

	plain("Go", "")
	plain("Mediterranean Avenue", "brown")
	chest()
	plain("Baltic Avenue", "brown")
	plain("Income Tax", "")
	plain("Reading Railroad", "railroad")
	plain("Oriental Avenue", "light_blue")
	chance()
	plain("Vermont Avenue", "light_blue")
	plain("Connecticut Avenue", "light_blue")

	plain("Jail", "")
	plain("St. Charles Place", "pink")
	plain("Electric Company", "utility")
	plain("States Avenue", "pink")
	plain("Virginia Avenue", "pink")
	plain("Pennsylvania Railroad", "railroad")
	plain("St. James Place", "orange")
	chest()
	plain("Tennessee Avenue", "orange")
	plain("New York Avenue", "orange")

	plain("Free Parking", "")
	plain("Kentucky Avenue", "red")
	chance()
	plain("Indiana Avenue", "red")
	plain("Illinois Avenue", "red")
	plain("B & O Railroad", "railroad")
	plain("Atlantic Avenue", "yellow")
	plain("Ventnor Avenue", "yellow")
	plain("Waterworks", "utility")
	plain("Marvin Gardens", "yellow")

	add("Go to Jail", "", CategoryGoToJail)
	plain("Pacific Avenue", "green")
	plain("North Carolina Avenue", "green")
	chest()
	plain("Pennsylvania Avenue", "green")
	plain("Short Line Railroad", "railroad")
	chance()
	plain("Park Place", "dark_blue")
	plain("Luxury Tax", "")
	plain("Boardwalk", "dark_blue")

	return spaces
}
