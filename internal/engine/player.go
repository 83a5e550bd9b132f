package engine

// Player is a token on the board.
type Player struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Reset puts the token back on Go.
func (p *Player) Reset() {
	p.Position = GoIndex
}
