package engine

// Setup holds the board and card data a simulation is built from.
type Setup struct {
	Spaces         []Space
	Chance         []Card
	CommunityChest []Card
	MaxHops        int // landings allowed per movement (default DefaultMaxHops)
}

func DefaultSetup() Setup {
	return Setup{
		Spaces:         StandardSpaces(),
		Chance:         StandardChance(),
		CommunityChest: StandardCommunityChest(),
		MaxHops:        DefaultMaxHops,
	}
}
