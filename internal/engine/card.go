package engine

// EffectKind identifies how a card moves the token that drew it.
type EffectKind string

const (
	EffectNone    EffectKind = "none"    // stay on the card space
	EffectAdvance EffectKind = "advance" // go to Destination
	EffectNearest EffectKind = "nearest" // go to Table[landed], stay if absent
	EffectOffset  EffectKind = "offset"  // move Offset spaces from the card space
)

// Effect is the movement part of a card. It is plain data so decks can be
// loaded from files and compared in tests.
type Effect struct {
	Kind        EffectKind  `json:"kind"`
	Destination int         `json:"destination,omitempty"`
	Table       map[int]int `json:"table,omitempty"`
	Offset      int         `json:"offset,omitempty"`
}

// Resolve returns where a token standing on landed goes next, and false
// when the card does not move it.
func (e Effect) Resolve(landed int) (int, bool) {
	switch e.Kind {
	case EffectAdvance:
		return e.Destination, true
	case EffectNearest:
		dest, ok := e.Table[landed]
		return dest, ok
	case EffectOffset:
		dest := (landed + e.Offset) % BoardSize
		if dest < 0 {
			dest += BoardSize
		}
		return dest, true
	default:
		return 0, false
	}
}

func Stay() Effect { return Effect{Kind: EffectNone} }

func AdvanceTo(dest int) Effect { return Effect{Kind: EffectAdvance, Destination: dest} }

func MoveBy(offset int) Effect { return Effect{Kind: EffectOffset, Offset: offset} }

func Nearest(table map[int]int) Effect { return Effect{Kind: EffectNearest, Table: table} }

// Card is a Chance or Community Chest card. Text is cosmetic.
type Card struct {
	Text   string `json:"text"`
	Effect Effect `json:"effect"`
}

// DeckKind names the two shared decks.
type DeckKind string

const (
	DeckChance         DeckKind = "Chance"
	DeckCommunityChest DeckKind = "Community Chest"
)

// NearestRailroad maps each Chance space to the next railroad.
func NearestRailroad() map[int]int {
	return map[int]int{7: 15, 22: 25, 36: 5}
}

// NearestUtility maps each Chance space to the next utility.
func NearestUtility() map[int]int {
	return map[int]int{7: 12, 22: 28, 36: 12}
}

// StandardChance returns the 16 US Chance cards in printed order.
func StandardChance() []Card {
	return []Card{
		{"Advance to Boardwalk", AdvanceTo(39)},
		{"Advance to Go (Collect $200)", AdvanceTo(GoIndex)},
		{"Advance to Illinois Avenue. If you pass Go, collect $200", AdvanceTo(24)},
		{"Advance to St. Charles Place. If you pass Go, collect $200", AdvanceTo(11)},
		{"Advance to the nearest Railroad. If unowned, you may buy it from the Bank. If owned, pay owner twice the rental to which they are otherwise entitled", Nearest(NearestRailroad())},
		{"Advance to the nearest Railroad. If unowned, you may buy it from the Bank. If owned, pay owner twice the rental to which they are otherwise entitled", Nearest(NearestRailroad())},
		{"Advance token to nearest Utility. If unowned, you may buy it from the Bank. If owned, throw dice and pay owner a total ten times amount thrown.", Nearest(NearestUtility())},
		{"Bank pays you dividend of $50", Stay()},
		{"Get Out of Jail Free", Stay()},
		{"Go Back 3 Spaces", MoveBy(-3)},
		{"Go to Jail. Go directly to jail, do not pass Go, do not collect $200", AdvanceTo(JailIndex)},
		{"Make general repairs on all your property. For each house pay $25. For each hotel pay $100", Stay()},
		{"Speeding fine $15", Stay()},
		{"Take a trip to Reading Railroad. If you pass Go, collect $200", AdvanceTo(5)},
		{"You have been elected Chairman of the Board. Pay each player $50", Stay()},
		{"Your building loan matures. Collect $150", Stay()},
	}
}

// StandardCommunityChest returns the 16 US Community Chest cards.
func StandardCommunityChest() []Card {
	return []Card{
		{"Advance to Go (Collect $200)", AdvanceTo(GoIndex)},
		{"Bank error in your favor. Collect $200", Stay()},
		{"Doctor's fee. Pay $50", Stay()},
		{"From sale of stock you get $50", Stay()},
		{"Get Out of Jail Free", Stay()},
		{"Go to Jail. Go directly to jail, do not pass Go, do not collect $200", AdvanceTo(JailIndex)},
		{"Holiday fund matures. Receive $100", Stay()},
		{"Income tax refund. Collect $20", Stay()},
		{"It is your birthday. Collect $10 from every player", Stay()},
		{"Life insurance matures. Collect $100", Stay()},
		{"Pay hospital fees of $100", Stay()},
		{"Pay school fees of $50", Stay()},
		{"Receive $25 consultancy fee", Stay()},
		{"You are assessed for street repair. $40 per house. $115 per hotel", Stay()},
		{"You have won second prize in a beauty contest. Collect $10", Stay()},
		{"You inherit $100", Stay()},
	}
}
