package engine

// SpaceCategory decides what happens when a token lands on a space.
type SpaceCategory int

const (
	CategoryPlain          SpaceCategory = 0
	CategoryChance         SpaceCategory = 1
	CategoryCommunityChest SpaceCategory = 2
	CategoryGoToJail       SpaceCategory = 3
)

var categoryNames = map[SpaceCategory]string{
	CategoryPlain:          "plain",
	CategoryChance:         "chance",
	CategoryCommunityChest: "community_chest",
	CategoryGoToJail:       "go_to_jail",
}

func (c SpaceCategory) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (SpaceCategory, bool) {
	for c, name := range categoryNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}

// DrawsCard returns true for the two card spaces.
func (c SpaceCategory) DrawsCard() bool {
	return c == CategoryChance || c == CategoryCommunityChest
}
