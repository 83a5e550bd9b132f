package engine

// EventType identifies events emitted while a simulation runs.
type EventType string

const (
	EventTurnStarted  EventType = "turn_started"
	EventRoll         EventType = "roll"
	EventDoubles      EventType = "doubles"
	EventThirdDoubles EventType = "third_doubles"
	EventLanded       EventType = "landed"
	EventCardDrawn    EventType = "card_drawn"
)

// Event is one line of narration. Only the fields relevant to Type are set.
type Event struct {
	Type    EventType `json:"type"`
	Turn    int       `json:"turn,omitempty"`
	Player  string    `json:"player,omitempty"`
	Dice    [2]int    `json:"dice"`
	Doubles int       `json:"doubles,omitempty"`
	Space   int       `json:"space"`
	Name    string    `json:"name,omitempty"`
	Deck    DeckKind  `json:"deck,omitempty"`
	Card    string    `json:"card,omitempty"`
}

// Total is the sum of the dice of a roll event.
func (e Event) Total() int {
	return e.Dice[0] + e.Dice[1]
}

// Sink receives events in the order they happen.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// MultiSink fans events out to several sinks.
type MultiSink []Sink

func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ev)
		}
	}
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})
