package engine

// TurnPhase is a state of the turn resolution machine.
type TurnPhase int

const (
	PhaseRolling      TurnPhase = iota // throwing the dice
	PhaseMoving                        // applying the throw to the token
	PhaseResolving                     // recording a landing and its space effect
	PhaseDrawing                       // drawing a card for the current space
	PhaseAwaitingRoll                  // doubles earned another throw
	PhaseDone                          // turn finished
)

var turnPhaseNames = map[TurnPhase]string{
	PhaseRolling:      "Rolling",
	PhaseMoving:       "Moving",
	PhaseResolving:    "Resolving",
	PhaseDrawing:      "Drawing",
	PhaseAwaitingRoll: "AwaitingRoll",
	PhaseDone:         "Done",
}

func (p TurnPhase) String() string {
	if s, ok := turnPhaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
