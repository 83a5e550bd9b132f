package protocol

import "monopolysim/internal/engine"

// Message types: server -> spectator
const (
	MsgRunStarted = "run_started"
	MsgEvent      = "event"
	MsgSummary    = "summary"
	MsgError      = "error"
)

// RunStarted opens the feed of one run.
type RunStarted struct {
	RunID   string         `json:"run_id"`
	Players []string       `json:"players"`
	Turns   int            `json:"turns"`
	Seed    uint64         `json:"seed"`
	Board   []engine.Space `json:"board"`
}

// EventMsg carries one engine event and its narration line.
type EventMsg struct {
	engine.Event
	Text string `json:"text"`
}

// SummaryMsg closes the feed with the final tally.
type SummaryMsg struct {
	RunID string `json:"run_id"`
	engine.Summary
}

// ErrorMsg reports a run that aborted.
type ErrorMsg struct {
	Message string `json:"message"`
}
