package server

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"monopolysim/internal/engine"
	"monopolysim/internal/protocol"
	"monopolysim/internal/report"
)

// Hub records the feed of one simulation run and fans it out to every
// connected spectator. Spectators that connect late get the whole backlog
// before any new message.
type Hub struct {
	mu         sync.Mutex
	runID      string
	seq        int
	backlog    [][]byte
	summary    *protocol.SummaryMsg
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	quit       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		runID:      uuid.NewString(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
	}
}

// RunID identifies the run this hub carries.
func (h *Hub) RunID() string {
	return h.runID
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			for _, msg := range h.backlog {
				client.enqueue(msg)
			}
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends Run and disconnects every spectator.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

// Start announces a run.
func (h *Hub) Start(players []string, turns int, seed uint64, board []engine.Space) {
	h.publish(protocol.MsgRunStarted, protocol.RunStarted{
		RunID:   h.runID,
		Players: players,
		Turns:   turns,
		Seed:    seed,
		Board:   board,
	})
}

// Emit implements engine.Sink.
func (h *Hub) Emit(ev engine.Event) {
	h.publish(protocol.MsgEvent, protocol.EventMsg{Event: ev, Text: report.Line(ev)})
}

// Finish publishes the final tally.
func (h *Hub) Finish(s engine.Summary) {
	msg := protocol.SummaryMsg{RunID: h.runID, Summary: s}
	h.mu.Lock()
	h.summary = &msg
	h.mu.Unlock()
	h.publish(protocol.MsgSummary, msg)
}

// Fail publishes the error that aborted the run.
func (h *Hub) Fail(err error) {
	h.publish(protocol.MsgError, protocol.ErrorMsg{Message: err.Error()})
}

// Summary returns the final tally once Finish has been called.
func (h *Hub) Summary() (protocol.SummaryMsg, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.summary == nil {
		return protocol.SummaryMsg{}, false
	}
	return *h.summary, true
}

// BacklogLen returns the number of messages published so far.
func (h *Hub) BacklogLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.backlog)
}

func (h *Hub) publish(typ string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	env, err := protocol.NewEnvelope(typ, h.seq, payload)
	if err != nil {
		log.Printf("feed marshal error: %v", err)
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("feed marshal error: %v", err)
		return
	}
	h.backlog = append(h.backlog, data)
	for client := range h.clients {
		client.enqueue(data)
	}
}
