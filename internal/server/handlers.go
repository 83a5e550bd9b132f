package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	qr "monopolysim/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	Hub *Hub
}

func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{Hub: hub}
}

// HandleQR renders a QR code PNG pointing at the viewer page.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qr.Generate(fmt.Sprintf("http://%s/", r.Host))
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleSummary returns the final tally of the run.
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.Hub.Summary()
	if !ok {
		http.Error(w, "run not finished", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("summary encode error: %v", err)
	}
}

// HandleWS attaches a spectator to the feed.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(h.Hub, conn, h.Hub.BacklogLen())
	select {
	case h.Hub.register <- client:
	case <-h.Hub.quit:
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
