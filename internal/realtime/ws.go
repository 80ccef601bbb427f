package realtime

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSHandler streams a hub subscription over a websocket. Query params:
// table (required), event (INSERT/UPDATE/DELETE, default *), team_id.
type WSHandler struct {
	Hub *Hub
	Log zerolog.Logger

	upgrader websocket.Upgrader
}

func NewWSHandler(hub *Hub, log zerolog.Logger) *WSHandler {
	return &WSHandler{
		Hub: hub,
		Log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		http.Error(w, "table is required", http.StatusBadRequest)
		return
	}
	event := EventType(r.URL.Query().Get("event"))
	if event == "" {
		event = EventAll
	}
	var teamID uint
	if v := r.URL.Query().Get("team_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			http.Error(w, "invalid team_id", http.StatusBadRequest)
			return
		}
		teamID = uint(id)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id, ch := h.Hub.Subscribe(table, event, teamID)
	defer h.Hub.Unsubscribe(id)
	defer conn.Close()

	// Read pump: only used to notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				h.Log.Debug().Err(err).Str("table", table).Msg("dropping realtime client")
				return
			}
		case <-done:
			return
		}
	}
}
