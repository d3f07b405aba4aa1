package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Dosada05/club-manager/live"
	"github.com/Dosada05/club-manager/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене здесь должна быть проверка Origin.
		return true
	},
}

type WebSocketHandler struct {
	hub   *live.Hub
	store *store.Store
}

func NewWebSocketHandler(hub *live.Hub, st *store.Store) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, store: st}
}

// ServeWs подписывает клиента на уведомления команды:
// GET /ws/teams/{teamID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if h.store.TeamByID(teamID) == nil {
		http.NotFound(w, r)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту HTTP-ошибкой.
		log.Printf("live: failed to upgrade connection for team %s: %v", teamID, err)
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: live.RoomForTeam(teamID),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
