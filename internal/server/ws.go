package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"reactiontest/internal/wshub"
)

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[WS] accept: %v\n", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The current run goes out before any broadcast so a reconnecting
	// surface can redraw immediately.
	initial, err := json.Marshal(sess.Message(sess.Game.Snapshot()))
	if err != nil {
		log.Printf("[WS] encoding initial state: %v\n", err)
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, initial); err != nil {
		return
	}

	client := wshub.NewClient(uuid.NewString(), conn)
	if !sess.Hub.Register(client) {
		conn.Close(websocket.StatusGoingAway, "session closed")
		return
	}
	defer sess.Hub.Unregister(client.ID)
	go client.WritePump(ctx)

	err = client.ReadPump(ctx, func(msg wshub.ClientMessage) {
		s.apply(sess, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) &&
		websocket.CloseStatus(err) != websocket.StatusNormalClosure &&
		websocket.CloseStatus(err) != websocket.StatusGoingAway {
		log.Printf("[WS] %s: %v\n", client.ID, err)
	}
}
