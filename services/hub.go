package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans scoreboard updates out to websocket spectators. Each client
// watches one game; mutating handlers push events after a successful
// write so open scoreboards stay current.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	history    *HistoryService
}

type Client struct {
	hub    *Hub
	id     string
	socket *websocket.Conn
	send   chan []byte
	gameID uint
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewHub(history *HistoryService) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		history:    history,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			slog.Info("scoreboard client connected", "client", client.id, "game_id", client.gameID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				slog.Info("scoreboard client disconnected", "client", client.id, "game_id", client.gameID)
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastToGame sends an event to every client watching the game.
// Clients with a full send buffer are dropped.
func (h *Hub) BroadcastToGame(gameID uint, messageType string, payload interface{}) {
	message := Message{
		Type:    messageType,
		Payload: payload,
	}

	data, err := json.Marshal(message)
	if err != nil {
		slog.Error("failed to marshal broadcast message", "type", messageType, "err", err)
		return
	}

	h.mutex.Lock()
	for client := range h.clients {
		if client.gameID != gameID {
			continue
		}
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
	h.mutex.Unlock()
}

// BroadcastScoreboard pushes the current scoreboard for the game.
func (h *Hub) BroadcastScoreboard(gameID uint) {
	players, err := h.history.Scoreboard(gameID)
	if err != nil {
		slog.Error("failed to load scoreboard for broadcast", "game_id", gameID, "err", err)
		return
	}
	h.BroadcastToGame(gameID, "scoreboard_update", map[string]interface{}{
		"game_id": gameID,
		"players": players,
	})
}

func (h *Hub) RegisterClient(conn *websocket.Conn, gameID uint) *Client {
	client := &Client{
		hub:    h,
		id:     generateClientID(),
		socket: conn,
		send:   make(chan []byte, 256),
		gameID: gameID,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read error", "client", c.id, "err", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Warn("discarding malformed websocket message", "client", c.id, "err", err)
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	defer func() {
		c.socket.Close()
	}()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}

		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		response := Message{
			Type:    "pong",
			Payload: "pong",
		}
		data, _ := json.Marshal(response)
		c.send <- data

	case "request_scoreboard":
		players, err := c.hub.history.Scoreboard(c.gameID)
		if err != nil {
			slog.Error("failed to load scoreboard", "game_id", c.gameID, "err", err)
			return
		}
		response := Message{
			Type: "scoreboard_update",
			Payload: map[string]interface{}{
				"game_id": c.gameID,
				"players": players,
			},
		}
		data, err := json.Marshal(response)
		if err != nil {
			return
		}
		select {
		case c.send <- data:
		default:
		}

	default:
		slog.Warn("unknown websocket message type", "type", msg.Type, "client", c.id)
	}
}

func generateClientID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return "client_" + hex.EncodeToString(b)
}
