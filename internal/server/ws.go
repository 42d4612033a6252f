package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 45 * time.Second
	sendBufferSize = 32
)

// client is one websocket connection attached to a room. Outbound frames go
// through the out channel so only writePump touches the connection for writes.
type client struct {
	conn     *websocket.Conn
	room     *Room
	name     string
	playerID string
	out      chan []byte
}

func (c *client) send(data []byte) {
	select {
	case c.out <- data:
	default:
		// Slow consumer; drop the frame rather than block the room loop.
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) readPump() {
	defer func() {
		c.room.leave(c)
		c.conn.Close()
	}()
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("room %s: bad frame from %s: %v", c.room.ID, c.playerID, err)
			continue
		}
		c.room.dispatch(c, msg)
	}
}

// serveWS upgrades the connection and attaches it to a room. Query parameters:
// room (required), name (display name), player (previous id, to reconnect).
func serveWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	roomID := query.Get("room")
	if roomID == "" {
		http.Error(w, "missing room", http.StatusBadRequest)
		return
	}
	name := query.Get("name")
	if name == "" {
		name = "crewmate"
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return h.cfg.AllowAnyOrigin },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	room := h.GetOrCreateRoom(roomID)
	c := &client{
		conn: conn,
		room: room,
		name: name,
		out:  make(chan []byte, sendBufferSize),
	}
	go c.writePump()
	room.join(c, query.Get("player"))
	c.readPump()
}
