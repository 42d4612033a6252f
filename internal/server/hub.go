package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"WireCrew/internal/game"
)

// Store persists room game state between actions. A nil store disables
// persistence; rooms then live only in memory.
type Store interface {
	Save(roomID string, state []byte) error
	Load(roomID string) ([]byte, bool)
	Delete(roomID string)
}

// MemoryStore keeps snapshots in a map. Useful for tests and single-process
// deployments.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Save(roomID string, state []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(state))
	copy(buf, state)
	m.data[roomID] = buf
	return nil
}

func (m *MemoryStore) Load(roomID string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.data[roomID]
	return state, ok
}

func (m *MemoryStore) Delete(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, roomID)
}

// Hub tracks all active rooms.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*Room
	cfg   Config
	store Store
}

func NewHub(cfg Config, store Store) *Hub {
	return &Hub{rooms: make(map[string]*Room), cfg: cfg, store: store}
}

// GetOrCreateRoom returns the room with the given id, creating and starting
// its loop if it does not exist yet. Restores persisted state when available.
func (h *Hub) GetOrCreateRoom(id string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[id]; ok {
		return r
	}
	r := newRoom(id, h)
	if h.store != nil {
		if snap, ok := h.store.Load(id); ok {
			if err := r.restore(snap); err != nil {
				log.Printf("room %s: restore failed: %v", id, err)
			}
		}
	}
	h.rooms[id] = r
	go r.run()
	return r
}

func (h *Hub) removeRoom(id string) {
	h.mu.Lock()
	delete(h.rooms, id)
	h.mu.Unlock()
}

type roomCommand struct {
	kind     string
	client   *client
	playerID string
	msg      inboundMessage
}

// Room owns one game. All state mutation happens on the run loop goroutine,
// fed by the commands channel, so game code never needs locking.
type Room struct {
	ID       string
	hub      *Hub
	commands chan roomCommand
	clients  map[*client]string
	seats    []game.Seat
	state    *game.GameState
	lastSeen time.Time
}

func newRoom(id string, hub *Hub) *Room {
	return &Room{
		ID:       id,
		hub:      hub,
		commands: make(chan roomCommand, 16),
		clients:  make(map[*client]string),
	}
}

type roomSnapshot struct {
	Seats []game.Seat     `json:"seats"`
	State *game.GameState `json:"state,omitempty"`
}

func (r *Room) snapshot() ([]byte, error) {
	return json.Marshal(roomSnapshot{Seats: r.seats, State: r.state})
}

func (r *Room) restore(data []byte) error {
	var snap roomSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	r.seats = snap.Seats
	r.state = snap.State
	return nil
}

func (r *Room) persist() {
	if r.hub.store == nil {
		return
	}
	snap, err := r.snapshot()
	if err != nil {
		log.Printf("room %s: snapshot failed: %v", r.ID, err)
		return
	}
	if err := r.hub.store.Save(r.ID, snap); err != nil {
		log.Printf("room %s: save failed: %v", r.ID, err)
	}
}

func (r *Room) run() {
	idle := time.Duration(r.hub.cfg.RoomIdleMinutes) * time.Minute
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	r.lastSeen = time.Now()
	for {
		select {
		case cmd := <-r.commands:
			r.lastSeen = time.Now()
			switch cmd.kind {
			case "join":
				r.handleJoin(cmd.client, cmd.playerID)
			case "leave":
				r.handleLeave(cmd.client)
			case "message":
				r.handleMessage(cmd.client, cmd.msg)
			}
		case now := <-ticker.C:
			r.checkTimer(now)
			if len(r.clients) == 0 && now.Sub(r.lastSeen) > idle {
				r.hub.removeRoom(r.ID)
				return
			}
		}
	}
}

func (r *Room) join(c *client, playerID string) {
	r.commands <- roomCommand{kind: "join", client: c, playerID: playerID}
}

func (r *Room) leave(c *client) {
	r.commands <- roomCommand{kind: "leave", client: c}
}

func (r *Room) dispatch(c *client, msg inboundMessage) {
	r.commands <- roomCommand{kind: "message", client: c, msg: msg}
}

func (r *Room) handleJoin(c *client, playerID string) {
	reconnecting := playerID != "" && r.seatByID(playerID) != nil
	if !reconnecting {
		if r.state != nil {
			c.send(mustEncode("error", errorPayload{Message: "game already started"}))
			return
		}
		if len(r.seats) >= r.hub.cfg.MaxRoomPlayers {
			c.send(mustEncode("error", errorPayload{Message: "room is full"}))
			return
		}
		playerID = uuid.NewString()
		r.seats = append(r.seats, game.Seat{ID: playerID, Name: c.name})
	}
	r.clients[c] = playerID
	c.playerID = playerID
	c.send(mustEncode("joined", joinedPayload{RoomID: r.ID, PlayerID: playerID, Name: c.name}))
	if r.state != nil && reconnecting {
		game.HandleReconnect(r.state, playerID)
	}
	r.persist()
	r.broadcastState()
}

func (r *Room) handleLeave(c *client) {
	playerID, ok := r.clients[c]
	if !ok {
		return
	}
	delete(r.clients, c)
	if r.state != nil {
		game.HandleDisconnect(r.state, playerID, time.Now())
		r.persist()
		r.broadcastState()
	}
}

func (r *Room) handleMessage(c *client, msg inboundMessage) {
	playerID, ok := r.clients[c]
	if !ok {
		return
	}
	if msg.Type != "start_game" && r.state == nil {
		c.send(mustEncode("error", errorPayload{Message: "the game has not started yet"}))
		return
	}
	now := time.Now()
	var (
		action *game.GameAction
		err    error
	)
	switch msg.Type {
	case "start_game":
		err = r.startGame(msg.Payload)
	case "place_info_token":
		var req game.PlaceInfoTokenRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplyPlaceInfoToken(r.state, playerID, req, now)
		}
	case "dual_cut":
		var req game.DualCutRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplyDualCut(r.state, playerID, req, now)
		}
	case "double_detector":
		var req game.DoubleDetectorRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplyDoubleDetector(r.state, playerID, req, now)
		}
	case "solo_cut":
		var req game.SoloCutRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplySoloCut(r.state, playerID, req, now)
		}
	case "reveal_reds":
		action, err = game.ApplyRevealReds(r.state, playerID, now)
	case "use_equipment":
		var req game.UseEquipmentRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplyUseEquipment(r.state, playerID, req, now)
		}
	case "use_character":
		var req game.UseCharacterRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplyUseCharacter(r.state, playerID, req, now)
		}
	case "forced_response":
		var resp game.ForcedResponse
		if err = json.Unmarshal(msg.Payload, &resp); err == nil {
			action, err = game.ApplyForcedResponse(r.state, playerID, resp, now)
		}
	case "surrender_vote":
		var req game.SurrenderVoteRequest
		if err = json.Unmarshal(msg.Payload, &req); err == nil {
			action, err = game.ApplySurrenderVote(r.state, playerID, req, now)
		}
	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}
	if err != nil {
		c.send(mustEncode("error", errorPayload{Message: err.Error()}))
		return
	}
	if action != nil {
		r.broadcast(mustEncode("action", action))
	}
	r.persist()
	r.broadcastState()
}

func (r *Room) startGame(payload json.RawMessage) error {
	if r.state != nil && !r.state.Finished() {
		return fmt.Errorf("game already in progress")
	}
	var req startGameRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("decode start_game: %w", err)
	}
	seed := req.Seed
	if seed == 0 {
		var err error
		seed, err = game.NewSeed()
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	state, err := game.StartGame(req.MissionID, r.seats, seed, time.Now())
	if err != nil {
		return err
	}
	r.state = state
	log.Printf("room %s: mission %d started with %d players", r.ID, req.MissionID, len(r.seats))
	return nil
}

// checkTimer fails timed missions whose countdown expired between actions.
func (r *Room) checkTimer(now time.Time) {
	if r.state == nil || r.state.Finished() {
		return
	}
	if game.CheckTimerExpiry(r.state, now) {
		r.persist()
		r.broadcastState()
	}
}

func (r *Room) seatByID(id string) *game.Seat {
	for i := range r.seats {
		if r.seats[i].ID == id {
			return &r.seats[i]
		}
	}
	return nil
}

func (r *Room) broadcast(data []byte) {
	for c := range r.clients {
		c.send(data)
	}
}

// broadcastState sends every client its own filtered view. In the lobby the
// seat list goes out instead.
func (r *Room) broadcastState() {
	if r.state == nil {
		data := mustEncode("lobby", lobbyPayload{RoomID: r.ID, Seats: r.seats})
		r.broadcast(data)
		return
	}
	for c, playerID := range r.clients {
		c.send(mustEncode("state", game.FilterState(r.state, playerID)))
	}
}
