package server

import (
	"encoding/json"

	"WireCrew/internal/game"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type joinedPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type lobbyPayload struct {
	RoomID  string      `json:"roomId"`
	Seats   []game.Seat `json:"seats"`
	Started bool        `json:"started"`
}

type startGameRequest struct {
	MissionID int   `json:"missionId"`
	Seed      int64 `json:"seed,omitempty"`
}

func encodeMessage(typ string, payload interface{}) ([]byte, error) {
	return json.Marshal(outboundMessage{Type: typ, Payload: payload})
}

func mustEncode(typ string, payload interface{}) []byte {
	data, err := encodeMessage(typ, payload)
	if err != nil {
		data, _ = json.Marshal(outboundMessage{Type: "error", Payload: errorPayload{Message: "encode failure"}})
	}
	return data
}
