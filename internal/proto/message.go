package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client. For
// sendMessage the data is a bare JSON string, for makeMove a bare
// integer; startGame carries no data.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	InboundTypeJoin    = "joinRoom"
	InboundTypeMessage = "sendMessage"
	InboundTypeStart   = "startGame"
	InboundTypeMove    = "makeMove"

	OutboundTypeEvent = "event"

	EventMessage     = "message"
	EventGameStarted = "gameStarted"
	EventGameUpdate  = "gameUpdate"
	EventGameOver    = "gameOver"
)

// JoinData identifies the player and the room to join.
type JoinData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// Outbound is the envelope for messages sent to the client. Data is a
// plain string for message and gameOver events, and one of the structs
// below for the game state events.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// GameStartedData announces a fresh game to the room.
type GameStartedData struct {
	Board         []string          `json:"board"`
	Symbols       map[string]string `json:"symbols"`
	CurrentPlayer string            `json:"currentPlayer"`
}

// GameUpdateData carries the board after an accepted move.
type GameUpdateData struct {
	Board         []string `json:"board"`
	CurrentPlayer string   `json:"currentPlayer"`
}
