package core

import "github.com/nstepa/gridroom-server/internal/game"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventMessage carries a chat or system line.
	EventMessage EventKind = iota
	// EventGameStarted announces a fresh game with symbol assignments.
	EventGameStarted
	// EventGameUpdate carries the board after an accepted move.
	EventGameUpdate
	// EventGameOver announces the winning symbol.
	EventGameOver
)

// Event is sent to clients to describe what happened in their room.
// Board, Symbols and CurrentPlayer are snapshots taken when the event
// was produced; the hub never hands out live game state.
type Event struct {
	Kind          EventKind
	Room          string
	Text          string
	Board         game.Board
	Symbols       map[string]game.Symbol
	CurrentPlayer string
	Winner        game.Symbol
}

// Delivery is an outbound broadcast instruction produced by a command
// handler. Exactly one of Client or Room is set: a unicast to a single
// connection, or a cast to every connection subscribed to a room.
type Delivery struct {
	Client *Client
	Room   *Room
	Event  *Event
}

func roomCast(r *Room, ev *Event) Delivery {
	return Delivery{Room: r, Event: ev}
}
