package core

import "github.com/nstepa/gridroom-server/internal/game"

// Room groups the players of one named session: the ordered member list,
// the subscribed connections, and the game state. Member order determines
// symbol assignment and who moves first.
type Room struct {
	Name    string
	Members []string
	Game    game.State
	clients map[*Client]struct{}
}

// NewRoom constructs a room with no members and no active game.
func NewRoom(name string) *Room {
	return &Room{
		Name:    name,
		clients: make(map[*Client]struct{}),
	}
}

// AddClient subscribes a connection to the room's broadcasts.
func (r *Room) AddClient(c *Client) {
	r.clients[c] = struct{}{}
}

// RemoveClient unsubscribes a connection from the room's broadcasts.
func (r *Room) RemoveClient(c *Client) {
	delete(r.clients, c)
}

// HasMember reports whether username is already in the member list.
// Matching is case-sensitive.
func (r *Room) HasMember(username string) bool {
	for _, m := range r.Members {
		if m == username {
			return true
		}
	}
	return false
}

// RemoveMember deletes username from the member list, preserving the
// order of the remaining members.
func (r *Room) RemoveMember(username string) {
	for i, m := range r.Members {
		if m == username {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			return
		}
	}
}

// Broadcast sends an event to all subscribed connections.
func (r *Room) Broadcast(event *Event) {
	for client := range r.clients {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// Empty returns true if the room has no members left.
func (r *Room) Empty() bool {
	return len(r.Members) == 0
}
