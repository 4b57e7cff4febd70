package core

import (
	"context"
	"maps"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/nstepa/gridroom-server/internal/game"
)

// DefaultChatCooldown is the minimum interval between two accepted chat
// messages from the same connection.
const DefaultChatCooldown = 800 * time.Millisecond

// nameMin and nameMax bound usernames and room names, counted in runes
// after trimming.
const (
	nameMin = 3
	nameMax = 20
)

type submission struct {
	client *Client
	cmd    Command
}

// Hub coordinates all rooms and connections. Commands from every
// connection funnel through a single channel and are processed one at a
// time by Run, so handlers mutate hub state without locking and events
// apply in global arrival order.
type Hub struct {
	submissions chan submission
	clients     map[string]*Client
	rooms       map[string]*Room
	lastMessage map[string]time.Time
	cooldown    time.Duration
	now         func() time.Time
	log         *zerolog.Logger
}

// NewHub constructs a hub with empty state. A non-positive cooldown
// falls back to DefaultChatCooldown.
func NewHub(cooldown time.Duration, logger *zerolog.Logger) *Hub {
	if cooldown <= 0 {
		cooldown = DefaultChatCooldown
	}
	return &Hub{
		submissions: make(chan submission, 64),
		clients:     make(map[string]*Client),
		rooms:       make(map[string]*Room),
		lastMessage: make(map[string]time.Time),
		cooldown:    cooldown,
		now:         time.Now,
		log:         logger,
	}
}

// Submit queues a command for processing. Safe to call from any
// goroutine; ordering across connections is the order of Submit calls.
func (h *Hub) Submit(c *Client, cmd Command) {
	h.submissions <- submission{client: c, cmd: cmd}
}

// Run processes submissions until the context is cancelled. Each
// command runs to completion before the next one starts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.submissions:
			h.process(sub.client, sub.cmd)
		}
	}
}

func (h *Hub) process(c *Client, cmd Command) {
	deliveries, err := h.handle(c, cmd)
	if err != nil {
		// Rejected commands are dropped without feedback to the
		// sender; the reason is only visible in the server log.
		h.log.Debug().
			Err(err).
			Str("client_id", c.ID).
			Int("command", int(cmd.Kind)).
			Msg("command dropped")
		return
	}

	for _, d := range deliveries {
		switch {
		case d.Room != nil:
			d.Room.Broadcast(d.Event)
		case d.Client != nil:
			select {
			case d.Client.Events <- d.Event:
			default:
			}
		}
	}
}

func (h *Hub) handle(c *Client, cmd Command) ([]Delivery, error) {
	switch cmd.Kind {
	case CommandJoin:
		return h.handleJoin(c, cmd)
	case CommandChat:
		return h.handleChat(c, cmd)
	case CommandStart:
		return h.handleStart(c)
	case CommandMove:
		return h.handleMove(c, cmd)
	case CommandDisconnect:
		return h.handleDisconnect(c)
	default:
		return nil, ErrNotRegistered
	}
}

func (h *Hub) handleJoin(c *Client, cmd Command) ([]Delivery, error) {
	if c.registered() {
		return nil, ErrAlreadyJoined
	}

	username, ok := validName(cmd.Username)
	if !ok {
		return nil, ErrBadName
	}
	roomName, ok := validName(cmd.Room)
	if !ok {
		return nil, ErrBadName
	}

	room := h.getOrCreateRoom(roomName)
	if room.HasMember(username) {
		return nil, ErrNameTaken
	}

	c.Username = username
	c.Room = roomName
	h.clients[c.ID] = c
	room.Members = append(room.Members, username)
	room.AddClient(c)

	h.log.Info().
		Str("username", username).
		Str("room", roomName).
		Int("members", len(room.Members)).
		Msg("joined room")

	return []Delivery{roomCast(room, &Event{
		Kind: EventMessage,
		Room: roomName,
		Text: username + " joined the room",
	})}, nil
}

func (h *Hub) handleChat(c *Client, cmd Command) ([]Delivery, error) {
	room, err := h.roomOf(c)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	now := h.now()
	if last, ok := h.lastMessage[c.ID]; ok && now.Sub(last) < h.cooldown {
		return nil, ErrCooldown
	}
	h.lastMessage[c.ID] = now

	return []Delivery{roomCast(room, &Event{
		Kind: EventMessage,
		Room: room.Name,
		Text: c.Username + ": " + text,
	})}, nil
}

func (h *Hub) handleStart(c *Client) ([]Delivery, error) {
	room, err := h.roomOf(c)
	if err != nil {
		return nil, err
	}

	if len(room.Members) != 2 {
		return nil, ErrNeedTwo
	}
	if room.Game.Active {
		return nil, ErrGameActive
	}

	room.Game.Start(room.Members[0], room.Members[1])

	h.log.Info().
		Str("room", room.Name).
		Str("first", room.Members[0]).
		Str("second", room.Members[1]).
		Msg("game started")

	return []Delivery{roomCast(room, &Event{
		Kind:          EventGameStarted,
		Room:          room.Name,
		Board:         room.Game.Board,
		Symbols:       maps.Clone(room.Game.Symbols),
		CurrentPlayer: room.Game.Current,
	})}, nil
}

func (h *Hub) handleMove(c *Client, cmd Command) ([]Delivery, error) {
	room, err := h.roomOf(c)
	if err != nil {
		return nil, err
	}

	res := room.Game.Apply(c.Username, cmd.Index)
	switch res.Status {
	case game.MoveWin:
		return []Delivery{roomCast(room, &Event{
			Kind:   EventGameOver,
			Room:   room.Name,
			Winner: res.Winner,
		})}, nil
	case game.MoveContinue:
		return []Delivery{roomCast(room, &Event{
			Kind:          EventGameUpdate,
			Room:          room.Name,
			Board:         room.Game.Board,
			CurrentPlayer: room.Game.Current,
		})}, nil
	default:
		return nil, ErrMoveRejected
	}
}

func (h *Hub) handleDisconnect(c *Client) ([]Delivery, error) {
	room, err := h.roomOf(c)
	if err != nil {
		return nil, err
	}

	room.RemoveMember(c.Username)
	room.RemoveClient(c)
	delete(h.lastMessage, c.ID)

	var deliveries []Delivery
	if room.Empty() {
		// Board and game state go with the room.
		delete(h.rooms, room.Name)
		h.log.Info().Str("room", room.Name).Msg("room removed")
	} else {
		deliveries = append(deliveries, roomCast(room, &Event{
			Kind: EventMessage,
			Room: room.Name,
			Text: c.Username + " left the room",
		}))
	}

	delete(h.clients, c.ID)

	h.log.Info().
		Str("username", c.Username).
		Str("room", room.Name).
		Msg("left room")

	return deliveries, nil
}

// roomOf resolves the room of a registered connection. Both the unknown
// connection and the missing room count as not registered.
func (h *Hub) roomOf(c *Client) (*Room, error) {
	if _, ok := h.clients[c.ID]; !ok || !c.registered() {
		return nil, ErrNotRegistered
	}
	room, ok := h.rooms[c.Room]
	if !ok {
		return nil, ErrNotRegistered
	}
	return room, nil
}

func (h *Hub) getOrCreateRoom(name string) *Room {
	if room, ok := h.rooms[name]; ok {
		return room
	}
	room := NewRoom(name)
	h.rooms[name] = room
	return room
}

// validName trims its argument and checks the 3-20 rune bound shared by
// usernames and room names.
func validName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n >= nameMin && n <= nameMax
}
