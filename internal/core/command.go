package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin binds the connection to a username and room.
	CommandJoin CommandKind = iota
	// CommandChat sends a chat line to the connection's room.
	CommandChat
	// CommandStart begins a game in the connection's room.
	CommandStart
	// CommandMove places the sender's symbol on a board cell.
	CommandMove
	// CommandDisconnect removes the connection from its room.
	CommandDisconnect
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Username string // join only
	Room     string // join only
	Text     string // chat only
	Index    int    // move only
}
