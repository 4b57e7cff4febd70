package core

// Client is a connected player as seen by the core layer. Username and
// Room stay empty until the hub accepts a join for this connection.
type Client struct {
	ID       string
	Username string
	Room     string
	Events   chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 16),
	}
}

func (c *Client) registered() bool {
	return c.Username != ""
}
