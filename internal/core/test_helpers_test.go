package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHub() *Hub {
	logger := zerolog.Nop()
	return NewHub(DefaultChatCooldown, &logger)
}

// joinAs runs a join command synchronously and returns the client.
func joinAs(t *testing.T, h *Hub, id, username, room string) *Client {
	t.Helper()

	c := NewClient(id)
	h.process(c, Command{Kind: CommandJoin, Username: username, Room: room})
	if !c.registered() {
		t.Fatalf("join %q into %q was rejected", username, room)
	}
	return c
}

// drain empties a client's event channel without blocking.
func drain(ch chan *Event) []*Event {
	var events []*Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// mustEvent waits for the next event of the given kind, skipping others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}
