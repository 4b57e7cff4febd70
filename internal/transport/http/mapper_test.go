package http

import (
	"encoding/json"
	"testing"

	"github.com/nstepa/gridroom-server/internal/core"
	"github.com/nstepa/gridroom-server/internal/game"
	"github.com/nstepa/gridroom-server/internal/proto"
)

func TestInboundToCommand(t *testing.T) {
	joinData, _ := json.Marshal(proto.JoinData{Username: "alice", Room: "lobby"})
	msgData, _ := json.Marshal("hello")
	moveData, _ := json.Marshal(4)

	tests := []struct {
		name    string
		inbound proto.Inbound
		want    core.Command
	}{
		{"join", proto.Inbound{Type: "joinRoom", Data: joinData},
			core.Command{Kind: core.CommandJoin, Username: "alice", Room: "lobby"}},
		{"message", proto.Inbound{Type: "sendMessage", Data: msgData},
			core.Command{Kind: core.CommandChat, Text: "hello"}},
		{"start", proto.Inbound{Type: "startGame"},
			core.Command{Kind: core.CommandStart}},
		{"move", proto.Inbound{Type: "makeMove", Data: moveData},
			core.Command{Kind: core.CommandMove, Index: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := inboundToCommand(tt.inbound)
			if !ok {
				t.Fatal("expected command, got drop")
			}
			if cmd != tt.want {
				t.Fatalf("got %+v, want %+v", cmd, tt.want)
			}
		})
	}
}

func TestInboundToCommandDropsMalformedFrames(t *testing.T) {
	tests := []struct {
		name    string
		inbound proto.Inbound
	}{
		{"unknown type", proto.Inbound{Type: "teleport"}},
		{"non-object join", proto.Inbound{Type: "joinRoom", Data: json.RawMessage(`"alice"`)}},
		{"non-string message", proto.Inbound{Type: "sendMessage", Data: json.RawMessage(`42`)}},
		{"non-integer move", proto.Inbound{Type: "makeMove", Data: json.RawMessage(`"four"`)}},
		{"fractional move", proto.Inbound{Type: "makeMove", Data: json.RawMessage(`4.5`)}},
		{"missing data", proto.Inbound{Type: "makeMove"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := inboundToCommand(tt.inbound); ok {
				t.Fatal("malformed frame was not dropped")
			}
		})
	}
}

func TestOutboundFromEvent(t *testing.T) {
	board := game.Board{4: game.SymbolX}

	update := outboundFromEvent(&core.Event{
		Kind:          core.EventGameUpdate,
		Board:         board,
		CurrentPlayer: "bob",
	})
	data, ok := update.Data.(proto.GameUpdateData)
	if !ok {
		t.Fatalf("unexpected data type: %T", update.Data)
	}
	if update.Event != proto.EventGameUpdate || data.Board[4] != "X" || data.CurrentPlayer != "bob" {
		t.Fatalf("unexpected update frame: %+v", update)
	}

	over := outboundFromEvent(&core.Event{Kind: core.EventGameOver, Winner: game.SymbolO})
	if over.Event != proto.EventGameOver || over.Data != "O" {
		t.Fatalf("unexpected gameOver frame: %+v", over)
	}

	msg := outboundFromEvent(&core.Event{Kind: core.EventMessage, Text: "alice: hi"})
	if msg.Event != proto.EventMessage || msg.Data != "alice: hi" {
		t.Fatalf("unexpected message frame: %+v", msg)
	}
}
