package http

import (
	"encoding/json"

	"github.com/nstepa/gridroom-server/internal/core"
	"github.com/nstepa/gridroom-server/internal/game"
	"github.com/nstepa/gridroom-server/internal/proto"
)

// inboundToCommand maps a wire envelope onto a core command. A false
// return means the frame is malformed or of unknown type and must be
// dropped without feedback, matching the server's silent reject policy.
func inboundToCommand(inbound proto.Inbound) (core.Command, bool) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return core.Command{}, false
		}
		return core.Command{
			Kind:     core.CommandJoin,
			Username: join.Username,
			Room:     join.Room,
		}, true
	case proto.InboundTypeMessage:
		var text string
		if err := json.Unmarshal(inbound.Data, &text); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandChat, Text: text}, true
	case proto.InboundTypeStart:
		return core.Command{Kind: core.CommandStart}, true
	case proto.InboundTypeMove:
		var index int
		if err := json.Unmarshal(inbound.Data, &index); err != nil {
			return core.Command{}, false
		}
		return core.Command{Kind: core.CommandMove, Index: index}, true
	default:
		return core.Command{}, false
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventGameStarted:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameStarted,
			Data: proto.GameStartedData{
				Board:         boardToWire(event.Board),
				Symbols:       symbolsToWire(event.Symbols),
				CurrentPlayer: event.CurrentPlayer,
			},
		}
	case core.EventGameUpdate:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameUpdate,
			Data: proto.GameUpdateData{
				Board:         boardToWire(event.Board),
				CurrentPlayer: event.CurrentPlayer,
			},
		}
	case core.EventGameOver:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameOver,
			Data:  string(event.Winner),
		}
	default:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventMessage,
			Data:  event.Text,
		}
	}
}

func boardToWire(b game.Board) []string {
	cells := make([]string, len(b))
	for i, s := range b {
		cells[i] = string(s)
	}
	return cells
}

func symbolsToWire(symbols map[string]game.Symbol) map[string]string {
	out := make(map[string]string, len(symbols))
	for user, s := range symbols {
		out[user] = string(s)
	}
	return out
}
