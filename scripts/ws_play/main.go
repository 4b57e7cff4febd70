package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/nstepa/gridroom-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_play: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "username")
	room := flag.String("room", "lobby", "room to join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(v any) {
		if writeErr := wsjson.Write(ctx, conn, v); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	joinPayload, err := json.Marshal(proto.JoinData{Username: *user, Room: *room})
	if err != nil {
		return fmt.Errorf("marshal join: %w", err)
	}
	send(proto.Inbound{Type: proto.InboundTypeJoin, Data: joinPayload})

	fmt.Printf("Connected to %s as %s in room %s\n", *addr, *user, *room)
	fmt.Println("Chat by typing a line. Commands: /start, /move <0-8>. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch outbound.Event {
		case proto.EventMessage:
			if text, ok := outbound.Data.(string); ok {
				fmt.Println(text)
			}
		case proto.EventGameStarted:
			var evt proto.GameStartedData
			if err := reencode(outbound.Data, &evt); err != nil {
				log.Printf("decode gameStarted: %v", err)
				continue
			}
			fmt.Printf("game started, symbols %v, %s to move\n", evt.Symbols, evt.CurrentPlayer)
			printBoard(evt.Board)
		case proto.EventGameUpdate:
			var evt proto.GameUpdateData
			if err := reencode(outbound.Data, &evt); err != nil {
				log.Printf("decode gameUpdate: %v", err)
				continue
			}
			fmt.Printf("%s to move\n", evt.CurrentPlayer)
			printBoard(evt.Board)
		case proto.EventGameOver:
			if winner, ok := outbound.Data.(string); ok {
				fmt.Printf("game over, %s wins\n", winner)
			}
		}
	}
}

func writeLoop(ctx context.Context, send func(any)) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/start":
			send(proto.Inbound{Type: proto.InboundTypeStart})
		case strings.HasPrefix(line, "/move "):
			index, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/move ")))
			if err != nil {
				fmt.Println("usage: /move <0-8>")
				continue
			}
			payload, _ := json.Marshal(index)
			send(proto.Inbound{Type: proto.InboundTypeMove, Data: payload})
		default:
			payload, _ := json.Marshal(line)
			send(proto.Inbound{Type: proto.InboundTypeMessage, Data: payload})
		}
	}
}

// reencode converts a decoded any value into a concrete payload struct.
func reencode(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func printBoard(cells []string) {
	if len(cells) != 9 {
		return
	}
	for row := 0; row < 3; row++ {
		line := make([]string, 3)
		for col := 0; col < 3; col++ {
			cell := cells[row*3+col]
			if cell == "" {
				cell = "."
			}
			line[col] = cell
		}
		fmt.Println(strings.Join(line, " "))
	}
}
