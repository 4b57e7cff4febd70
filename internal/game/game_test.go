package game

import "testing"

func TestWinnerDetectsEveryLine(t *testing.T) {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}

	for _, line := range lines {
		var b Board
		for _, idx := range line {
			b[idx] = SymbolX
		}

		winner, ok := Winner(b)
		if !ok || winner != SymbolX {
			t.Errorf("line %v: expected X winner, got %q ok=%v", line, winner, ok)
		}
	}
}

func TestWinnerNone(t *testing.T) {
	cases := map[string]Board{
		"empty": {},
		"mixed line": {
			SymbolX, SymbolO, SymbolX,
			SymbolNone, SymbolNone, SymbolNone,
			SymbolNone, SymbolNone, SymbolNone,
		},
		"full draw": {
			SymbolX, SymbolO, SymbolX,
			SymbolX, SymbolO, SymbolO,
			SymbolO, SymbolX, SymbolX,
		},
	}

	for name, b := range cases {
		if winner, ok := Winner(b); ok {
			t.Errorf("%s: expected no winner, got %q", name, winner)
		}
	}
}

func TestStart(t *testing.T) {
	var s State
	s.Start("alice", "bob")

	if s.Board != (Board{}) {
		t.Errorf("expected empty board, got %v", s.Board)
	}
	if s.Symbols["alice"] != SymbolX || s.Symbols["bob"] != SymbolO {
		t.Errorf("unexpected symbol assignment: %v", s.Symbols)
	}
	if s.Current != "alice" {
		t.Errorf("expected alice to move first, got %q", s.Current)
	}
	if !s.Active {
		t.Error("expected game to be active")
	}
}

func TestApplyRejectionsLeaveBoardUntouched(t *testing.T) {
	fresh := func() State {
		var s State
		s.Start("alice", "bob")
		return s
	}

	tests := []struct {
		name  string
		setup func() State
		user  string
		index int
	}{
		{"inactive game", func() State {
			s := fresh()
			s.Active = false
			return s
		}, "alice", 0},
		{"index below range", fresh, "alice", -1},
		{"index above range", fresh, "alice", 9},
		{"not your turn", fresh, "bob", 0},
		{"occupied cell", func() State {
			s := fresh()
			s.Apply("alice", 4)
			return s
		}, "bob", 4},
		{"unknown player", fresh, "mallory", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setup()
			before := s.Board

			res := s.Apply(tt.user, tt.index)
			if res.Status != MoveRejected {
				t.Fatalf("expected rejection, got status %v", res.Status)
			}
			if s.Board != before {
				t.Errorf("board mutated by rejected move: %v -> %v", before, s.Board)
			}
		})
	}
}

func TestApplyAlternatesTurns(t *testing.T) {
	var s State
	s.Start("alice", "bob")

	moves := []struct {
		user  string
		index int
		next  string
	}{
		{"alice", 4, "bob"},
		{"bob", 0, "alice"},
		{"alice", 1, "bob"},
		{"bob", 2, "alice"},
	}

	for _, m := range moves {
		res := s.Apply(m.user, m.index)
		if res.Status != MoveContinue {
			t.Fatalf("move %s@%d: expected continue, got %v", m.user, m.index, res.Status)
		}
		if s.Current != m.next {
			t.Fatalf("move %s@%d: expected turn %q, got %q", m.user, m.index, m.next, s.Current)
		}
	}
}

func TestApplyWinEndsGame(t *testing.T) {
	var s State
	s.Start("alice", "bob")

	// alice builds the {4,1,7} column while bob plays elsewhere.
	s.Apply("alice", 4)
	s.Apply("bob", 0)
	s.Apply("alice", 1)
	s.Apply("bob", 2)

	res := s.Apply("alice", 7)
	if res.Status != MoveWin {
		t.Fatalf("expected win, got %v", res.Status)
	}
	if res.Winner != SymbolX {
		t.Errorf("expected X to win, got %q", res.Winner)
	}
	if s.Active {
		t.Error("expected game to be inactive after win")
	}
	if s.Board[4] != SymbolX || s.Board[1] != SymbolX || s.Board[7] != SymbolX {
		t.Errorf("winning line not on board: %v", s.Board)
	}
}
