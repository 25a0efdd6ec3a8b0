package domain

import "testing"

func TestMoveAtBounds(t *testing.T) {
	g := &GameRecord{GameID: "g1", Moves: []Move{{MoveNumber: 1, MoveUSI: "7g7f"}, {MoveNumber: 2, MoveUSI: "3c3d"}}}
	if _, ok := g.MoveAt(0); ok {
		t.Fatalf("position 0 has no move")
	}
	if m, ok := g.MoveAt(2); !ok || m.MoveUSI != "3c3d" {
		t.Fatalf("MoveAt(2) = %v, %v", m, ok)
	}
	if _, ok := g.MoveAt(3); ok {
		t.Fatalf("MoveAt past the end should fail")
	}
	var nilGame *GameRecord
	if nilGame.MoveCount() != 0 {
		t.Fatalf("nil record should have no moves")
	}
}

func TestNotationFallback(t *testing.T) {
	if got := (Move{MoveUSI: "7g7f"}).Notation(); got != "7g7f" {
		t.Fatalf("got %q", got)
	}
	if got := (Move{MoveUSI: "7g7f", MoveNotation: "▲7六歩"}).Notation(); got != "▲7六歩" {
		t.Fatalf("got %q", got)
	}
}

func TestParseTurn(t *testing.T) {
	if ParseTurn("先手") != Sente {
		t.Fatalf("先手 should be sente")
	}
	if ParseTurn("後手") != Gote || ParseTurn("") != Gote {
		t.Fatalf("non-sente labels should be gote")
	}
}
