package kifudto

import (
	"encoding/json"
	"testing"
)

func TestPieceCountsKeepsPayloadOrder(t *testing.T) {
	var resp BoardStateResponse
	raw := `{"success":true,"boardState":"x","currentTurn":"後手","capturedPieces":{"sente":{"飛":1,"歩":3,"角":1},"gote":{}}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.CapturedPieces == nil {
		t.Fatalf("captured pieces missing")
	}
	got := resp.CapturedPieces.Sente
	want := []PieceCount{{"飛", 1}, {"歩", 3}, {"角", 1}}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %v want %v", i, got[i], want[i])
		}
	}
	if len(resp.CapturedPieces.Gote) != 0 {
		t.Fatalf("expected empty gote, got %v", resp.CapturedPieces.Gote)
	}
}

func TestPieceCountsNullAndFloat(t *testing.T) {
	var cp CapturedPieces
	if err := json.Unmarshal([]byte(`{"sente":null,"gote":{"歩":2.0}}`), &cp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cp.Sente != nil {
		t.Fatalf("expected nil sente, got %v", cp.Sente)
	}
	if len(cp.Gote) != 1 || cp.Gote[0].Count != 2 {
		t.Fatalf("unexpected gote %v", cp.Gote)
	}
}

func TestPieceCountsRejectsNonObject(t *testing.T) {
	var pc PieceCounts
	if err := json.Unmarshal([]byte(`[1,2]`), &pc); err == nil {
		t.Fatalf("expected error for array payload")
	}
	if err := json.Unmarshal([]byte(`{"歩":1.5}`), &pc); err == nil {
		t.Fatalf("expected error for fractional count")
	}
}

func TestPieceCountsMarshalOrder(t *testing.T) {
	pc := PieceCounts{{"銀", 1}, {"金", 2}}
	b, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"銀":1,"金":2}` {
		t.Fatalf("unexpected json %s", b)
	}
}
