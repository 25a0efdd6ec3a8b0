package domain

import "strings"

// GameRecord is the generated game handed from the launcher to the viewer.
// It is never modified after it is received.
type GameRecord struct {
	GameID string `json:"gameId"`
	Sente  string `json:"sente"`
	Gote   string `json:"gote"`
	Moves  []Move `json:"moves"`
}

type Move struct {
	MoveNumber   int    `json:"moveNumber"`
	MoveUSI      string `json:"moveUsi"`
	MoveNotation string `json:"moveNotation,omitempty"`
	Commentary   string `json:"commentary"`
}

// MoveCount is N, the upper bound of the cursor.
func (g *GameRecord) MoveCount() int {
	if g == nil {
		return 0
	}
	return len(g.Moves)
}

// MoveAt returns the move that leads to position p (1-based).
func (g *GameRecord) MoveAt(p int) (*Move, bool) {
	if g == nil || p < 1 || p > len(g.Moves) {
		return nil, false
	}
	return &g.Moves[p-1], true
}

// Notation prefers the human notation and falls back to USI.
func (m Move) Notation() string {
	if s := strings.TrimSpace(m.MoveNotation); s != "" {
		return s
	}
	return m.MoveUSI
}

// Side identifies a player.
type Side string

const (
	Sente Side = "sente"
	Gote  Side = "gote"
)

const (
	TurnLabelSente = "先手"
	TurnLabelGote  = "後手"
)

// ParseTurn maps the service's turn label to a side. Anything that is not
// 先手 is treated as gote.
func ParseTurn(label string) Side {
	if strings.TrimSpace(label) == TurnLabelSente {
		return Sente
	}
	return Gote
}

type PieceCount struct {
	Label string
	Count int
}

type CapturedPieces struct {
	Sente []PieceCount
	Gote  []PieceCount
}

// For returns the pieces held by side.
func (c CapturedPieces) For(side Side) []PieceCount {
	if side == Sente {
		return c.Sente
	}
	return c.Gote
}

// BoardState is the service rendering of one position.
type BoardState struct {
	GameID    string
	MoveIndex int
	Board     string
	TurnLabel string
	Turn      Side
	Captured  CapturedPieces
}
