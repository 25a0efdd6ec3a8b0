package presenter

import (
	"strconv"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/msgcat"
	"github.com/park285/kifu-viewer/internal/util"
)

// fallbacks used when the catalog lacks a key or an override is broken
const (
	initialCommentary = "対局開始時の盤面です。これから宗太郎君AIと四五六君AIによる対局が始まります。"
	noCommentary      = "解説データがありません"
	initialEntry      = "初期局面"
	initialPreview    = "対局開始時の盤面です"
	capturedNone      = "なし"
	boardError        = "エラー: 盤面を表示できません"
)

// MoveEntry is one row of the move list. Index 0 is the initial position.
type MoveEntry struct {
	Index    int
	Number   string
	Notation string
	Preview  string
}

// Formatter turns kifu data into display strings.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

// Text renders a catalog message with fallback.
func (f *Formatter) Text(key string, data any, fallback string) string {
	if f == nil || f.cat == nil {
		return fallback
	}
	return f.cat.Text(key, data, fallback)
}

// Commentary is the text shown for position p: the fixed opening message at
// 0, the commentary of move p, or the no-data message.
func (f *Formatter) Commentary(rec *domain.GameRecord, p int) string {
	if p == 0 {
		return f.Text("viewer.initial_commentary", nil, initialCommentary)
	}
	if m, ok := rec.MoveAt(p); ok {
		return m.Commentary
	}
	return f.Text("viewer.no_commentary", nil, noCommentary)
}

// MoveList builds the initial-position row followed by one row per move.
func (f *Formatter) MoveList(rec *domain.GameRecord) []MoveEntry {
	entries := make([]MoveEntry, 0, rec.MoveCount()+1)
	entries = append(entries, MoveEntry{
		Index:    0,
		Number:   "0",
		Notation: f.Text("viewer.initial_entry", nil, initialEntry),
		Preview:  f.Text("viewer.initial_preview", nil, initialPreview),
	})
	if rec == nil {
		return entries
	}
	for i, m := range rec.Moves {
		entries = append(entries, MoveEntry{
			Index:    i + 1,
			Number:   strconv.Itoa(m.MoveNumber),
			Notation: m.Notation(),
			Preview:  util.Preview(m.Commentary, util.PreviewRuneLimit),
		})
	}
	return entries
}

func (f *Formatter) MoveNumber(p int) string {
	return f.Text("viewer.move_number", map[string]any{"Index": p}, strconv.Itoa(p))
}

func (f *Formatter) GameHeader(rec *domain.GameRecord) string {
	if rec == nil {
		return ""
	}
	data := map[string]any{"GameID": rec.GameID, "Sente": rec.Sente, "Gote": rec.Gote}
	return f.Text("viewer.game_header", data, rec.GameID+"  "+rec.Sente+" vs "+rec.Gote)
}

// Captured renders one side's pieces in hand.
func (f *Formatter) Captured(list []domain.PieceCount) string {
	return CapturedText(list, f.Text("viewer.captured_none", nil, capturedNone))
}

func (f *Formatter) BoardError() string {
	return f.Text("viewer.board_error", nil, boardError)
}
