package presenter

import (
	"regexp"
	"strings"
)

// GoteMarker wraps gote piece labels in service board text: ◆歩◆.
const GoteMarker = "◆"

var goteSpanRe = regexp.MustCompile(`◆([^◆]+)◆`)

// Markup is the pair of tags placed around a gote label.
// Neither tag may contain GoteMarker.
type Markup struct {
	Open  string
	Close string
}

var (
	// HTMLMarkup is kifucheck -html output.
	HTMLMarkup  = Markup{Open: `<span class="gote-piece">`, Close: `</span>`}
	TviewMarkup = Markup{Open: "[red::b]", Close: "[-:-:-]"}
	// PlainMarkup is used where colour is unavailable (kifucheck output).
	PlainMarkup = Markup{Open: "v", Close: ""}
)

// Span is a run of board text, either plain or a gote piece label.
type Span struct {
	Text string
	Gote bool
}

// MarkGote replaces every ◆label◆ with m.Open+label+m.Close and leaves the
// rest of board untouched. Output holds no markers for well-formed input,
// so a second pass is a no-op.
func MarkGote(board string, m Markup) string {
	return goteSpanRe.ReplaceAllStringFunc(board, func(s string) string {
		label := strings.TrimSuffix(strings.TrimPrefix(s, GoteMarker), GoteMarker)
		return m.Open + label + m.Close
	})
}

// SplitGote cuts board into plain and gote spans in order.
func SplitGote(board string) []Span {
	idx := goteSpanRe.FindAllStringSubmatchIndex(board, -1)
	if len(idx) == 0 {
		if board == "" {
			return nil
		}
		return []Span{{Text: board}}
	}
	spans := make([]Span, 0, len(idx)*2+1)
	last := 0
	for _, m := range idx {
		if m[0] > last {
			spans = append(spans, Span{Text: board[last:m[0]]})
		}
		spans = append(spans, Span{Text: board[m[2]:m[3]], Gote: true})
		last = m[1]
	}
	if last < len(board) {
		spans = append(spans, Span{Text: board[last:]})
	}
	return spans
}

// RenderSpans joins spans with m around gote labels. escape, when set, is
// applied to every text run (tview.Escape for the terminal).
func RenderSpans(spans []Span, m Markup, escape func(string) string) string {
	var sb strings.Builder
	for _, s := range spans {
		text := s.Text
		if escape != nil {
			text = escape(text)
		}
		if s.Gote {
			sb.WriteString(m.Open)
			sb.WriteString(text)
			sb.WriteString(m.Close)
			continue
		}
		sb.WriteString(text)
	}
	return sb.String()
}
