package presenter

import (
	"strings"
	"testing"
)

func TestMarkGoteWrapsEverySpan(t *testing.T) {
	board := "|◆香◆|◆桂◆| ・| 歩|\n| 玉|◆歩◆|"
	got := MarkGote(board, HTMLMarkup)
	want := `|<span class="gote-piece">香</span>|<span class="gote-piece">桂</span>| ・| 歩|` + "\n" + `| 玉|<span class="gote-piece">歩</span>|`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
	if strings.Contains(got, GoteMarker) {
		t.Fatalf("marker left in output: %q", got)
	}
}

func TestMarkGoteIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"no markers here 歩 金",
		"◆歩◆",
		"|◆龍◆| 馬|◆と◆|",
		"◆成銀◆◆金◆",
	}
	for _, m := range []Markup{HTMLMarkup, TviewMarkup, PlainMarkup} {
		for _, in := range inputs {
			once := MarkGote(in, m)
			twice := MarkGote(once, m)
			if once != twice {
				t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
			}
		}
	}
}

func TestMarkGoteLeavesUnmarkedText(t *testing.T) {
	in := "| 歩| 金| 玉|"
	if got := MarkGote(in, HTMLMarkup); got != in {
		t.Fatalf("unmarked text changed: %q", got)
	}
	// an unpaired marker is not a span
	if got := MarkGote("◆歩", HTMLMarkup); got != "◆歩" {
		t.Fatalf("unpaired marker changed: %q", got)
	}
}

func TestSplitGoteAndRender(t *testing.T) {
	spans := SplitGote("a◆歩◆b◆[x]◆")
	want := []Span{{Text: "a"}, {Text: "歩", Gote: true}, {Text: "b"}, {Text: "[x]", Gote: true}}
	if len(spans) != len(want) {
		t.Fatalf("spans = %+v", spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("span %d = %+v want %+v", i, spans[i], want[i])
		}
	}
	esc := func(s string) string { return strings.ReplaceAll(s, "[", "[[") }
	got := RenderSpans(spans, Markup{Open: "<", Close: ">"}, esc)
	if got != "a<歩>b<[[x]>" {
		t.Fatalf("render = %q", got)
	}
	if SplitGote("") != nil {
		t.Fatalf("empty board should have no spans")
	}
	if s := SplitGote("plain"); len(s) != 1 || s[0].Gote {
		t.Fatalf("plain spans = %+v", s)
	}
}
