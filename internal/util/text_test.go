package util

import (
	"testing"
	"time"
)

func TestPreviewCountsRunes(t *testing.T) {
	long := "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめも"
	got := Preview(long, PreviewRuneLimit)
	want := "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほ..."
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := Preview("短い", PreviewRuneLimit); got != "短い..." {
		t.Fatalf("short preview %q", got)
	}
	if got := Preview("", PreviewRuneLimit); got != "..." {
		t.Fatalf("empty preview %q", got)
	}
}

func TestFormatJST(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)
	if got := FormatJST(ts, "2006/01/02 15:04"); got != "2024/01/03 00:04" {
		t.Fatalf("got %q", got)
	}
	if got := FormatJST(time.Time{}, "2006"); got != "-" {
		t.Fatalf("zero time %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("  a\nb\n\n"); got != "  a\nb" {
		t.Fatalf("got %q", got)
	}
}
