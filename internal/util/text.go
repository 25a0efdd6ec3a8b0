package util

import (
	"strings"
	"time"
)

const (
	PreviewRuneLimit = 30
	PreviewSuffix    = "..."
)

var jst = time.FixedZone("JST", 9*60*60)

// Preview는 해설 첫 부분만 잘라 목록용 문자열을 만든다. 짧아도 suffix는 붙인다.
func Preview(text string, limit int) string {
	if limit <= 0 {
		return PreviewSuffix
	}
	r := []rune(text)
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r) + PreviewSuffix
}

// FormatJST formats t in Japan Standard Time.
func FormatJST(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(jst).Format(layout)
}

// TrimTrailingNewlines drops trailing blank lines but keeps leading spaces,
// which carry board alignment.
func TrimTrailingNewlines(text string) string {
	return strings.TrimRight(text, "\r\n")
}
