package presenter

import (
	"strconv"
	"strings"

	"github.com/park285/kifu-viewer/internal/domain"
)

// Chip is the label of one captured-piece chip: 歩 or 歩×3.
func Chip(pc domain.PieceCount) string {
	if pc.Count > 1 {
		return pc.Label + "×" + strconv.Itoa(pc.Count)
	}
	return pc.Label
}

// Chips renders one chip per label in service order.
func Chips(list []domain.PieceCount) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, pc := range list {
		out = append(out, Chip(pc))
	}
	return out
}

// CapturedText joins the chips, or returns placeholder when there are none.
func CapturedText(list []domain.PieceCount, placeholder string) string {
	chips := Chips(list)
	if len(chips) == 0 {
		return placeholder
	}
	return strings.Join(chips, " ")
}
