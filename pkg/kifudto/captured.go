package kifudto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type CapturedPieces struct {
	Sente PieceCounts `json:"sente"`
	Gote  PieceCounts `json:"gote"`
}

type PieceCount struct {
	Label string
	Count int
}

// PieceCounts decodes a JSON object of label → count while keeping the key
// order of the payload. A plain map would lose it.
type PieceCounts []PieceCount

func (p *PieceCounts) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("piece counts: expected object, got %v", tok)
	}
	out := PieceCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("piece counts: unexpected key %v", keyTok)
		}
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("piece counts: %s: %w", label, err)
		}
		count, err := parseCount(n)
		if err != nil {
			return fmt.Errorf("piece counts: %s: %w", label, err)
		}
		out = append(out, PieceCount{Label: label, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

func (p PieceCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pc := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pc.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(pc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func parseCount(n json.Number) (int, error) {
	if v, err := n.Int64(); err == nil {
		return int(v), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integer count %s", n.String())
	}
	return int(f), nil
}
