package viewer

// Clamp bounds k to the cursor range [0, n].
func Clamp(k, n int) int {
	if n < 0 {
		n = 0
	}
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}

// NavState says which navigation controls are enabled.
type NavState struct {
	First bool
	Prev  bool
	Next  bool
	Last  bool
}

// Navigation derives control enablement from position p of n moves:
// first/prev are off exactly at 0, next/last exactly at n.
func Navigation(p, n int) NavState {
	atStart := p <= 0
	atEnd := p >= n
	return NavState{First: !atStart, Prev: !atStart, Next: !atEnd, Last: !atEnd}
}
