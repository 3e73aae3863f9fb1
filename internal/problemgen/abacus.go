package problemgen

// Running totals of an addition sequence stay within [MinTotal, MaxTotal].
const (
	MinTotal = 0
	MaxTotal = 100
)

// SmallFriendNeeded reports whether moving delta beads on the ones rod of
// current requires the complement-to-5 technique: adding crosses the
// five-bead from below, subtracting crosses it from above.
func SmallFriendNeeded(current, delta int) bool {
	c := current % 10
	lower := c
	if c >= 5 {
		lower = c - 5
	}
	if delta > 0 {
		return lower+delta >= 5 && c < 5
	}
	return lower+delta < 0 && c >= 5
}

// BigFriendNeeded reports whether applying delta to current carries into or
// borrows from the tens rod (the complement-to-10 technique).
func BigFriendNeeded(current, delta int) bool {
	c := current % 10
	if delta > 0 {
		return c+delta >= 10
	}
	return c+delta < 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
