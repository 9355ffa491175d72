package grid

import (
	"strconv"
	"strings"
)

// CoerceCount converts an arbitrary cell value into a non-negative count.
// Blank cells, thousands separators, and non-numeric noise are normal input,
// not faults: anything unparseable coerces to 0. Fractional values truncate
// toward zero and negative results floor at 0, so the function is total and
// its result is always >= 0.
func CoerceCount(v string) int {
	s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	n := int(f)
	if n < 0 {
		return 0
	}
	return n
}
