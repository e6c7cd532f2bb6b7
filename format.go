package bytefmt

import (
	"strconv"
	"strings"

	"github.com/xeptore/bytefmt/unit"
)

// Format renders n using the largest decimal unit that keeps the magnitude
// below 1000, up to PB.
func Format(n uint64) string {
	switch {
	case n < unit.Kilobyte:
		return FormatTo(n, B)
	case n < unit.Megabyte:
		return FormatTo(n, KB)
	case n < unit.Gigabyte:
		return FormatTo(n, MB)
	case n < unit.Terabyte:
		return FormatTo(n, GB)
	case n < unit.Petabyte:
		return FormatTo(n, TB)
	default:
		return FormatTo(n, PB)
	}
}

// FormatTo renders n in u with at most two decimal places, e.g. "0.5 KB" or
// "1230 KB".
func FormatTo(n uint64, u Unit) string {
	s := strconv.FormatFloat(u.FromBytes(n), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s + " " + u.Symbol()
}
