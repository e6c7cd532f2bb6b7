package bytefmt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xeptore/bytefmt/unit"
)

// ParseSizeUnit splits s into its magnitude and unit. The accepted form is
// digits with an optional fraction, followed by an optional unit symbol that
// may be preceded by spaces, e.g. "12", "1.5MB" or "3 kib". Matching is
// case-insensitive and covers the whole input. A missing unit means bytes.
func ParseSizeUnit(s string) (float64, unit.Unit, error) {
	end := scanNumber(s)
	if end == 0 {
		return 0, unit.B, ErrInvalidFormat
	}

	var symbol string
	if rest := s[end:]; rest != "" {
		symbol = strings.TrimLeft(rest, " ")
		if !isUnitToken(symbol) {
			return 0, unit.B, ErrInvalidFormat
		}
	}

	u, ok := unit.FromSymbol(symbol)
	if !ok {
		return 0, unit.B, ErrInvalidFormat
	}

	// Digit runs too long for float64 come back as +Inf with ErrRange; the
	// converter saturates them.
	m, err := strconv.ParseFloat(s[:end], 64)
	if nil != err && !errors.Is(err, strconv.ErrRange) {
		return 0, unit.B, ErrInvalidFormat
	}

	return m, u, nil
}

// scanNumber returns the length of the leading digit+('.' digit+)? run of s,
// or 0 when s does not start with one.
func scanNumber(s string) int {
	i := scanDigits(s, 0)
	if i == 0 {
		return 0
	}

	if i < len(s) && s[i] == '.' {
		j := scanDigits(s, i+1)
		if j == i+1 {
			return 0
		}
		i = j
	}

	return i
}

func scanDigits(s string, from int) int {
	i := from
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}

	return i
}

// isUnitToken reports whether s matches ([kmgtp]i?)?b, ignoring case.
func isUnitToken(s string) bool {
	n := len(s)
	if n == 0 || n > 3 || lower(s[n-1]) != 'b' {
		return false
	}

	if n >= 2 && !strings.ContainsRune("kmgtp", rune(lower(s[0]))) {
		return false
	}

	return n != 3 || lower(s[1]) == 'i'
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
