// Package unit holds the byte-size units understood by bytefmt, along with
// their divisors and display symbols.
package unit

import (
	"strconv"

	"github.com/samber/lo"
)

// Unit is one of the eleven recognized byte-size units. The zero value is B.
type Unit uint8

// The eleven units: decimal (powers of 1000) first, then binary (powers of
// 1024).
const (
	B Unit = iota
	KB
	MB
	GB
	TB
	PB
	KiB
	MiB
	GiB
	TiB
	PiB

	count
)

type entry struct {
	divisor uint64
	symbol  string
}

var table = [count]entry{
	B:   {divisor: Byte, symbol: "B"},
	KB:  {divisor: Kilobyte, symbol: "KB"},
	MB:  {divisor: Megabyte, symbol: "MB"},
	GB:  {divisor: Gigabyte, symbol: "GB"},
	TB:  {divisor: Terabyte, symbol: "TB"},
	PB:  {divisor: Petabyte, symbol: "PB"},
	KiB: {divisor: Kibibyte, symbol: "KiB"},
	MiB: {divisor: Mebibyte, symbol: "MiB"},
	GiB: {divisor: Gibibyte, symbol: "GiB"},
	TiB: {divisor: Tebibyte, symbol: "TiB"},
	PiB: {divisor: Pebibyte, symbol: "PiB"},
}

func (u Unit) entry() entry {
	if !u.Valid() {
		panic("invalid unit: " + strconv.Itoa(int(u)))
	}

	return table[u]
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return u < count
}

// Divisor returns the number of bytes in one u.
func (u Unit) Divisor() uint64 {
	return u.entry().divisor
}

// Symbol returns the display symbol of u, e.g. "KB" or "MiB".
func (u Unit) Symbol() string {
	return u.entry().symbol
}

func (u Unit) String() string {
	if !u.Valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}

	return table[u].symbol
}

// IsBinary reports whether u is a power of 1024.
func (u Unit) IsBinary() bool {
	return u >= KiB && u.Valid()
}

// All returns every unit in declaration order: the decimal units first, then
// the binary ones.
func All() []Unit {
	return lo.Times(int(count), func(i int) Unit { return Unit(i) })
}

// FromSymbol looks up a unit by its symbol, ignoring case. An empty symbol
// means B.
func FromSymbol(s string) (Unit, bool) {
	if s == "" {
		return B, true
	}

	return lo.Find(All(), func(u Unit) bool { return equalFoldASCII(table[u].symbol, s) })
}

// equalFoldASCII is strings.EqualFold restricted to ASCII letters, so that
// look-alikes such as the Kelvin sign do not fold into symbols.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
