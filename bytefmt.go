// Package bytefmt parses human-readable byte sizes such as "1.23 MB" or
// "512 KiB" into byte counts, and formats byte counts back into such strings.
package bytefmt

import (
	"errors"

	"github.com/xeptore/bytefmt/unit"
)

// ErrInvalidFormat is returned for any input that is not a valid byte size.
var ErrInvalidFormat = errors.New("Parse Error. Invalid byte format.") //nolint:revive,staticcheck

// Unit is an alias of unit.Unit, so callers need not import the subpackage.
type Unit = unit.Unit

// Units re-exported from package unit.

const (
	B   = unit.B
	KB  = unit.KB
	MB  = unit.MB
	GB  = unit.GB
	TB  = unit.TB
	PB  = unit.PB
	KiB = unit.KiB
	MiB = unit.MiB
	GiB = unit.GiB
	TiB = unit.TiB
	PiB = unit.PiB
)

// Parse converts s to a byte count. Fractional bytes are truncated.
func Parse(s string) (uint64, error) {
	m, u, err := ParseSizeUnit(s)
	if nil != err {
		return 0, err
	}

	return u.ToBytes(m), nil
}

// ParseTo converts s to a magnitude expressed in u. The input is first
// truncated to a whole number of bytes.
func ParseTo(s string, u Unit) (float64, error) {
	n, err := Parse(s)
	if nil != err {
		return 0, err
	}

	return u.FromBytes(n), nil
}
