package bytefmt

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/xeptore/bytefmt/unit"
)

// Size is a byte count that decodes from human-readable strings in YAML,
// JSON, text and command-line flags. It encodes as the exact byte count.
type Size uint64

// ParseSize parses s like Parse and returns it as a Size.
func ParseSize(s string) (Size, error) {
	n, err := Parse(s)
	if nil != err {
		return 0, err
	}

	return Size(n), nil
}

// Bytes returns the byte count.
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// In returns s expressed in u.
func (s Size) In(u unit.Unit) float64 {
	return u.FromBytes(uint64(s))
}

func (s Size) String() string {
	return Format(uint64(s))
}

// Set implements flag.Value.
func (s *Size) Set(value string) error {
	parsed, err := ParseSize(value)
	if nil != err {
		return fmt.Errorf("failed to parse size: %w", err)
	}

	*s = parsed

	return nil
}

// UnmarshalYAML parses a scalar node such as "1.5 MiB" or 2048.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("failed to parse size: expected scalar node, got kind %d", value.Kind)
	}

	return s.Set(value.Value)
}

// MarshalYAML encodes the exact byte count as an integer.
func (s Size) MarshalYAML() (any, error) {
	return uint64(s), nil
}

// UnmarshalJSON accepts a size string or a bare number. null leaves s unchanged.
func (s *Size) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); nil != err {
			return fmt.Errorf("failed to parse size: %v", err)
		}

		return s.Set(str)
	}

	return s.Set(string(b))
}

// MarshalJSON encodes the exact byte count as a number.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(b []byte) error {
	return s.Set(string(b))
}

// MarshalText encodes the exact byte count in decimal.
func (s Size) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Size) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("bytes", uint64(s)).Str("human", s.String())
}

// ToDict returns s as a zerolog dictionary with bytes and human fields.
func (s Size) ToDict() *zerolog.Event {
	return zerolog.Dict().EmbedObject(s)
}
