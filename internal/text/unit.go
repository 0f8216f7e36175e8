package text

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/serroba/textot/internal/ot"
	"gopkg.in/yaml.v3"
)

// Wire tags of a Unit.
const (
	UnitTypeRetain = "r"
	UnitTypeInsert = "i"
	UnitTypeDelete = "d"
)

// Unit is the serialized form of a single retain, insert or delete.
//
//	{"t": "r", "r": 3}
//	{"t": "i", "i": "abc"}
//	{"t": "d", "d": 2}
type Unit struct {
	T string   `json:"t"           yaml:"t"`
	R Count    `json:"r,omitempty" yaml:"r,omitempty"`
	I *Payload `json:"i,omitempty" yaml:"i,omitempty"`
	D *Payload `json:"d,omitempty" yaml:"d,omitempty"`
}

// Count is a retain length. Decoding is lenient: numbers that are not
// integers, and scalars that are not numbers at all, decode as zero, which
// readers skip.
type Count int

// UnmarshalJSON accepts any JSON scalar.
func (c *Count) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*c = Count(countFromFloat(v))
	case string, bool, nil:
		*c = 0
	default:
		return fmt.Errorf("unit count: unexpected JSON value %s", data)
	}

	return nil
}

// UnmarshalYAML accepts any YAML scalar.
func (c *Count) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unit count: line %d: expected a scalar", value.Line)
	}

	n, _ := yamlCount(value)
	*c = Count(n)

	return nil
}

// countFromFloat returns v as an int, or zero if v is not an integer that
// fits in one.
func countFromFloat(v float64) int {
	if v != math.Trunc(v) || v <= math.MinInt || v >= math.MaxInt {
		return 0
	}

	return int(v)
}

// yamlCount reads a numeric scalar. It reports false for scalars that are
// not numbers; numbers that are not usable counts read as zero.
func yamlCount(value *yaml.Node) (int, bool) {
	switch value.ShortTag() {
	case "!!int":
		var n int
		if err := value.Decode(&n); err != nil {
			return 0, true
		}

		return n, true
	case "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			return 0, true
		}

		return countFromFloat(f), true
	default:
		return 0, false
	}
}

// Payload is either a text run or a count.
type Payload struct {
	text   string
	count  int
	isText bool
}

// TextPayload creates a text payload.
func TextPayload(s string) *Payload {
	return &Payload{text: s, isText: true}
}

// CountPayload creates a count payload.
func CountPayload(n int) *Payload {
	return &Payload{count: n}
}

// IsText returns true if the payload holds text.
func (p *Payload) IsText() bool {
	return p.isText
}

// Text returns the text of a text payload.
func (p *Payload) Text() string {
	return p.text
}

// Count returns the count, or the rune length for a text payload.
func (p *Payload) Count() int {
	if p.isText {
		return len([]rune(p.text))
	}

	return p.count
}

// MarshalJSON encodes the payload as a JSON string or number.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p.isText {
		return json.Marshal(p.text)
	}

	return json.Marshal(p.count)
}

// UnmarshalJSON accepts a JSON string or number. Numbers that are not
// integers decode as a zero count, which readers skip.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*p = Payload{text: v, isText: true}
	case float64:
		*p = Payload{count: countFromFloat(v)}
	case nil:
		*p = Payload{}
	default:
		return fmt.Errorf("unit payload: unexpected JSON value %s", data)
	}

	return nil
}

// MarshalYAML encodes the payload as a YAML string or integer.
func (p *Payload) MarshalYAML() (any, error) {
	if p.isText {
		return p.text, nil
	}

	return p.count, nil
}

// UnmarshalYAML accepts a YAML string or number scalar. Numbers follow the
// same rules as in UnmarshalJSON.
func (p *Payload) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unit payload: line %d: expected a scalar", value.Line)
	}

	if n, ok := yamlCount(value); ok {
		*p = Payload{count: n}

		return nil
	}

	if value.ShortTag() == "!!null" {
		*p = Payload{}

		return nil
	}

	*p = Payload{text: value.Value, isText: true}

	return nil
}

func retainWire(count ot.PositiveInt) *Unit {
	return &Unit{T: UnitTypeRetain, R: Count(count.Value())}
}

// unitsToWire serializes units with the given payload encoders.
func unitsToWire[I, D any](units []ot.Unit[I, D], insert func(I) *Payload, del func(D) *Payload) []*Unit {
	result := make([]*Unit, 0, len(units))

	for _, u := range units {
		switch u.Kind {
		case ot.UnitRetain:
			result = append(result, retainWire(u.Retain))
		case ot.UnitInsert:
			result = append(result, &Unit{T: UnitTypeInsert, I: insert(u.Insert)})
		case ot.UnitDelete:
			result = append(result, &Unit{T: UnitTypeDelete, D: del(u.Delete)})
		}
	}

	return result
}

// unitsFromWire rebuilds an operation, skipping nil units, non-positive
// counts and empty strings. Unknown unit types are skipped too.
func unitsFromWire[I, D any](
	units []*Unit, f ot.Factory[I, D], insert func(*Payload) (I, bool), del func(*Payload) (D, bool),
) ot.Operation[I, D] {
	builder := ot.NewBuilder[I, D](f, nil)

	for _, u := range units {
		if u == nil {
			continue
		}

		switch u.T {
		case UnitTypeRetain:
			if count, ok := ot.TryPositiveInt(int(u.R)); ok {
				builder.Retain(count)
			}
		case UnitTypeInsert:
			if u.I == nil {
				continue
			}

			if v, ok := insert(u.I); ok {
				builder.Insert(v)
			}
		case UnitTypeDelete:
			if u.D == nil {
				continue
			}

			if v, ok := del(u.D); ok {
				builder.Delete(v)
			}
		}
	}

	return builder.Build()
}

func textPayload(s NonEmptyString) *Payload {
	return TextPayload(s.value)
}

func countPayload(n ot.PositiveInt) *Payload {
	return CountPayload(n.Value())
}

// textFromPayload reads a text payload. A count cannot be turned into text.
func textFromPayload(p *Payload) (NonEmptyString, bool) {
	if !p.isText {
		return NonEmptyString{}, false
	}

	return TryNonEmptyString(p.text)
}

// countFromPayload reads a count payload; text payloads contribute their length.
func countFromPayload(p *Payload) (ot.PositiveInt, bool) {
	return ot.TryPositiveInt(p.Count())
}
