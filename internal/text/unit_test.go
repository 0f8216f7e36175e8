package text_test

import (
	"encoding/json"
	"testing"

	"github.com/serroba/textot/internal/text"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnits_JSONShape(t *testing.T) {
	t.Parallel()

	op := diff(t, "abc", "aXc")

	up, err := json.Marshal(op.Up().Units())
	require.NoError(t, err)
	require.JSONEq(t, `[{"t":"r","r":1},{"t":"d","d":1},{"t":"i","i":"X"},{"t":"r","r":1}]`, string(up))

	down, err := json.Marshal(op.Down().Units())
	require.NoError(t, err)
	require.JSONEq(t, `[{"t":"r","r":1},{"t":"d","d":"b"},{"t":"i","i":1},{"t":"r","r":1}]`, string(down))

	twoWay, err := json.Marshal(op.Units())
	require.NoError(t, err)
	require.JSONEq(t, `[{"t":"r","r":1},{"t":"d","d":"b"},{"t":"i","i":"X"},{"t":"r","r":1}]`, string(twoWay))
}

func TestUnits_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	op := diff(t, "hello, world", "Hello there, world!")

	data, err := json.Marshal(op.Units())
	require.NoError(t, err)

	var units []*text.Unit
	require.NoError(t, json.Unmarshal(data, &units))

	require.Equal(t, op, text.TwoWayFromUnits(units))
	require.Equal(t, op.Up(), text.UpFromUnits(units))
	require.Equal(t, op.Down(), text.DownFromUnits(units))
}

func TestUpFromUnits_Lenient(t *testing.T) {
	t.Parallel()

	data := `[
		null,
		{"t": "r", "r": 0},
		{"t": "r", "r": -2},
		{"t": "i", "i": ""},
		{"t": "r", "r": 2},
		{"t": "d", "d": 2.0},
		{"t": "d", "d": 1.5},
		{"t": "i", "i": "xy"},
		{"t": "q", "r": 4},
		{"t": "i", "i": null},
		{"t": "d", "d": "ab"}
	]`

	var units []*text.Unit
	require.NoError(t, json.Unmarshal([]byte(data), &units))

	b := upBuilder()
	b.Retain(pos(2))
	b.Delete(pos(4))
	b.Insert(str("xy"))

	require.Equal(t, text.UpOperation(b.Build()), text.UpFromUnits(units))
}

func TestTwoWayFromUnits_SkipsCounts(t *testing.T) {
	t.Parallel()

	units := []*text.Unit{
		{T: text.UnitTypeRetain, R: 1},
		{T: text.UnitTypeDelete, D: text.CountPayload(3)},
		{T: text.UnitTypeInsert, I: text.TextPayload("z")},
	}

	got, err := text.TwoWayFromUnits(units).Apply("a")
	require.NoError(t, err)
	require.Equal(t, "az", got)
}

func TestPayload_UnmarshalJSONRejectsObjects(t *testing.T) {
	t.Parallel()

	var units []*text.Unit
	require.Error(t, json.Unmarshal([]byte(`[{"t":"i","i":{"x":1}}]`), &units))
}

func TestUnits_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	op := diff(t, "a", "a123\nb")

	data, err := yaml.Marshal(op.Units())
	require.NoError(t, err)

	var units []*text.Unit
	require.NoError(t, yaml.Unmarshal(data, &units))
	require.Equal(t, op, text.TwoWayFromUnits(units))

	data, err = yaml.Marshal(op.Up().Units())
	require.NoError(t, err)

	units = nil
	require.NoError(t, yaml.Unmarshal(data, &units))
	require.Equal(t, op.Up(), text.UpFromUnits(units))
}

func TestUnits_YAMLDocument(t *testing.T) {
	t.Parallel()

	doc := `
- t: r
  r: 2
- t: d
  d: 3
- t: i
  i: "7"
`

	var units []*text.Unit
	require.NoError(t, yaml.Unmarshal([]byte(doc), &units))

	got, err := text.UpFromUnits(units).Apply("abcde")
	require.NoError(t, err)
	require.Equal(t, "ab7", got)
}

func TestUpFromUnits_LenientJSONNumbers(t *testing.T) {
	t.Parallel()

	data := `[
		{"t": "r", "r": 1.5},
		{"t": "r", "r": "3"},
		{"t": "r", "r": null},
		{"t": "r", "r": 1e300},
		{"t": "r", "r": 2.0},
		{"t": "d", "d": 1.5},
		{"t": "d", "d": -1e300},
		{"t": "d", "d": 1},
		{"t": "i", "i": "x"}
	]`

	var units []*text.Unit
	require.NoError(t, json.Unmarshal([]byte(data), &units))

	b := upBuilder()
	b.Retain(pos(2))
	b.Delete(pos(1))
	b.Insert(str("x"))

	require.Equal(t, text.UpOperation(b.Build()), text.UpFromUnits(units))
}

func TestCount_UnmarshalJSONRejectsObjects(t *testing.T) {
	t.Parallel()

	var units []*text.Unit
	require.Error(t, json.Unmarshal([]byte(`[{"t":"r","r":{"n":1}}]`), &units))
}

func TestUpFromUnits_LenientYAMLNumbers(t *testing.T) {
	t.Parallel()

	doc := `
- t: r
  r: 1.5
- t: r
  r: 2.0
- t: d
  d: 1.5
- t: d
  d: .inf
- t: d
  d: 99999999999999999999
- t: d
  d: 1.0
- t: i
  i: x
`

	var units []*text.Unit
	require.NoError(t, yaml.Unmarshal([]byte(doc), &units))

	b := upBuilder()
	b.Retain(pos(2))
	b.Delete(pos(1))
	b.Insert(str("x"))

	require.Equal(t, text.UpOperation(b.Build()), text.UpFromUnits(units))

	got, err := text.UpFromUnits(units).Apply("abc")
	require.NoError(t, err)
	require.Equal(t, "abx", got)
}

func TestTwoWayFromUnits_SkipsInvalidUTF8(t *testing.T) {
	t.Parallel()

	units := []*text.Unit{
		{T: text.UnitTypeRetain, R: 1},
		{T: text.UnitTypeInsert, I: text.TextPayload("\xff")},
		{T: text.UnitTypeInsert, I: text.TextPayload("z")},
	}

	got, err := text.TwoWayFromUnits(units).Apply("a")
	require.NoError(t, err)
	require.Equal(t, "az", got)
}
