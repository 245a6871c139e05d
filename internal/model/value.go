package model

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Value is a tagged cell value. Exactly the fields matching Type are
// meaningful; Null is only used by Integer and Decimal (an empty cell),
// Boolean has no null state and coerces empty to false.
type Value struct {
	Type DataType
	Str  string
	Int  int64
	Dec  float64
	Bool bool
	Null bool
}

// Text builds a TEXT value.
func Text(s string) Value { return Value{Type: TypeText, Str: s} }

// Raw builds a RAW value holding unescaped markup.
func Raw(s string) Value { return Value{Type: TypeRaw, Str: s} }

// Integer builds an INTEGER value.
func Integer(i int64) Value { return Value{Type: TypeInteger, Int: i} }

// Decimal builds a DECIMAL value.
func Decimal(f float64) Value { return Value{Type: TypeDecimal, Dec: f} }

// Boolean builds a BOOLEAN value.
func Boolean(b bool) Value { return Value{Type: TypeBoolean, Bool: b} }

// NullOf builds the null value of the given type (empty numeric cell).
func NullOf(t DataType) Value { return Value{Type: t, Null: true} }

// ZeroOf returns the backfill value used when a created row is missing
// a column: empty string, 0, 0.0 or false depending on the column type.
func ZeroOf(t DataType) Value {
	switch t {
	case TypeInteger:
		return Integer(0)
	case TypeDecimal:
		return Decimal(0)
	case TypeBoolean:
		return Boolean(false)
	case TypeRaw:
		return Raw("")
	default:
		return Text("")
	}
}

// ValueOf normalizes a caller-supplied Go value into a Value.
// Integers of any width become INTEGER, floats DECIMAL, bools BOOLEAN,
// strings TEXT; a Value passes through untouched and nil becomes a
// null TEXT value.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case nil:
		return NullOf(TypeText)
	case string:
		return Text(x)
	case bool:
		return Boolean(x)
	case int:
		return Integer(int64(x))
	case int32:
		return Integer(int64(x))
	case int64:
		return Integer(x)
	case float32:
		return Decimal(float64(x))
	case float64:
		return Decimal(x)
	default:
		return Text(stringify(x))
	}
}

func stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// String returns the rendering form of the value: what gets written
// into a tree cell. Null numerics render as the empty string.
func (v Value) String() string {
	if v.Null && (v.Type == TypeInteger || v.Type == TypeDecimal) {
		return ""
	}
	switch v.Type {
	case TypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case TypeDecimal:
		return strconv.FormatFloat(v.Dec, 'g', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Interface returns the plain Go form of the value, nil for nulls.
func (v Value) Interface() any {
	if v.Null {
		return nil
	}
	switch v.Type {
	case TypeInteger:
		return v.Int
	case TypeDecimal:
		return v.Dec
	case TypeBoolean:
		return v.Bool
	default:
		return v.Str
	}
}

// MarshalJSON encodes the plain Go form, not the tag wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
