package parse

import (
	"strconv"
	"strings"

	"github.com/leengari/tabledom/internal/model"
)

// Coerce converts one cell's trimmed text into a typed value using the
// column's inferred type. Empty INTEGER/DECIMAL cells become null;
// BOOLEAN has no null state and coerces anything but "true" to false.
func Coerce(text string, t model.DataType) model.Value {
	switch t {
	case model.TypeInteger:
		if text == "" {
			return model.NullOf(model.TypeInteger)
		}
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return model.Integer(i)
		}
		// tolerate exponent forms the inferrer accepted as numeric
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return model.Integer(int64(f))
		}
		return model.NullOf(model.TypeInteger)

	case model.TypeDecimal:
		if text == "" {
			return model.NullOf(model.TypeDecimal)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.NullOf(model.TypeDecimal)
		}
		return model.Decimal(f)

	case model.TypeBoolean:
		return model.Boolean(strings.EqualFold(text, "true"))

	case model.TypeRaw:
		return model.Raw(text)

	default:
		return model.Text(text)
	}
}
