package parse

import (
	"strconv"
	"strings"

	"github.com/leengari/tabledom/internal/model"
)

// rawLengthLimit is the cell length above which content is treated as
// pre-formatted rather than plain text.
const rawLengthLimit = 100

// InferType decides a column's type from every textual value observed
// in it across all data rows. The checks run in a fixed order because
// the categories overlap on raw text; first match wins.
func InferType(values []string) model.DataType {
	// 1. Nothing observed at all
	if len(values) == 0 {
		return model.TypeText
	}

	// 2. Markup or oversized content anywhere makes the column RAW
	for _, v := range values {
		if strings.ContainsAny(v, "<>") || len(v) > rawLengthLimit {
			return model.TypeRaw
		}
	}

	// 3. Every value empty or a true/false literal
	boolean := true
	for _, v := range values {
		if v != "" && !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
			boolean = false
			break
		}
	}
	if boolean {
		return model.TypeBoolean
	}

	// 4. Numeric check over the non-empty values
	numeric := true
	decimal := false
	seen := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		seen++
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
		if strings.Contains(v, ".") {
			decimal = true
		}
	}
	if seen == 0 || !numeric {
		return model.TypeText
	}
	if decimal {
		return model.TypeDecimal
	}
	return model.TypeInteger
}
