package model

// DataType classifies the values a column holds.
// It is decided once per parse by whole-column inference and only
// changes when the table is re-parsed from the tree.
type DataType string

const (
	TypeText    DataType = "TEXT"
	TypeInteger DataType = "INTEGER"
	TypeDecimal DataType = "DECIMAL"
	TypeBoolean DataType = "BOOLEAN"
	// TypeRaw marks pre-formatted content that is injected into the
	// tree as structured markup rather than escaped text.
	TypeRaw DataType = "RAW"
)

// TableHeader is a single column: a lower-cased name and an inferred type.
// Name uniqueness is not enforced; duplicate names silently shadow.
type TableHeader struct {
	Name string   `json:"name"`
	Type DataType `json:"type"`
}
