package model

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Fields is a caller-supplied partial row or update set.
// Values are normalized with ValueOf when applied.
type Fields map[string]any

// TableRow is one table row: a stable identity plus an ordered-key
// mapping of values. Keys beyond the declared columns are tolerated
// and persisted. Identity is assigned once and never regenerated.
type TableRow struct {
	ID     string
	keys   []string
	values map[string]Value
}

// NewRow creates an empty row with the given identity.
func NewRow(id string) TableRow {
	return TableRow{ID: id, values: make(map[string]Value)}
}

// Set stores a value under key, preserving first-insertion key order.
func (r *TableRow) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r TableRow) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether the row carries a value for key.
func (r TableRow) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the row's keys in insertion order.
func (r TableRow) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys present.
func (r TableRow) Len() int { return len(r.keys) }

// Copy creates a deep copy of the row to prevent mutation of shared state.
func (r TableRow) Copy() TableRow {
	cp := TableRow{ID: r.ID, keys: make([]string, len(r.keys)), values: make(map[string]Value, len(r.values))}
	copy(cp.keys, r.keys)
	for k, v := range r.values {
		cp.values[k] = v
	}
	return cp
}

// MarshalJSON encodes the row as an object with "id" first and the
// remaining keys in insertion order.
func (r TableRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"id":`)
	id, err := json.Marshal(r.ID)
	if err != nil {
		return nil, err
	}
	buf.Write(id)
	for _, k := range r.keys {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
