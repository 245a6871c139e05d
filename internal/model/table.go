package model

import (
	json "github.com/goccy/go-json"
)

// Table is the parsed structured table: identity, display name, ordered
// columns, hidden sidecar values and ordered rows. One instance per
// engine; replaced wholesale on refresh, mutated incrementally by CRUD.
type Table struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Headers []TableHeader     `json:"headers"`
	Hidden  map[string]string `json:"hidden"`
	Rows    []TableRow        `json:"rows"`
}

// FindRow scans the row sequence for the given identity and returns its
// position. First match wins, so duplicate identities resolve to the
// earliest row.
func (t *Table) FindRow(id string) (int, bool) {
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Header returns the column with the given name, if declared.
func (t *Table) Header(name string) (TableHeader, bool) {
	for _, h := range t.Headers {
		if h.Name == name {
			return h, true
		}
	}
	return TableHeader{}, false
}

// Copy creates a deep snapshot of the table. Mutating the snapshot
// never affects the source.
func (t *Table) Copy() *Table {
	cp := &Table{
		ID:      t.ID,
		Name:    t.Name,
		Headers: make([]TableHeader, len(t.Headers)),
		Hidden:  make(map[string]string, len(t.Hidden)),
		Rows:    make([]TableRow, len(t.Rows)),
	}
	copy(cp.Headers, t.Headers)
	for k, v := range t.Hidden {
		cp.Hidden[k] = v
	}
	for i := range t.Rows {
		cp.Rows[i] = t.Rows[i].Copy()
	}
	return cp
}

// ToJSON serializes the table for export and the REPL's json command.
func (t *Table) ToJSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
