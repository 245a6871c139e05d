// Package parse turns a table-shaped markup tree into the typed model:
// header detection, whole-column type inference, row identity
// assignment and cell coercion.
package parse

import (
	"fmt"

	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/model"
)

// NameAttr optionally carries the table's display name.
const NameAttr = "data-name"

// SidecarError reports a hidden sidecar field that cannot be keyed.
// It is a construction error: initialization halts on it.
type SidecarError struct {
	TableID string // table identity (may be empty)
	Index   int    // position of the offending field, 0-based
}

func (e *SidecarError) Error() string {
	return fmt.Sprintf("hidden field %d in table %q has neither name nor id attribute", e.Index, e.TableID)
}

// Result is a complete parse of one table node.
type Result struct {
	Table         *model.Table
	HeaderPresent bool
	NextRowID     int // counter value CRUD should continue from
}

// Parse builds the full model from a table node.
func Parse(table dom.Node) (*Result, error) {
	id, _ := table.Attr("id")

	t := &model.Table{
		ID:   id,
		Name: displayName(table, id),
	}

	hidden, err := parseHidden(table, id)
	if err != nil {
		return nil, err
	}
	t.Hidden = hidden

	headerPresent, headers := DetectColumns(table)
	rows, nextID := ParseRows(table, headerPresent, headers)
	t.Headers = headers
	t.Rows = rows

	return &Result{Table: t, HeaderPresent: headerPresent, NextRowID: nextID}, nil
}

func displayName(table dom.Node, id string) string {
	if name, ok := table.Attr(NameAttr); ok && name != "" {
		return name
	}
	if captions := table.Query("caption"); len(captions) > 0 {
		if text := captions[0].Text(); text != "" {
			return text
		}
	}
	return id
}

// parseHidden reads the out-of-band hidden fields once. They are input
// only: CRUD never writes them back to the tree.
func parseHidden(table dom.Node, tableID string) (map[string]string, error) {
	hidden := make(map[string]string)
	for i, input := range table.Query("input[type=hidden]") {
		key, ok := input.Attr("name")
		if !ok || key == "" {
			key, ok = input.Attr("id")
		}
		if !ok || key == "" {
			return nil, &SidecarError{TableID: tableID, Index: i}
		}
		value, _ := input.Attr("value")
		hidden[key] = value
	}
	return hidden, nil
}
