// Package render projects model rows onto the markup tree. Addressing
// is positional: the i-th model row maps to the i-th data row of the
// tree, offset by the header row when one exists. Append-only insert,
// merge-in-place update and splice-style delete keep that parity.
package render

import (
	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/model"
	"github.com/leengari/tabledom/internal/parse"
)

// Renderer writes single rows into one table's tree.
type Renderer struct {
	table         dom.Node
	headerPresent bool
}

// New creates a renderer for the given table node.
func New(table dom.Node, headerPresent bool) *Renderer {
	return &Renderer{table: table, headerPresent: headerPresent}
}

// DataRowPosition maps a model row index to the index of its fragment
// among the tree's row sequence, accounting for a leading header row.
func DataRowPosition(modelIndex int, headerPresent bool) int {
	if headerPresent {
		return modelIndex + 1
	}
	return modelIndex
}

// Insert appends a new row fragment tagged with the row's identity,
// one cell per column in column order.
func (r *Renderer) Insert(row model.TableRow, headers []model.TableHeader) {
	tr := r.rowContainer().Append("tr")
	tr.SetAttr(parse.RowIDAttr, row.ID)
	for _, h := range headers {
		td := tr.Append("td")
		v, ok := row.Get(h.Name)
		if !ok {
			v = model.ZeroOf(h.Type)
		}
		writeCell(td, h.Type, v)
	}
}

// Overwrite rewrites the existing cells of the fragment at the given
// model index, in column order. Cells the fragment does not have are
// skipped, mirroring what the parser tolerated.
func (r *Renderer) Overwrite(row model.TableRow, headers []model.TableHeader, modelIndex int) {
	tr, ok := r.rowAt(modelIndex)
	if !ok {
		return
	}
	cells := tr.Query("td, th")
	for ci, h := range headers {
		if ci >= len(cells) {
			break
		}
		v, ok := row.Get(h.Name)
		if !ok {
			continue
		}
		writeCell(cells[ci], h.Type, v)
	}
}

// RemoveAt removes the row fragment at the given model index.
func (r *Renderer) RemoveAt(modelIndex int) {
	if tr, ok := r.rowAt(modelIndex); ok {
		tr.Remove()
	}
}

func (r *Renderer) rowAt(modelIndex int) (dom.Node, bool) {
	rows := r.table.Query("tr")
	pos := DataRowPosition(modelIndex, r.headerPresent)
	if pos < 0 || pos >= len(rows) {
		return nil, false
	}
	return rows[pos], true
}

// rowContainer is where new row fragments go: the body section when
// the tree has one, the table itself otherwise.
func (r *Renderer) rowContainer() dom.Node {
	if bodies := r.table.Query("tbody"); len(bodies) > 0 {
		return bodies[0]
	}
	return r.table
}

// writeCell injects a value: RAW as structured content, everything
// else as escaped text.
func writeCell(cell dom.Node, t model.DataType, v model.Value) {
	if t == model.TypeRaw {
		cell.SetHTML(v.String())
		return
	}
	cell.SetText(v.String())
}
