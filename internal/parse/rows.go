package parse

import (
	"fmt"

	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/model"
)

// RowIDAttr is the attribute carrying a row's explicit identity.
const RowIDAttr = "data-row-id"

// ParseRows walks the data rows and produces typed model rows.
//
// Typing is a whole-column decision, so parsing is two-pass: collect
// the raw text of every cell per column, let InferType fix each
// column's type (written back into headers), then re-walk the rows
// coercing cells. Cells beyond the column count are ignored; columns
// beyond a row's cell count stay unset for that row.
//
// nextID comes back as max over (index+1) of all parsed rows, so rows
// added later never collide with synthetic identities handed out here.
func ParseRows(table dom.Node, headerPresent bool, headers []model.TableHeader) (rows []model.TableRow, nextID int) {
	dataRows := DataRows(table, headerPresent)

	// pass 1: collect raw cell text per column
	texts := make([][]string, len(dataRows))
	columnValues := make([][]string, len(headers))
	for ri, row := range dataRows {
		cells := row.Query("td, th")
		n := len(cells)
		if n > len(headers) {
			n = len(headers)
		}
		texts[ri] = make([]string, n)
		for ci := 0; ci < n; ci++ {
			text := cellText(cells[ci])
			texts[ri][ci] = text
			columnValues[ci] = append(columnValues[ci], text)
		}
	}

	// decide types before any value is produced
	for ci := range headers {
		headers[ci].Type = InferType(columnValues[ci])
	}

	// pass 2: typed rows
	rows = make([]model.TableRow, len(dataRows))
	for ri, rowNode := range dataRows {
		id, ok := rowNode.Attr(RowIDAttr)
		if !ok || id == "" {
			id = SyntheticRowID(ri)
		}
		if ri+1 > nextID {
			nextID = ri + 1
		}

		row := model.NewRow(id)
		for ci, text := range texts[ri] {
			row.Set(headers[ci].Name, Coerce(text, headers[ci].Type))
		}
		rows[ri] = row
	}

	return rows, nextID
}

// DataRows returns the table's rows excluding the header row, if any.
func DataRows(table dom.Node, headerPresent bool) []dom.Node {
	rows := table.Query("tr")
	if headerPresent && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows
}

// SyntheticRowID builds the fallback identity for a row lacking an
// explicit one, from its position among data rows.
func SyntheticRowID(index int) string {
	return fmt.Sprintf("row_%d", index)
}

// cellText reads a cell's content: serialized markup when the cell has
// element children (so pre-formatted content survives and is detected
// as RAW), plain trimmed text otherwise.
func cellText(cell dom.Node) string {
	if len(cell.Query("*")) > 0 {
		return cell.InnerHTML()
	}
	return cell.Text()
}
