package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/model"
)

// DetectColumns decides whether the table has a header row and derives
// the ordered column set from it.
//
// A row counts as a header when the tree exposes an explicit header
// container, when the first row's cells are header cells, or when every
// plain cell of the first row is non-empty and non-numeric. Otherwise
// one synthetic column per cell position is produced. A table with no
// rows has no columns at all.
//
// All columns come back provisionally typed TEXT; the inferrer assigns
// the final type before rows are parsed.
func DetectColumns(table dom.Node) (headerPresent bool, headers []model.TableHeader) {
	rows := table.Query("tr")
	if len(rows) == 0 {
		return false, nil
	}

	// 1. Explicit header container wins
	if theadRows := table.Query("thead tr"); len(theadRows) > 0 {
		return true, headersFromCells(theadRows[0].Query("th, td"))
	}

	first := rows[0]

	// 2. First row built from header cells
	if ths := first.Query("th"); len(ths) > 0 {
		return true, headersFromCells(ths)
	}

	// 3. Heuristic on plain cells: all non-empty, none numeric
	cells := first.Query("td")
	if headerLike(cells) {
		return true, headersFromCells(cells)
	}

	// 4. Not a header: synthesize one column per cell position
	return false, syntheticHeaders(len(cells))
}

func headerLike(cells []dom.Node) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		text := c.Text()
		if text == "" {
			return false
		}
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return false
		}
	}
	return true
}

func headersFromCells(cells []dom.Node) []model.TableHeader {
	headers := make([]model.TableHeader, len(cells))
	for i, c := range cells {
		name := strings.ToLower(c.Text())
		if name == "" {
			name = syntheticName(i)
		}
		headers[i] = model.TableHeader{Name: name, Type: model.TypeText}
	}
	return headers
}

func syntheticHeaders(n int) []model.TableHeader {
	headers := make([]model.TableHeader, n)
	for i := range headers {
		headers[i] = model.TableHeader{Name: syntheticName(i), Type: model.TypeText}
	}
	return headers
}

func syntheticName(i int) string {
	return fmt.Sprintf("column%d", i+1)
}
