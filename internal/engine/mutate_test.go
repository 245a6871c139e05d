package engine

import (
	"testing"

	"github.com/leengari/tabledom/internal/model"
	"github.com/leengari/tabledom/internal/parse"
)

func TestAddRowRoundTrip(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")
	before := len(f.eng.Table().Rows)

	row := f.eng.AddRow(model.Fields{"name": "John", "age": 30})

	if row.ID != "row_2" {
		t.Errorf("expected synthetic id row_2, got %q", row.ID)
	}
	age, _ := row.Get("age")
	if age.Type != model.TypeInteger || age.Int != 30 {
		t.Errorf("expected typed Integer 30, got %+v", age)
	}

	tab := f.eng.Table()
	if len(tab.Rows) != before+1 {
		t.Fatalf("expected %d rows, got %d", before+1, len(tab.Rows))
	}

	// the tree gained exactly one fragment with two cells in column order
	treeRows := parse.DataRows(f.table, true)
	if len(treeRows) != before+1 {
		t.Fatalf("expected %d tree rows, got %d", before+1, len(treeRows))
	}
	cells := treeRows[before].Query("td")
	if len(cells) != 2 || cells[0].Text() != "John" || cells[1].Text() != "30" {
		t.Errorf("unexpected rendered cells: %d", len(cells))
	}
	f.assertParity(t)
}

func TestAddRowBackfillsZeroValues(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	row := f.eng.AddRow(model.Fields{"name": "Ann"})

	age, ok := row.Get("age")
	if !ok {
		t.Fatal("missing column was not backfilled")
	}
	if age.Type != model.TypeInteger || age.Int != 0 || age.Null {
		t.Errorf("expected Integer zero value, got %+v", age)
	}
	f.assertParity(t)
}

func TestAddRowCallerIDAndExtras(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	row := f.eng.AddRow(model.Fields{"id": "custom", "name": "Eve", "nickname": "ev"})

	if row.ID != "custom" {
		t.Errorf("caller-supplied id not honored: %q", row.ID)
	}
	// extra keys beyond the declared columns are persisted
	nick, ok := row.Get("nickname")
	if !ok || nick.Str != "ev" {
		t.Errorf("extra key lost: %+v", nick)
	}
	// "id" is identity, never a cell value
	if row.Has("id") {
		t.Error("identity leaked into the value mapping")
	}

	// caller ids do not disturb the synthetic counter
	next := f.eng.AddRow(nil)
	if next.ID != "row_2" {
		t.Errorf("expected row_2, got %q", next.ID)
	}
}

func TestAddRowDuplicateIDWarns(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")
	observer := &MockObserver{}
	f.eng.AddObserver(observer)

	f.eng.AddRow(model.Fields{"id": "p1", "name": "clone"})

	if observer.count(EventDuplicateID) != 1 {
		t.Errorf("expected duplicate_id event, got %v", observer.types())
	}
	// both rows exist; lookups resolve to the earliest
	tab := f.eng.Table()
	if len(tab.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tab.Rows))
	}
	idx, ok := tab.FindRow("p1")
	if !ok || idx != 0 {
		t.Errorf("lookup should resolve to the first match, got index %d", idx)
	}
}

func TestUpdateRow(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	ok := f.eng.UpdateRow("p1", model.Fields{"age": 35})
	if !ok {
		t.Fatal("expected update to succeed")
	}

	tab := f.eng.Table()
	age, _ := tab.Rows[0].Get("age")
	if age.Int != 35 {
		t.Errorf("expected age 35, got %+v", age)
	}
	// shallow merge: untouched keys survive
	name, _ := tab.Rows[0].Get("name")
	if name.Str != "alice" {
		t.Errorf("merge clobbered an untouched key: %+v", name)
	}
	f.assertParity(t)
}

func TestUpdateRowMiss(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")
	before, _ := f.eng.Table().ToJSON()
	treeBefore, _ := f.doc.HTML()

	ok := f.eng.UpdateRow("missing-id", model.Fields{"name": "x"})
	if ok {
		t.Fatal("expected update miss to report false")
	}

	after, _ := f.eng.Table().ToJSON()
	treeAfter, _ := f.doc.HTML()
	if string(before) != string(after) {
		t.Error("miss mutated the model")
	}
	if treeBefore != treeAfter {
		t.Error("miss mutated the tree")
	}
}

func TestDeleteRow(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	ok := f.eng.DeleteRow("p1")
	if !ok {
		t.Fatal("expected delete to succeed")
	}

	tab := f.eng.Table()
	if len(tab.Rows) != 1 {
		t.Fatalf("expected 1 row left, got %d", len(tab.Rows))
	}
	if _, found := tab.FindRow("p1"); found {
		t.Error("deleted row still present in the model")
	}
	if len(parse.DataRows(f.table, true)) != 1 {
		t.Error("deleted fragment still present in the tree")
	}
	f.assertParity(t)
}

func TestDeleteRowMiss(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	if f.eng.DeleteRow("missing-id") {
		t.Fatal("expected delete miss to report false")
	}
	if len(f.eng.Table().Rows) != 2 {
		t.Error("miss changed the row count")
	}
}

func TestSequenceInvariantAcrossOperations(t *testing.T) {
	f := newFixture(t, peopleDoc, "people")

	f.eng.AddRow(model.Fields{"name": "c", "age": 1})
	f.assertParity(t)
	f.eng.UpdateRow("row_1", model.Fields{"name": "bobby"})
	f.assertParity(t)
	f.eng.DeleteRow("p1")
	f.assertParity(t)
	f.eng.AddRow(model.Fields{"name": "d", "age": 2})
	f.assertParity(t)
	f.eng.DeleteRow("row_1")
	f.assertParity(t)
}
