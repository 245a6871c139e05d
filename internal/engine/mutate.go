package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/leengari/tabledom/internal/model"
	"github.com/leengari/tabledom/internal/parse"
)

// AddRow builds a finalized row from the partial input and commits it:
// identity is the caller-supplied "id" field or the next synthetic one,
// every declared column missing from the input is backfilled with its
// zero value, and extra keys are kept. Always succeeds.
func (e *Engine) AddRow(fields model.Fields) model.TableRow {
	opID := uuid.New().String()
	row := e.buildCandidate(fields, opID)
	e.commitAdd(row, opID)
	return row.Copy()
}

// UpdateRow merges the partial updates into the row with the given
// identity and re-renders its fragment in place. Returns false when the
// identity is unknown; nothing is touched in that case.
func (e *Engine) UpdateRow(id string, fields model.Fields) bool {
	opID := uuid.New().String()

	idx, ok := e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventUpdateMiss, OpID: opID, RowID: id})
		return false
	}

	e.applyUpdate(idx, fields)
	e.notify(Event{Type: EventUpdateCommit, OpID: opID, RowID: id, Data: fieldKeys(fields)})
	return true
}

// DeleteRow removes the row with the given identity from the model and
// its fragment from the tree. Returns false when the identity is unknown.
func (e *Engine) DeleteRow(id string) bool {
	opID := uuid.New().String()

	idx, ok := e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventDeleteMiss, OpID: opID, RowID: id})
		return false
	}

	e.commitDelete(idx)
	e.notify(Event{Type: EventDeleteCommit, OpID: opID, RowID: id})
	return true
}

// buildCandidate assigns identity and backfills columns, but does not
// touch the model or the tree. Both Create paths share it.
func (e *Engine) buildCandidate(fields model.Fields, opID string) model.TableRow {
	id := callerID(fields)
	if id == "" {
		id = parse.SyntheticRowID(e.nextRowID)
		e.nextRowID++
	} else if _, exists := e.table.FindRow(id); exists {
		// allow-and-warn policy: the duplicate is committed as-is and
		// lookups keep resolving to the earliest row with that identity
		e.logger.Warn("duplicate row identity on create", "row_id", id)
		e.notify(Event{Type: EventDuplicateID, OpID: opID, RowID: id})
	}

	row := model.NewRow(id)
	for _, h := range e.table.Headers {
		if v, ok := fields[h.Name]; ok {
			row.Set(h.Name, model.ValueOf(v))
		} else {
			row.Set(h.Name, model.ZeroOf(h.Type))
		}
	}
	// extra caller keys beyond the declared columns are kept
	for _, k := range extraKeys(fields, e.table) {
		row.Set(k, model.ValueOf(fields[k]))
	}
	return row
}

// commitAdd is the tail of every create: append, render, notify.
func (e *Engine) commitAdd(row model.TableRow, opID string) {
	e.table.Rows = append(e.table.Rows, row)
	e.renderer.Insert(row, e.table.Headers)
	e.notify(Event{Type: EventAddCommit, OpID: opID, RowID: row.ID})
}

// applyUpdate is the tail of every update: shallow merge, no backfill,
// then rewrite the fragment at the row's position.
func (e *Engine) applyUpdate(idx int, fields model.Fields) {
	row := &e.table.Rows[idx]
	for _, k := range fieldKeys(fields) {
		if k == "id" {
			continue // identity is immutable
		}
		row.Set(k, model.ValueOf(fields[k]))
	}
	e.renderer.Overwrite(*row, e.table.Headers, idx)
}

// commitDelete splices the row out and removes its fragment.
func (e *Engine) commitDelete(idx int) {
	e.renderer.RemoveAt(idx)
	e.table.Rows = append(e.table.Rows[:idx], e.table.Rows[idx+1:]...)
}

// callerID extracts an explicit identity from the partial input.
func callerID(fields model.Fields) string {
	if v, ok := fields["id"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// fieldKeys returns the input's keys sorted, for deterministic apply order.
func fieldKeys(fields model.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extraKeys returns the sorted input keys that match no declared column
// and are not the identity field.
func extraKeys(fields model.Fields, t *model.Table) []string {
	var keys []string
	for k := range fields {
		if k == "id" {
			continue
		}
		if _, declared := t.Header(k); declared {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
