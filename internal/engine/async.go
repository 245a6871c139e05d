package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/leengari/tabledom/internal/model"
)

// Decision functions gate async mutations. Each is invoked exactly once
// per call, after lookup and candidate construction but before any
// mutation of the model or the tree. Returning ok=false (or an error,
// or observing a cancelled context) vetoes the operation and leaves
// both representations untouched. There is no rollback step because
// nothing is mutated before the decision resolves.

// AddDecision inspects a fully built candidate row. On approval it may
// return replacement field values, which are merged over the candidate
// before commit.
type AddDecision func(ctx context.Context, candidate model.TableRow) (model.Fields, bool, error)

// UpdateDecision inspects the current row and the proposed updates. On
// approval its returned fields REPLACE the proposed update set; they
// are not merged with it.
type UpdateDecision func(ctx context.Context, current model.TableRow, updates model.Fields) (model.Fields, bool, error)

// DeleteDecision inspects the row about to be removed.
type DeleteDecision func(ctx context.Context, current model.TableRow) (bool, error)

// AddRowAsync builds the candidate exactly like AddRow, then suspends
// on the decision function before committing. A veto returns an empty
// row and false. A nil decision commits immediately.
func (e *Engine) AddRowAsync(ctx context.Context, fields model.Fields, decide AddDecision) (model.TableRow, bool, error) {
	opID := uuid.New().String()
	candidate := e.buildCandidate(fields, opID)

	if decide != nil {
		e.notify(Event{Type: EventDecisionStart, OpID: opID, RowID: candidate.ID})
		replacement, ok, err := decide(ctx, candidate.Copy())
		e.notify(Event{Type: EventDecisionEnd, OpID: opID, RowID: candidate.ID})
		if err != nil || !ok {
			e.notify(Event{Type: EventAddCancelled, OpID: opID, RowID: candidate.ID})
			return model.TableRow{}, false, err
		}
		for _, k := range fieldKeys(replacement) {
			candidate.Set(k, model.ValueOf(replacement[k]))
		}
	}
	if err := ctx.Err(); err != nil {
		e.notify(Event{Type: EventAddCancelled, OpID: opID, RowID: candidate.ID})
		return model.TableRow{}, false, err
	}

	e.commitAdd(candidate, opID)
	return candidate.Copy(), true, nil
}

// UpdateRowAsync looks the row up (false if unknown, no suspension),
// suspends on the decision function, then merges and renders exactly
// like UpdateRow. The decision's returned fields are authoritative.
func (e *Engine) UpdateRowAsync(ctx context.Context, id string, fields model.Fields, decide UpdateDecision) (bool, error) {
	opID := uuid.New().String()

	idx, ok := e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventUpdateMiss, OpID: opID, RowID: id})
		return false, nil
	}

	if decide != nil {
		e.notify(Event{Type: EventDecisionStart, OpID: opID, RowID: id})
		replacement, approved, err := decide(ctx, e.table.Rows[idx].Copy(), fields)
		e.notify(Event{Type: EventDecisionEnd, OpID: opID, RowID: id})
		if err != nil || !approved {
			e.notify(Event{Type: EventUpdateCancelled, OpID: opID, RowID: id})
			return false, err
		}
		fields = replacement
	}
	if err := ctx.Err(); err != nil {
		e.notify(Event{Type: EventUpdateCancelled, OpID: opID, RowID: id})
		return false, err
	}

	// the row may have moved or vanished while suspended; commit
	// against the current sequence
	idx, ok = e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventUpdateMiss, OpID: opID, RowID: id})
		return false, nil
	}

	e.applyUpdate(idx, fields)
	e.notify(Event{Type: EventUpdateCommit, OpID: opID, RowID: id, Data: fieldKeys(fields)})
	return true, nil
}

// DeleteRowAsync looks the row up (false if unknown), suspends on the
// decision function, then removes like DeleteRow.
func (e *Engine) DeleteRowAsync(ctx context.Context, id string, decide DeleteDecision) (bool, error) {
	opID := uuid.New().String()

	idx, ok := e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventDeleteMiss, OpID: opID, RowID: id})
		return false, nil
	}

	if decide != nil {
		e.notify(Event{Type: EventDecisionStart, OpID: opID, RowID: id})
		approved, err := decide(ctx, e.table.Rows[idx].Copy())
		e.notify(Event{Type: EventDecisionEnd, OpID: opID, RowID: id})
		if err != nil || !approved {
			e.notify(Event{Type: EventDeleteCancelled, OpID: opID, RowID: id})
			return false, err
		}
	}
	if err := ctx.Err(); err != nil {
		e.notify(Event{Type: EventDeleteCancelled, OpID: opID, RowID: id})
		return false, err
	}

	idx, ok = e.table.FindRow(id)
	if !ok {
		e.notify(Event{Type: EventDeleteMiss, OpID: opID, RowID: id})
		return false, nil
	}

	e.commitDelete(idx)
	e.notify(Event{Type: EventDeleteCommit, OpID: opID, RowID: id})
	return true, nil
}
