package engine

import "fmt"

// Construction errors are fatal: they surface from New or Refresh and
// leave no usable engine behind. Operational misses (unknown row id,
// vetoed async operation) are ordinary boolean results, never errors.

// NotFoundError reports a locator that resolved to nothing.
type NotFoundError struct {
	Locator string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element found for locator %q", e.Locator)
}

// WrongKindError reports a locator that resolved to a node that is not
// table-shaped.
type WrongKindError struct {
	Locator string
	Tag     string // what the locator actually resolved to
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("element %q is a <%s>, not a table", e.Locator, e.Tag)
}
