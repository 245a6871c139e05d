// Package dom abstracts the external markup tree the engine reads and
// mutates. The engine only depends on this capability set, so it can be
// driven by any tree source with no rendering surface attached.
package dom

// Node is a single element of the tree.
type Node interface {
	// Tag returns the element's tag name, lower-cased.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// SetAttr writes the named attribute.
	SetAttr(name, value string)

	// Text returns the trimmed concatenated text content.
	Text() string

	// InnerHTML returns the trimmed serialized markup of the children.
	InnerHTML() string

	// SetText replaces the children with a single text node (escaped on
	// serialization).
	SetText(s string)

	// SetHTML replaces the children with parsed markup (structured
	// content, not escaped).
	SetHTML(raw string)

	// Query returns the descendants matching a CSS selector, in
	// document order.
	Query(selector string) []Node

	// Append creates a new empty element with the given tag, appends it
	// as the last child and returns it.
	Append(tag string) Node

	// Remove detaches the node from its parent.
	Remove()
}

// Document is the root handle of a tree.
type Document interface {
	// FindByID resolves an element by its id attribute, nil if absent.
	FindByID(id string) Node

	// HTML serializes the whole tree.
	HTML() (string, error)
}
