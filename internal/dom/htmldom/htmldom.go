// Package htmldom implements dom over golang.org/x/net/html nodes,
// using cascadia-compiled CSS selectors for queries.
package htmldom

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/leengari/tabledom/internal/dom"
)

// selector compilation is cheap but repeated constantly; cache by text
var (
	selMu    sync.RWMutex
	selCache = make(map[string]cascadia.SelectorGroup)
)

func compile(selector string) (cascadia.SelectorGroup, error) {
	selMu.RLock()
	sel, ok := selCache[selector]
	selMu.RUnlock()
	if ok {
		return sel, nil
	}

	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}

	selMu.Lock()
	selCache[selector] = sel
	selMu.Unlock()
	return sel, nil
}

// Document wraps a parsed HTML tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FindByID walks the tree for an element whose id attribute matches.
func (d *Document) FindByID(id string) dom.Node {
	if id == "" {
		return nil
	}
	found := findByID(d.root, id)
	if found == nil {
		return nil
	}
	return &node{n: found}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// node adapts one *html.Node to dom.Node.
type node struct {
	n *html.Node
}

func (x *node) Tag() string {
	return strings.ToLower(x.n.Data)
}

func (x *node) Attr(name string) (string, bool) {
	for _, a := range x.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (x *node) SetAttr(name, value string) {
	for i, a := range x.n.Attr {
		if a.Key == name {
			x.n.Attr[i].Val = value
			return
		}
	}
	x.n.Attr = append(x.n.Attr, html.Attribute{Key: name, Val: value})
}

func (x *node) Text() string {
	var sb strings.Builder
	collectText(x.n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func (x *node) InnerHTML() string {
	var buf bytes.Buffer
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on writer errors, which a buffer never has
		_ = html.Render(&buf, c)
	}
	return strings.TrimSpace(buf.String())
}

func (x *node) SetText(s string) {
	x.removeChildren()
	x.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func (x *node) SetHTML(raw string) {
	x.removeChildren()
	nodes, err := html.ParseFragment(strings.NewReader(raw), x.n)
	if err != nil {
		// strings.Reader cannot fail; fall back to text on parser refusal
		x.n.AppendChild(&html.Node{Type: html.TextNode, Data: raw})
		return
	}
	for _, c := range nodes {
		x.n.AppendChild(c)
	}
}

func (x *node) removeChildren() {
	for c := x.n.FirstChild; c != nil; {
		next := c.NextSibling
		x.n.RemoveChild(c)
		c = next
	}
}

func (x *node) Query(selector string) []dom.Node {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	matches := cascadia.QueryAll(x.n, sel)
	out := make([]dom.Node, len(matches))
	for i, m := range matches {
		out[i] = &node{n: m}
	}
	return out
}

func (x *node) Append(tag string) dom.Node {
	child := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	x.n.AppendChild(child)
	return &node{n: child}
}

func (x *node) Remove() {
	if x.n.Parent != nil {
		x.n.Parent.RemoveChild(x.n)
	}
}
