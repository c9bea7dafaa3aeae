package form

import (
	"fmt"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	selectorMu    sync.RWMutex
	selectorCache = make(map[string]cascadia.Selector)
)

// CompileSelector parses a CSS selector group. Results are cached per
// selector string.
func CompileSelector(selector string) (cascadia.Selector, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}

	selectorMu.RLock()
	sel, ok := selectorCache[selector]
	selectorMu.RUnlock()
	if ok {
		return sel, nil
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSelector, selector, err)
	}
	selectorMu.Lock()
	selectorCache[selector] = sel
	selectorMu.Unlock()
	return sel, nil
}

// Closest returns e or its nearest ancestor matching selector, or nil when
// none matches or the selector does not parse.
func Closest(e *Element, selector string) *Element {
	sel, err := CompileSelector(selector)
	if err != nil || e == nil {
		return nil
	}
	_, nodes := Mirror(topmost(e))
	for n := e; n != nil; n = n.Parent {
		if !n.IsText() && sel.Match(nodes[n]) {
			return n
		}
	}
	return nil
}

// Matches reports whether e matches selector. Combinators are evaluated
// against e's ancestors and siblings.
func Matches(e *Element, selector string) bool {
	if e == nil || e.IsText() {
		return false
	}
	sel, err := CompileSelector(selector)
	if err != nil {
		return false
	}
	_, nodes := Mirror(topmost(e))
	return sel.Match(nodes[e])
}

// Mirror converts the tree rooted at root into x/net/html nodes and returns
// the root node with the element to node mapping.
func Mirror(root *Element) (*html.Node, map[*Element]*html.Node) {
	nodes := make(map[*Element]*html.Node)
	if root == nil {
		return nil, nodes
	}
	return mirror(root, nodes), nodes
}

func mirror(e *Element, nodes map[*Element]*html.Node) *html.Node {
	var n *html.Node
	if e.IsText() {
		n = &html.Node{Type: html.TextNode, Data: e.Text}
	} else {
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     e.Tag,
			DataAtom: atom.Lookup([]byte(e.Tag)),
		}
		for _, a := range e.Attrs {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
	}
	nodes[e] = n
	for _, child := range e.Children {
		n.AppendChild(mirror(child, nodes))
	}
	return n
}

func topmost(e *Element) *Element {
	for e.Parent != nil {
		e = e.Parent
	}
	return e
}
