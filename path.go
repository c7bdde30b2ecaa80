package jsonedit

import (
	"strconv"
	"strings"
)

// Selector is one step of a Path: an object key or an array index.
type Selector struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key builds an object-key selector.
func Key(k string) Selector { return Selector{Key: k} }

// Index builds an array-index selector.
func Index(i int) Selector { return Selector{Index: i, IsIndex: true} }

// Path locates a node inside a document, root to target. An empty Path
// denotes the document root.
type Path []Selector

// FormatPath renders p in the bracketed display form used for selection
// labels: "$" for the root, then one bracketed selector per step, with
// string keys quoted and indices bare.
func FormatPath(p Path) string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, sel := range p {
		if sel.IsIndex {
			b.WriteString("[" + strconv.Itoa(sel.Index) + "]")
		} else {
			b.WriteString("[" + quoteString(sel.Key) + "]")
		}
	}
	return b.String()
}

// Lookup walks p from n and returns the addressed node, or nil when any
// segment is missing. It never modifies the tree.
func (n *Node) Lookup(p Path) *Node {
	cur := n
	for _, sel := range p {
		if cur == nil {
			return nil
		}
		cur = cur.child(sel)
	}
	return cur
}

// child resolves one selector against a container. An index selector on an
// object looks up the decimal key; a key selector on an array is tried as an
// index. Scalars have no children.
func (n *Node) child(sel Selector) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ObjectType:
		if sel.IsIndex {
			return n.Field(strconv.Itoa(sel.Index))
		}
		return n.Field(sel.Key)
	case ArrayType:
		idx := sel.Index
		if !sel.IsIndex {
			i, err := strconv.Atoi(sel.Key)
			if err != nil {
				return nil
			}
			idx = i
		}
		if idx < 0 || idx >= len(n.Values) {
			return nil
		}
		return n.Values[idx]
	}
	return nil
}

// setChild writes v into the slot sel addresses. Writing past the end of an
// array pads the gap with nulls, matching what serializing a sparse array
// produces. Writes into scalars are dropped.
func (n *Node) setChild(sel Selector, v *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ObjectType:
		key := sel.Key
		if sel.IsIndex {
			key = strconv.Itoa(sel.Index)
		}
		n.SetField(key, v)
	case ArrayType:
		idx := sel.Index
		if !sel.IsIndex {
			i, err := strconv.Atoi(sel.Key)
			if err != nil {
				return
			}
			idx = i
		}
		if idx < 0 {
			return
		}
		for len(n.Values) <= idx {
			n.Values = append(n.Values, &Node{Kind: NullType})
		}
		n.Values[idx] = v
	}
}
