package jsonedit

import "strconv"

// Kind discriminates the JSON value variants a Node can hold.
type Kind int

const (
	NullType Kind = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (k Kind) String() string {
	switch k {
	case NullType:
		return "Null"
	case BoolType:
		return "Bool"
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case ArrayType:
		return "Array"
	case ObjectType:
		return "Object"
	}
	return "<unknown kind>"
}

// IsLeaf reports whether the kind is a scalar rather than a container.
func (k Kind) IsLeaf() bool {
	return k != ArrayType && k != ObjectType
}

// Node is one decoded JSON value. Object members live in the parallel
// Fields/Values slices so that key order survives a decode/encode round
// trip; arrays use Values alone. Number keeps the exact decimal text as
// written, so re-serializing never reformats a number.
type Node struct {
	Kind   Kind
	Bool   bool
	Number string
	Str    string
	Fields []string
	Values []*Node
}

// Field returns the value stored under key, or nil when absent or when n is
// not an object.
func (n *Node) Field(key string) *Node {
	if n == nil || n.Kind != ObjectType {
		return nil
	}
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i]
		}
	}
	return nil
}

// SetField overwrites the value under key, appending a new member when the
// key is absent.
func (n *Node) SetField(key string, v *Node) {
	if n == nil || n.Kind != ObjectType {
		return
	}
	for i, f := range n.Fields {
		if f == key {
			n.Values[i] = v
			return
		}
	}
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, v)
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Kind: n.Kind, Bool: n.Bool, Number: n.Number, Str: n.Str}
	if n.Fields != nil {
		cp.Fields = append([]string(nil), n.Fields...)
	}
	for _, v := range n.Values {
		cp.Values = append(cp.Values, v.Clone())
	}
	return cp
}

// Text renders the node the way a flat field list displays it: scalars in
// their bare string form (unquoted), containers as JSON.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(n.Bool)
	case NumberType:
		return n.Number
	case StringType:
		return n.Str
	default:
		return n.JSON()
	}
}
