package jsonedit

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// JSON returns the document text for the subtree rooted at n, indented with
// two spaces.
func (n *Node) JSON() string {
	var buf bytes.Buffer
	n.encode(&buf, "")
	return buf.String()
}

func (n *Node) encode(buf *bytes.Buffer, indent string) {
	if n == nil {
		buf.WriteString("null")
		return
	}
	switch n.Kind {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case NumberType:
		buf.WriteString(n.Number)
	case StringType:
		buf.WriteString(quoteString(n.Str))
	case ArrayType:
		if len(n.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		inner := indent + "  "
		buf.WriteString("[\n")
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString(inner)
			v.encode(buf, inner)
		}
		buf.WriteString("\n" + indent + "]")
	case ObjectType:
		if len(n.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		inner := indent + "  "
		buf.WriteString("{\n")
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString(inner + quoteString(f) + ": ")
			n.Values[i].encode(buf, inner)
		}
		buf.WriteString("\n" + indent + "}")
	}
}

func quoteString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
