package jsonedit

// FieldRow is one flattened direct child of a selected node. Container
// children appear as marker rows: Kind records Array or Object and Value is
// nil, the nested content staying in the document itself. A scalar-valued
// node is a single row with no key.
type FieldRow struct {
	Key   string
	Value *Node
	Kind  Kind
}

// Normalize converts a node's flattened rows into editable text: "{}" for an
// empty node, the bare scalar for a single keyless row, and otherwise an
// indented JSON object holding just the scalar rows in their original order.
// Container marker rows and rows without a key are left out.
func Normalize(rows []FieldRow) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && rows[0].Key == "" && rows[0].Kind.IsLeaf() && rows[0].Value != nil {
		return rows[0].Value.Text()
	}
	obj := &Node{Kind: ObjectType}
	for _, row := range rows {
		if row.Key == "" || !row.Kind.IsLeaf() {
			continue
		}
		obj.SetField(row.Key, row.Value)
	}
	return obj.JSON()
}

// FieldsAt flattens the direct children of the node at path into rows, the
// shape Normalize consumes. A scalar node becomes a single keyless row;
// array elements become keyless rows. Returns nil when path points nowhere.
func FieldsAt(root *Node, path Path) []FieldRow {
	n := root.Lookup(path)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ObjectType:
		rows := make([]FieldRow, 0, len(n.Fields))
		for i, f := range n.Fields {
			v := n.Values[i]
			row := FieldRow{Key: f, Kind: v.Kind}
			if v.Kind.IsLeaf() {
				row.Value = v.Clone()
			}
			rows = append(rows, row)
		}
		return rows
	case ArrayType:
		rows := make([]FieldRow, 0, len(n.Values))
		for _, v := range n.Values {
			row := FieldRow{Kind: v.Kind}
			if v.Kind.IsLeaf() {
				row.Value = v.Clone()
			}
			rows = append(rows, row)
		}
		return rows
	default:
		return []FieldRow{{Value: n.Clone(), Kind: n.Kind}}
	}
}
