// Package jsonedit lets a caller view one node of a JSON document as
// editable flat text and splice the edited values back into the document,
// leaving content the edit did not touch intact.
//
// The package works over an explicit Node variant type with insertion-ordered
// object members, so a document keeps its key order across an edit. All
// functions are stateless: each call parses the text it is given, mutates an
// owned tree, and re-serializes. Session wires the functions to the caller's
// document store and notification collaborators.
package jsonedit

// Update merges editedText into documentText at path and returns the new
// document text, indented with two spaces. When documentText is not valid
// JSON the input is returned unchanged. An empty path replaces the whole
// document. Edited text that parses as a JSON object merges field-by-field
// into an object target, preserving nested children the edit does not name;
// any other combination replaces the target wholesale.
func Update(documentText string, path Path, editedText string) string {
	root, err := Parse(documentText)
	if err != nil {
		return documentText
	}
	edited := parseEdited(editedText)
	if len(path) == 0 {
		return edited.JSON()
	}
	parent, last := resolveParent(root, path)
	target := parent.child(last)
	value := edited
	if target != nil && target.Kind == ObjectType && edited.Kind == ObjectType {
		merged := target.Clone()
		for i, key := range edited.Fields {
			if v := edited.Values[i]; v.Kind.IsLeaf() {
				merged.SetField(key, v)
			}
		}
		value = merged
	}
	parent.setChild(last, value)
	return root.JSON()
}

// parseEdited interprets user-edited text: a JSON value when it parses as
// one, otherwise the raw text as a string scalar. Malformed JSON is not an
// error here; the fallback lets a user type a bare word to replace a value.
func parseEdited(text string) *Node {
	n, err := Parse(text)
	if err != nil {
		return &Node{Kind: StringType, Str: text}
	}
	return n
}

// resolveParent walks path from root down to the container holding the final
// selector, returning that container and the selector. A missing or scalar
// intermediate slot is replaced with a fresh container, an array when the
// following selector is an index and an object otherwise. Resolution never
// fails: a stale path grows new structure instead of erroring, which also
// means a selection that outlived a concurrent document edit is tolerated
// silently rather than reported.
func resolveParent(root *Node, path Path) (*Node, Selector) {
	cur := root
	for i := 0; i+1 < len(path); i++ {
		next := cur.child(path[i])
		if next == nil || next.Kind.IsLeaf() {
			if path[i+1].IsIndex {
				next = &Node{Kind: ArrayType}
			} else {
				next = &Node{Kind: ObjectType}
			}
			cur.setChild(path[i], next)
		}
		cur = next
	}
	return cur, path[len(path)-1]
}
