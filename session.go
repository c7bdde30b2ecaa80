package jsonedit

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// DocumentStore holds the authoritative document text. The session reads it
// at call time and never caches it between calls.
type DocumentStore interface {
	GetDocumentText() string
	SetDocumentText(string)
}

// PersistRecord is what gets handed to a PersistSink after a successful save.
type PersistRecord struct {
	Contents   string
	HasChanges bool
	SkipUpdate bool
}

// PersistSink durably records a saved document.
type PersistSink interface {
	Persist(PersistRecord)
}

// Notifier surfaces save outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// SelectedNode is what a graph-selection collaborator supplies: the node's
// flattened direct children plus its location in the document.
type SelectedNode struct {
	Fields []FieldRow
	Path   Path
}

// Session orchestrates one edit cycle over the caller's collaborators. It
// holds only the current selection path; document state stays in the store.
// Sink and Notify may be nil.
type Session struct {
	Store  DocumentStore
	Sink   PersistSink
	Notify Notifier

	path Path
}

// Select records the node's path and returns the editable text seeded from
// its flattened fields.
func (s *Session) Select(node SelectedNode) string {
	s.path = node.Path
	return Normalize(node.Fields)
}

// PathLabel returns the display form of the current selection's path.
func (s *Session) PathLabel() string {
	return FormatPath(s.path)
}

// LoadDocument reads the stored document, converting YAML to JSON when
// needed.
func (s *Session) LoadDocument() (string, error) {
	return DocumentToJSON(s.Store.GetDocumentText())
}

// Save merges editedText into the stored document at the selected path,
// re-validates the result, and commits it to the store and sink. The store
// is left untouched when the merged text does not parse.
func (s *Session) Save(editedText string) error {
	before := s.Store.GetDocumentText()
	after := Update(before, s.path, editedText)
	if _, err := Parse(after); err != nil {
		if s.Notify != nil {
			s.Notify.Error("Invalid JSON!")
		}
		return fmt.Errorf("jsonedit: merged document is not valid JSON: %w", err)
	}
	s.Store.SetDocumentText(after)
	if s.Sink != nil {
		s.Sink.Persist(PersistRecord{
			Contents:   after,
			HasChanges: !jsonpatch.Equal([]byte(before), []byte(after)),
			SkipUpdate: true,
		})
	}
	if s.Notify != nil {
		s.Notify.Success("Node updated successfully!")
	}
	return nil
}
