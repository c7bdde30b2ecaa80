package jsonedit

import (
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
)

func TestUpdatePreservesUntouchedNestedFields(t *testing.T) {
	doc := `{"x": {"a": 1, "nested": {"z": 9}}}`

	got := Update(doc, Path{Key("x")}, `{"a": 2}`)

	root := mustParse(t, got)
	if v := root.Lookup(Path{Key("x"), Key("a")}); v == nil || v.Number != "2" {
		t.Fatalf("x.a = %v, want 2; got:\n%s", v, got)
	}
	if v := root.Lookup(Path{Key("x"), Key("nested"), Key("z")}); v == nil || v.Number != "9" {
		t.Fatalf("x.nested.z = %v, want 9; got:\n%s", v, got)
	}

	// Cross-check against an RFC-6902 patch doing the same edit.
	patch := mustDecodePatch(t, `[{"op": "replace", "path": "/x/a", "value": 2}]`)
	want, err := patch.Apply([]byte(doc))
	if err != nil {
		t.Fatalf("patch apply error: %v", err)
	}
	if !jsonpatch.Equal(want, []byte(got)) {
		t.Fatalf("merge result differs from patched document:\n%s", diffStrings(string(want), got))
	}
}

func TestUpdateReplacesWholeDocumentAtRootPath(t *testing.T) {
	got := Update(`{"a": 1}`, nil, `{"b": 2}`)
	assertDocEqual(t, `{"b": 2}`, got)
}

func TestUpdateCreatesMissingContainers(t *testing.T) {
	got := Update(`{}`, Path{Key("p"), Key("q")}, `{"v": 1}`)
	assertDocEqual(t, `{"p": {"q": {"v": 1}}}`, got)
}

func TestUpdateCreatesArraysForIndexSelectors(t *testing.T) {
	got := Update(`{}`, Path{Key("items"), Index(1)}, `{"v": 1}`)
	assertDocEqual(t, `{"items": [null, {"v": 1}]}`, got)
}

func TestUpdateMalformedDocumentReturnsInputUnchanged(t *testing.T) {
	in := `{"a": 1,,,`
	if got := Update(in, Path{Key("a")}, `{"b": 2}`); got != in {
		t.Fatalf("expected malformed document returned unchanged, got:\n%s", got)
	}
}

func TestUpdateMalformedEditBecomesRawString(t *testing.T) {
	got := Update(`{"a": {"b": 1}}`, Path{Key("a")}, `not: valid json`)
	root := mustParse(t, got)
	v := root.Lookup(Path{Key("a")})
	if v == nil || v.Kind != StringType || v.Str != "not: valid json" {
		t.Fatalf("expected a to become the raw edited string, got:\n%s", got)
	}
}

func TestUpdateScalarEditReplacesTarget(t *testing.T) {
	// "42" parses as JSON, so the target is replaced by a number, not merged.
	got := Update(`{"a": {"b": 1}}`, Path{Key("a")}, `42`)
	assertDocEqual(t, `{"a": 42}`, got)
}

func TestUpdateScalarTargetReplacedWholesale(t *testing.T) {
	got := Update(`{"a": 5}`, Path{Key("a")}, `{"v": 1}`)
	assertDocEqual(t, `{"a": {"v": 1}}`, got)
}

func TestUpdateArrayTargetReplacedWholesale(t *testing.T) {
	got := Update(`{"a": [1, 2, 3]}`, Path{Key("a")}, `{"v": 1}`)
	assertDocEqual(t, `{"a": {"v": 1}}`, got)
}

func TestUpdateSkipsContainerValuesInEdit(t *testing.T) {
	got := Update(`{"x": {"a": 1}}`, Path{Key("x")}, `{"a": 2, "obj": {"k": 1}}`)
	root := mustParse(t, got)
	if v := root.Lookup(Path{Key("x"), Key("a")}); v == nil || v.Number != "2" {
		t.Fatalf("x.a = %v, want 2; got:\n%s", v, got)
	}
	if v := root.Lookup(Path{Key("x"), Key("obj")}); v != nil {
		t.Fatalf("container value from edit was written into an object target; got:\n%s", got)
	}
}

func TestUpdateWritesIntoArrayElement(t *testing.T) {
	doc := `{"items": [{"id": 1, "tags": ["a"]}, {"id": 2}]}`
	got := Update(doc, Path{Key("items"), Index(0)}, `{"id": 7}`)
	root := mustParse(t, got)
	if v := root.Lookup(Path{Key("items"), Index(0), Key("id")}); v == nil || v.Number != "7" {
		t.Fatalf("items[0].id = %v, want 7; got:\n%s", v, got)
	}
	if v := root.Lookup(Path{Key("items"), Index(0), Key("tags"), Index(0)}); v == nil || v.Str != "a" {
		t.Fatalf("items[0].tags lost in merge; got:\n%s", got)
	}
	if v := root.Lookup(Path{Key("items"), Index(1), Key("id")}); v == nil || v.Number != "2" {
		t.Fatalf("sibling element disturbed; got:\n%s", got)
	}
}

func TestUpdateRoundTripIdempotence(t *testing.T) {
	doc := `{"x": {"a": 1, "b": "two", "nested": {"z": 9}}, "y": [1, 2]}`
	path := Path{Key("x")}

	before := mustParse(t, doc)
	text := Normalize(FieldsAt(before, path))
	after := mustParse(t, Update(doc, path, text))

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("re-merging unchanged text altered the document (-before +after):\n%s", diff)
	}
}

func TestUpdatePreservesDocumentKeyOrder(t *testing.T) {
	got := Update(`{"z": 1, "m": {"k": 1}, "a": 3}`, Path{Key("m")}, `{"k": 2}`)
	root := mustParse(t, got)
	want := []string{"z", "m", "a"}
	for i, f := range want {
		if root.Fields[i] != f {
			t.Fatalf("key order changed: got %v, want %v", root.Fields, want)
		}
	}
}

// Helpers

func mustParse(t *testing.T, text string) *Node {
	t.Helper()
	n, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse error: %v\n%s", err, text)
	}
	return n
}

func mustDecodePatch(t *testing.T, s string) jsonpatch.Patch {
	t.Helper()
	patch, err := jsonpatch.DecodePatch([]byte(s))
	if err != nil {
		t.Fatalf("jsonpatch decode error: %v", err)
	}
	return patch
}

func assertDocEqual(t *testing.T, want, got string) {
	t.Helper()
	if !cmp.Equal(mustParse(t, want), mustParse(t, got)) {
		t.Fatalf("documents differ:\n%s", diffStrings(want, got))
	}
}

func diffStrings(want, got string) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	return diff
}
