package syntax

import (
	"encoding/json"
	"strings"
	"testing"
)

// commentTree builds a small tree used by the navigation tests:
//
//	Document
//	  CommentText
//	    CommentToken "#"
//	    CommentBody " hi"
//	  LineBreak "\n"
func commentTree() *Tree {
	b := NewBuilder()
	b.StartNode(KindDocument)
	b.StartNode(KindCommentText)
	b.Token(KindCommentToken, "#")
	b.Token(KindCommentBody, " hi")
	b.FinishNode()
	b.Token(KindLineBreak, "\n")
	b.FinishNode()
	return b.Finish()
}

// TestTreeText verifies lossless text reconstruction.
func TestTreeText(t *testing.T) {
	tree := commentTree()
	if got, want := tree.Text(), "# hi\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	comment := tree.Root().Children[0]
	if got, want := comment.Text(), "# hi"; got != want {
		t.Errorf("comment Text() = %q, want %q", got, want)
	}
}

// TestTreeNavigation verifies the child and descendant accessors.
func TestTreeNavigation(t *testing.T) {
	root := commentTree().Root()

	if got := root.FirstChildOfKind(KindLineBreak); got == nil || got.Text() != "\n" {
		t.Errorf("FirstChildOfKind(LineBreak) = %v, want the line break token", got)
	}
	if got := root.FirstChildOfKind(KindCommentBody); got != nil {
		t.Errorf("FirstChildOfKind(CommentBody) = %v, want nil (not a direct child)", got)
	}
	if got := root.FirstDescendant(KindCommentBody); got == nil || got.Text() != " hi" {
		t.Errorf("FirstDescendant(CommentBody) = %v, want the body token", got)
	}
	if got := len(root.ChildrenOfKind(KindCommentText)); got != 1 {
		t.Errorf("ChildrenOfKind(CommentText) returned %d nodes, want 1", got)
	}
	if got := len(root.Descendants(KindCommentText)); got != 1 {
		t.Errorf("Descendants(CommentText) returned %d nodes, want 1", got)
	}

	tokens := root.Tokens()
	if len(tokens) != 3 {
		t.Fatalf("Tokens() returned %d tokens, want 3", len(tokens))
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text())
	}
	if got, want := sb.String(), "# hi\n"; got != want {
		t.Errorf("token concatenation = %q, want %q", got, want)
	}
}

// TestTreeString verifies the debug dump names kinds and quotes token text.
func TestTreeString(t *testing.T) {
	dump := commentTree().String()
	for _, want := range []string{"Document", "CommentText", `CommentBody [1..4) " hi"`, `LineBreak [4..5) "\n"`} {
		if !strings.Contains(dump, want) {
			t.Errorf("String() missing %q in:\n%s", want, dump)
		}
	}
}

// TestTreeMarshalJSON verifies the serialized shape: kind names, spans, text
// on tokens and children on interior nodes.
func TestTreeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(commentTree())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var root struct {
		Kind     string `json:"kind"`
		Span     Span   `json:"span"`
		Children []struct {
			Kind string  `json:"kind"`
			Text *string `json:"text"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if root.Kind != "Document" {
		t.Errorf("kind = %q, want Document", root.Kind)
	}
	if root.Span.End != 5 {
		t.Errorf("span = %v, want end 5", root.Span)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	if root.Children[0].Text != nil {
		t.Error("interior node serialized with a text field")
	}
	if root.Children[1].Text == nil || *root.Children[1].Text != "\n" {
		t.Error("token serialized without its text")
	}
}

// TestSeverityJSON verifies severity names round-trip through JSON.
func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(SeverityError)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"error"` {
		t.Errorf("Marshal(SeverityError) = %s, want \"error\"", data)
	}

	var s Severity
	if err := json.Unmarshal([]byte(`"warning"`), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s != SeverityWarning {
		t.Errorf("Unmarshal(\"warning\") = %v, want SeverityWarning", s)
	}

	if err := json.Unmarshal([]byte(`"fatal"`), &s); err == nil {
		t.Error("Unmarshal(\"fatal\") succeeded, want error")
	}
}

// TestDiagnosticString verifies the human-readable rendering.
func TestDiagnosticString(t *testing.T) {
	d := NewDiagnostic(Span{Start: 2, End: 5}, SeverityError, "expected '%'")
	if got, want := d.String(), "[2..5) error: expected '%'"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestSpan verifies the span helpers.
func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 7}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if s.Empty() {
		t.Error("Empty() = true for a non-empty span")
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("Empty() = false for an empty span")
	}
	if got, want := s.String(), "[3..7)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
