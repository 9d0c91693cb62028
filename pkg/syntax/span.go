package syntax

import "fmt"

// Span is a half-open byte-offset range [Start, End) into the decoded source
// text. Spans identify tokens, nodes and diagnostics; line/column mapping is
// the caller's concern.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}
