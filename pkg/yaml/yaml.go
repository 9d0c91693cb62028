// Package yaml provides lossless syntax-tree parsing for the Azure DevOps
// flavor of YAML.
//
// Unlike a value-oriented YAML library, this package never discards input:
// the result of a parse is a concrete syntax tree whose leaf tokens, read in
// order, reproduce the decoded input exactly, including whitespace, comments
// and the byte order mark. Malformed input never fails the parse; problems
// are reported as diagnostics alongside a tree that still covers the whole
// input. That makes the package suitable for editors, linters and rewriters,
// which need positions and trivia far more than they need decoded values.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call creates its own parser instance with no shared
// mutable state.
//
// # Example usage
//
//	res := yaml.Parse([]byte("%YAML 1.2 # comment\n"))
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
//	fmt.Print(res.Tree)
package yaml

import (
	"io"

	"github.com/shapestone/shape-pipelines/internal/encoding"
	"github.com/shapestone/shape-pipelines/internal/parser"
	"github.com/shapestone/shape-pipelines/pkg/syntax"
)

// Option configures a parse.
type Option = parser.Option

// WithMaxDepth overrides the maximum nesting depth accepted before the
// parser reports "too deeply nested" instead of recursing further.
func WithMaxDepth(depth int) Option {
	return parser.WithMaxDepth(depth)
}

// Result holds the outcome of one parse: the syntax tree and the
// diagnostics, in source order. The tree is never nil.
type Result struct {
	Tree        *syntax.Tree        `json:"tree"`
	Diagnostics []syntax.Diagnostic `json:"diagnostics"`
}

// Parse decodes data (detecting its Unicode encoding from a byte order mark
// or the first character) and parses it into a lossless syntax tree.
//
// Parse is total: it never returns an error. Undecodable input yields a tree
// with an empty Error root and a single diagnostic naming the encoding
// problem; malformed but decodable input yields a full tree plus one
// diagnostic per problem.
func Parse(data []byte, opts ...Option) *Result {
	text, err := encoding.Decode(data)
	if err != nil {
		b := syntax.NewBuilder()
		b.StartNode(syntax.KindError)
		b.FinishNode()
		return &Result{
			Tree: b.Finish(),
			Diagnostics: []syntax.Diagnostic{
				syntax.NewDiagnostic(syntax.Span{}, syntax.SeverityError, err.Error()),
			},
		}
	}

	tree, diagnostics := parser.Parse(text, opts...)
	return &Result{Tree: tree, Diagnostics: diagnostics}
}

// ParseReader reads r to the end and parses its contents like Parse. Read
// errors are reported the same way as encoding errors: a Result with an
// empty Error root and one diagnostic.
func ParseReader(r io.Reader, opts ...Option) *Result {
	data, err := io.ReadAll(r)
	if err != nil {
		b := syntax.NewBuilder()
		b.StartNode(syntax.KindError)
		b.FinishNode()
		return &Result{
			Tree: b.Finish(),
			Diagnostics: []syntax.Diagnostic{
				syntax.NewDiagnostic(syntax.Span{}, syntax.SeverityError, err.Error()),
			},
		}
	}
	return Parse(data, opts...)
}
