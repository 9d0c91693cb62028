package parser

import (
	"testing"

	"github.com/shapestone/shape-pipelines/pkg/syntax"
)

// TestPlainScalar verifies plain scalar extents under the different flow
// contexts.
func TestPlainScalar(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantScalars  []string
		wantMessages []string
	}{
		{
			name:        "simple word",
			input:       "foo",
			wantScalars: []string{"foo"},
		},
		{
			name:        "colon glued to following character",
			input:       "a:b",
			wantScalars: []string{"a:b"},
		},
		{
			name:         "colon before space ends the scalar",
			input:        "a: b",
			wantScalars:  []string{"a"},
			wantMessages: []string{"expected end of document"},
		},
		{
			name:        "hash preceded by non-space stays in the scalar",
			input:       "a#b",
			wantScalars: []string{"a#b"},
		},
		{
			name:        "hash after space starts a comment",
			input:       "a #b",
			wantScalars: []string{"a"},
		},
		{
			name:        "flow indicators are safe outside flow collections",
			input:       "a,b",
			wantScalars: []string{"a,b"},
		},
		{
			name:        "flow indicators split scalars inside a sequence",
			input:       "[a,b]",
			wantScalars: []string{"a", "b"},
		},
		{
			name:        "leading dash before safe character",
			input:       "-a",
			wantScalars: []string{"-a"},
		},
		{
			name:        "leading colon before safe character",
			input:       ":a",
			wantScalars: []string{":a"},
		},
		{
			name:         "lone indicator is not a scalar",
			input:        "-",
			wantMessages: []string{"invalid flow content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)
			assertScalars(t, tree, tt.wantScalars)
		})
	}
}

// TestFlowSequence verifies flow sequences, including separators spanning
// lines and trailing commas.
func TestFlowSequence(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantScalars  []string
		wantMessages []string
	}{
		{
			name:  "empty",
			input: "[]",
		},
		{
			name:        "two entries",
			input:       "[a, b]",
			wantScalars: []string{"a", "b"},
		},
		{
			name:        "trailing comma",
			input:       "[a, b,]",
			wantScalars: []string{"a", "b"},
		},
		{
			name:        "nested",
			input:       "[[a], [b]]",
			wantScalars: []string{"a", "b"},
		},
		{
			name:        "entries across lines",
			input:       "[\n  a,\n  b\n]",
			wantScalars: []string{"a", "b"},
		},
		{
			name:         "unterminated",
			input:        "[a",
			wantScalars:  []string{"a"},
			wantMessages: []string{"expected ']'"},
		},
		{
			name:         "missing comma between entries",
			input:        "[a b]",
			wantScalars:  []string{"a"},
			wantMessages: []string{"expected ']'", "expected end of document"},
		},
		{
			name:         "bad entry recovers at the closing bracket",
			input:        "[@]",
			wantMessages: []string{"invalid flow content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)
			assertScalars(t, tree, tt.wantScalars)

			if tree.Root().FirstDescendant(syntax.KindSequenceStart) == nil {
				t.Errorf("no SequenceStart token in:\n%s", tree)
			}
		})
	}
}

// TestFlowMapping verifies flow mappings: implicit and explicit keys,
// omitted values, and recovery.
func TestFlowMapping(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantPairs    int
		wantMessages []string
	}{
		{
			name:  "empty",
			input: "{}",
		},
		{
			name:      "single pair",
			input:     "{a: b}",
			wantPairs: 1,
		},
		{
			name:      "two pairs",
			input:     "{a: b, c: d}",
			wantPairs: 2,
		},
		{
			name:      "key only",
			input:     "{a}",
			wantPairs: 1,
		},
		{
			name:      "key and colon without value",
			input:     "{a:}",
			wantPairs: 1,
		},
		{
			name:      "explicit key",
			input:     "{? a : b}",
			wantPairs: 1,
		},
		{
			name:      "pairs across lines",
			input:     "{\n  a: b,\n  c: d\n}",
			wantPairs: 2,
		},
		{
			name:         "unterminated",
			input:        "{a: b",
			wantPairs:    1,
			wantMessages: []string{"expected '}'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)

			pairs := tree.Root().Descendants(syntax.KindFlowPair)
			if len(pairs) != tt.wantPairs {
				t.Errorf("got %d FlowPair nodes, want %d in:\n%s", len(pairs), tt.wantPairs, tree)
			}
		})
	}
}

// TestFlowPairInSequence verifies that "key: value" inside a sequence is
// parsed as a single-pair entry.
func TestFlowPairInSequence(t *testing.T) {
	for _, input := range []string{"[a: b]", "[? a : b]"} {
		t.Run(input, func(t *testing.T) {
			tree, diags := Parse(input)
			assertLossless(t, tree, input)
			assertMessages(t, diags, nil)

			seq := tree.Root().FirstDescendant(syntax.KindFlowSequence)
			if seq == nil {
				t.Fatalf("no FlowSequence node in:\n%s", tree)
			}
			if seq.FirstDescendant(syntax.KindFlowPair) == nil {
				t.Errorf("no FlowPair under the sequence in:\n%s", tree)
			}
			if tree.Root().FirstDescendant(syntax.KindMappingValueToken) == nil {
				t.Errorf("no MappingValueToken in:\n%s", tree)
			}
		})
	}
}

// TestSingleQuoted verifies single-quoted scalars and the '' escape.
func TestSingleQuoted(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantText     []string
		wantEscapes  int
		wantMessages []string
	}{
		{
			name:     "simple",
			input:    "'hello'",
			wantText: []string{"hello"},
		},
		{
			name:  "empty",
			input: "''",
		},
		{
			name:        "quote escape",
			input:       "'it''s'",
			wantText:    []string{"it", "s"},
			wantEscapes: 1,
		},
		{
			name:     "spans lines outside key context",
			input:    "'a\nb'",
			wantText: []string{"a", "b"},
		},
		{
			name:         "unterminated",
			input:        "'abc",
			wantText:     []string{"abc"},
			wantMessages: []string{"unterminated single-quoted scalar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)

			var text []string
			for _, tok := range tree.Root().Descendants(syntax.KindStringText) {
				text = append(text, tok.Text())
			}
			if !equalStrings(text, tt.wantText) {
				t.Errorf("string text = %q, want %q", text, tt.wantText)
			}
			if got := len(tree.Root().Descendants(syntax.KindEscapeSequence)); got != tt.wantEscapes {
				t.Errorf("got %d escapes, want %d", got, tt.wantEscapes)
			}
		})
	}
}

// TestDoubleQuoted verifies double-quoted scalars and backslash escapes.
func TestDoubleQuoted(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantText     []string
		wantEscapes  []string
		wantMessages []string
	}{
		{
			name:     "simple",
			input:    `"hello"`,
			wantText: []string{"hello"},
		},
		{
			name:        "single character escape",
			input:       `"a\tb"`,
			wantText:    []string{"a", "b"},
			wantEscapes: []string{`\t`},
		},
		{
			name:        "hex escapes around an unescaped character",
			input:       `"\x41é\U0001F600"`,
			wantText:    []string{"é"},
			wantEscapes: []string{`\x41`, `\U0001F600`},
		},
		{
			name:        "escaped quote and backslash",
			input:       `"a\"b\\c"`,
			wantText:    []string{"a", "b", "c"},
			wantEscapes: []string{`\"`, `\\`},
		},
		{
			name:        "escaped line break",
			input:       "\"a\\\nb\"",
			wantText:    []string{"a", "b"},
			wantEscapes: []string{"\\\n"},
		},
		{
			name:         "invalid escape keeps the scalar",
			input:        `"a\qb"`,
			wantText:     []string{"a", "b"},
			wantMessages: []string{"invalid escape sequence"},
		},
		{
			name:         "short hex escape",
			input:        `"\u12"`,
			wantMessages: []string{"invalid escape sequence"},
		},
		{
			name:         "unterminated",
			input:        `"abc`,
			wantText:     []string{"abc"},
			wantMessages: []string{"unterminated double-quoted scalar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)

			var text []string
			for _, tok := range tree.Root().Descendants(syntax.KindStringText) {
				text = append(text, tok.Text())
			}
			if !equalStrings(text, tt.wantText) {
				t.Errorf("string text = %q, want %q", text, tt.wantText)
			}
			var escapes []string
			for _, tok := range tree.Root().Descendants(syntax.KindEscapeSequence) {
				escapes = append(escapes, tok.Text())
			}
			if !equalStrings(escapes, tt.wantEscapes) {
				t.Errorf("escapes = %q, want %q", escapes, tt.wantEscapes)
			}
		})
	}
}

// TestPlainScalarContexts verifies the plain-safe character set per context
// by invoking the node production directly: key contexts admit flow
// indicators, flow contexts do not.
func TestPlainScalarContexts(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"block key keeps flow indicators", BlockKey, "a,b"},
		{"flow in stops at flow indicators", FlowIn, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("a,b")
			p.flowNode(0, tt.ctx)
			tree, diags := p.Finish()

			assertMessages(t, diags, nil)
			assertScalars(t, tree, []string{tt.want})
		})
	}
}

// TestQuotedKeyOnOneLine verifies that a quoted implicit key must not span
// lines.
func TestQuotedKeyOnOneLine(t *testing.T) {
	input := "{'a\nb': c}"
	tree, diags := Parse(input)
	assertLossless(t, tree, input)

	if len(diags) == 0 || diags[0].Message != "single-quoted scalar must not span lines" {
		t.Errorf("diagnostics = %v, want the span-lines error first", diags)
	}
}

// TestSequencePairKeyOnOneLine verifies that the implicit key of a pair
// inside a sequence is confined to one line, while the same scalar standing
// alone as a sequence entry may span lines.
func TestSequencePairKeyOnOneLine(t *testing.T) {
	t.Run("multi-line key of a pair", func(t *testing.T) {
		input := "['a\nb': c]"
		tree, diags := Parse(input)
		assertLossless(t, tree, input)
		assertMessages(t, diags, []string{"implicit key must not span lines"})

		if tree.Root().FirstDescendant(syntax.KindFlowPair) == nil {
			t.Errorf("no FlowPair in:\n%s", tree)
		}
	})

	t.Run("multi-line entry without a colon", func(t *testing.T) {
		input := "['a\nb']"
		tree, diags := Parse(input)
		assertLossless(t, tree, input)
		assertMessages(t, diags, nil)
	})
}

// TestProperties verifies tags, anchors and aliases attached to flow nodes.
func TestProperties(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantKinds    []syntax.SyntaxKind
		wantMessages []string
	}{
		{
			name:      "alias",
			input:     "*anchor",
			wantKinds: []syntax.SyntaxKind{syntax.KindAliasNode, syntax.KindAnchorName},
		},
		{
			name:      "anchor before content",
			input:     "&a b",
			wantKinds: []syntax.SyntaxKind{syntax.KindAnchorProperty, syntax.KindPlainScalar},
		},
		{
			name:      "secondary tag",
			input:     "!!str value",
			wantKinds: []syntax.SyntaxKind{syntax.KindSecondaryTagHandle, syntax.KindTagSuffix},
		},
		{
			name:      "named tag handle",
			input:     "!e!suffix x",
			wantKinds: []syntax.SyntaxKind{syntax.KindNamedTagHandle, syntax.KindTagSuffix},
		},
		{
			name:      "primary tag shorthand",
			input:     "!local x",
			wantKinds: []syntax.SyntaxKind{syntax.KindPrimaryTagHandle, syntax.KindTagSuffix},
		},
		{
			name:      "non-specific tag",
			input:     "! x",
			wantKinds: []syntax.SyntaxKind{syntax.KindNonSpecificTag},
		},
		{
			name:  "verbatim tag",
			input: "!<tag:example.com,2026:x> y",
			wantKinds: []syntax.SyntaxKind{
				syntax.KindVerbatimTagStart, syntax.KindVerbatimTag, syntax.KindVerbatimTagEnd,
			},
		},
		{
			name:      "anchor then tag",
			input:     "&a !t v",
			wantKinds: []syntax.SyntaxKind{syntax.KindAnchorProperty, syntax.KindTagProperty},
		},
		{
			name:      "aliases inside a sequence",
			input:     "[*a, *b]",
			wantKinds: []syntax.SyntaxKind{syntax.KindAliasNode},
		},
		{
			name:         "anchor without name",
			input:        "&",
			wantMessages: []string{"invalid anchor name character", "invalid flow content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, diags := Parse(tt.input)
			assertLossless(t, tree, tt.input)
			assertMessages(t, diags, tt.wantMessages)

			for _, kind := range tt.wantKinds {
				if tree.Root().FirstDescendant(kind) == nil {
					t.Errorf("no %s in:\n%s", kind, tree)
				}
			}
		})
	}
}

// TestNestingDepth verifies the depth limit reports instead of recursing
// without bound.
func TestNestingDepth(t *testing.T) {
	t.Run("within the limit", func(t *testing.T) {
		tree, diags := Parse("[[x]]")
		assertLossless(t, tree, "[[x]]")
		assertMessages(t, diags, nil)
	})

	t.Run("past the limit", func(t *testing.T) {
		input := "[[x]]"
		tree, diags := Parse(input, WithMaxDepth(2))
		assertLossless(t, tree, input)
		assertMessages(t, diags, []string{"too deeply nested"})
	})
}

// assertScalars fails the test unless the tree's plain scalars are exactly
// want, in order.
func assertScalars(t *testing.T, tree *syntax.Tree, want []string) {
	t.Helper()
	var got []string
	for _, tok := range tree.Root().Descendants(syntax.KindPlainScalar) {
		got = append(got, tok.Text())
	}
	if !equalStrings(got, want) {
		t.Errorf("plain scalars = %q, want %q\n%s", got, want, tree)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
