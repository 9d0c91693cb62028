package syntax

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Node is a single element of the syntax tree: either a leaf token carrying
// an exact source substring, or an interior node with an ordered list of
// children. Nodes are immutable once the tree is built.
type Node struct {
	Kind     SyntaxKind
	Span     Span
	Children []*Node

	token bool
	text  string
}

// IsToken reports whether the node is a leaf token.
func (n *Node) IsToken() bool {
	return n.token
}

// Text returns the exact source text covered by the node: the token's own
// text for leaves, the concatenation of all leaf texts for interior nodes.
func (n *Node) Text() string {
	if n.token {
		return n.text
	}
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.token {
		sb.WriteString(n.text)
		return
	}
	for _, child := range n.Children {
		child.writeText(sb)
	}
}

// FirstChildOfKind returns the first direct child with the given kind, or nil.
func (n *Node) FirstChildOfKind(kind SyntaxKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children with the given kind.
func (n *Node) ChildrenOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FirstDescendant returns the first node of the given kind in depth-first
// order, including n itself, or nil.
func (n *Node) FirstDescendant(kind SyntaxKind) *Node {
	if n.Kind == kind {
		return n
	}
	for _, child := range n.Children {
		if found := child.FirstDescendant(kind); found != nil {
			return found
		}
	}
	return nil
}

// Descendants returns every node of the given kind in depth-first order,
// including n itself.
func (n *Node) Descendants(kind SyntaxKind) []*Node {
	var result []*Node
	n.walk(func(node *Node) {
		if node.Kind == kind {
			result = append(result, node)
		}
	})
	return result
}

// Tokens returns every leaf token under n in document order.
func (n *Node) Tokens() []*Node {
	var result []*Node
	n.walk(func(node *Node) {
		if node.token {
			result = append(result, node)
		}
	})
	return result
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}

// String renders the subtree as an indented dump, one element per line.
// Token lines include the quoted source text.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	sb.WriteString(" ")
	sb.WriteString(n.Span.String())
	if n.token {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(n.text))
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.dump(sb, indent+1)
	}
}

// jsonNode is the serialized shape of a Node.
type jsonNode struct {
	Kind     string  `json:"kind"`
	Span     Span    `json:"span"`
	Text     *string `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON encodes the node with its kind name, span, and either the
// token text or the child list.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{Kind: n.Kind.String(), Span: n.Span}
	if n.token {
		out.Text = &n.text
	} else {
		out.Children = n.Children
	}
	return json.Marshal(out)
}

// Tree is an ordered, rooted, immutable-once-built concrete syntax tree.
type Tree struct {
	root *Node
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Text reconstructs the decoded source text exactly by concatenating every
// leaf token in document order.
func (t *Tree) Text() string {
	return t.root.Text()
}

func (t *Tree) String() string {
	return t.root.String()
}

// MarshalJSON encodes the tree as its root node.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.root)
}
