package syntax

import "fmt"

// Builder constructs a Tree incrementally while a parser walks the source in
// a single pass. Tokens and nodes are emitted in source order; Checkpoint and
// StartNodeAt allow a node to be opened retroactively around siblings that
// were emitted before its kind was known, without backtracking.
//
// Misuse (finishing more nodes than were started, wrapping a checkpoint from
// a frame that has since closed, finishing with open nodes) is a programmer
// error and panics.
type Builder struct {
	frames []frame
	offset int
}

// frame is one open node: its kind, the byte offset at which it opened, and
// the children collected so far.
type frame struct {
	kind     SyntaxKind
	start    int
	children []*Node
}

// Checkpoint is an opaque position in the tree under construction: a point in
// the current open node's child list plus the source offset at which it was
// taken.
type Checkpoint struct {
	frame  int
	child  int
	offset int
}

// NewBuilder returns an empty builder. Exactly one top-level node must be
// started and finished before calling Finish.
func NewBuilder() *Builder {
	return &Builder{frames: []frame{{kind: KindRoot}}}
}

// StartNode opens a new node of the given kind. Children emitted until the
// matching FinishNode belong to it.
func (b *Builder) StartNode(kind SyntaxKind) {
	b.frames = append(b.frames, frame{kind: kind, start: b.offset})
}

// FinishNode closes the most recently opened node.
func (b *Builder) FinishNode() {
	if len(b.frames) < 2 {
		panic("syntax: FinishNode without matching StartNode")
	}
	top := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	node := &Node{
		Kind:     top.kind,
		Span:     Span{Start: top.start, End: b.offset},
		Children: top.children,
	}
	b.appendChild(node)
}

// Token emits a leaf token carrying the exact source text. The token's span
// is derived from the running offset, so tokens must be emitted in source
// order with no gaps or overlaps.
func (b *Builder) Token(kind SyntaxKind, text string) {
	node := &Node{
		Kind:  kind,
		Span:  Span{Start: b.offset, End: b.offset + len(text)},
		token: true,
		text:  text,
	}
	b.offset += len(text)
	b.appendChild(node)
}

// Checkpoint captures the current position so a node can later be opened
// around everything emitted after it.
func (b *Builder) Checkpoint() Checkpoint {
	top := &b.frames[len(b.frames)-1]
	return Checkpoint{
		frame:  len(b.frames) - 1,
		child:  len(top.children),
		offset: b.offset,
	}
}

// StartNodeAt opens a node of the given kind retroactively: every sibling
// emitted since the checkpoint becomes a child of the new node, in order.
// The node must still be closed with FinishNode, and the checkpoint must
// belong to the node that is currently open (strict nesting).
func (b *Builder) StartNodeAt(cp Checkpoint, kind SyntaxKind) {
	if cp.frame != len(b.frames)-1 {
		panic(fmt.Sprintf("syntax: checkpoint belongs to frame %d, current frame is %d", cp.frame, len(b.frames)-1))
	}
	top := &b.frames[len(b.frames)-1]
	if cp.child > len(top.children) {
		panic("syntax: checkpoint is ahead of the current child list")
	}
	wrapped := append([]*Node(nil), top.children[cp.child:]...)
	top.children = top.children[:cp.child]
	b.frames = append(b.frames, frame{kind: kind, start: cp.offset, children: wrapped})
}

// Finish seals the tree. Every StartNode must have been matched by a
// FinishNode, and exactly one top-level node must have been produced.
func (b *Builder) Finish() *Tree {
	if len(b.frames) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d nodes still open", len(b.frames)-1))
	}
	bottom := b.frames[0]
	if len(bottom.children) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d top-level nodes, want 1", len(bottom.children)))
	}
	return &Tree{root: bottom.children[0]}
}

func (b *Builder) appendChild(node *Node) {
	top := &b.frames[len(b.frames)-1]
	top.children = append(top.children, node)
}
