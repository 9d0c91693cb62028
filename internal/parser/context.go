package parser

// Context is the YAML block/flow × in/out/key parameterization. It is
// threaded explicitly through every grammar function and never stored; it
// decides how separators may be consumed, where error recovery stops
// skipping, and which characters a plain scalar may contain.
type Context int

const (
	BlockIn Context = iota
	BlockOut
	BlockKey
	FlowIn
	FlowOut
	FlowKey
)

var contextNames = map[Context]string{
	BlockIn:  "BlockIn",
	BlockOut: "BlockOut",
	BlockKey: "BlockKey",
	FlowIn:   "FlowIn",
	FlowOut:  "FlowOut",
	FlowKey:  "FlowKey",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "Unknown"
}

// recovery returns the predicate at which error recovery stops skipping
// input: the next line break in block contexts, the next flow indicator in
// flow contexts. End of input is always an implicit recovery point.
func (c Context) recovery() func(rune) bool {
	switch c {
	case BlockIn, BlockOut, BlockKey:
		return isBreak
	case FlowIn, FlowOut, FlowKey:
		return isFlowIndicator
	default:
		panic("parser: unknown context")
	}
}

// inFlow returns the context for content nested inside a flow collection.
//
// in-flow(c)
func (c Context) inFlow() Context {
	switch c {
	case FlowOut, FlowIn:
		return FlowIn
	case BlockKey, FlowKey:
		return FlowKey
	default:
		panic("parser: in-flow is undefined for block contexts")
	}
}

// keyContext returns the context for an implicit mapping key, which is
// confined to a single line.
func (c Context) keyContext() Context {
	switch c {
	case FlowOut, FlowIn:
		return FlowKey
	case BlockKey, FlowKey:
		return c
	default:
		panic("parser: key context is undefined for block contexts")
	}
}

// isKey reports whether separators in this context are confined to one line.
func (c Context) isKey() bool {
	return c == BlockKey || c == FlowKey
}

// isPlainSafe reports whether r may appear in a plain scalar under this
// context. Block-style plain scalars are out of scope; asking for them is a
// parser defect.
//
// ns-plain-safe(c)
func (c Context) isPlainSafe(r rune) bool {
	switch c {
	case FlowOut, BlockKey:
		return isNonWhitespace(r)
	case FlowIn, FlowKey:
		return isNonWhitespace(r) && !isFlowIndicator(r)
	default:
		panic("parser: plain scalars in block contexts are not supported")
	}
}
