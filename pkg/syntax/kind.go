// Package syntax defines the lossless concrete syntax tree produced by the
// shape-pipelines YAML front-end: syntax kinds, byte spans, diagnostics, the
// tree itself, and the incremental builder used to construct it.
//
// The tree is lossless: concatenating every leaf token's text in document
// order reproduces the decoded source exactly, including whitespace and
// comments. Downstream consumers (semantic analysis, editor tooling) navigate
// the tree by SyntaxKind and use byte spans to map back to the source.
package syntax

// SyntaxKind identifies a token or node in the syntax tree.
//
// The enumeration is closed: KindError is reserved for malformed regions and
// KindRoot for the tree root. Kinds below KindCommentText tag leaf tokens;
// the rest tag interior nodes.
type SyntaxKind int

const (
	// KindError marks a token or node covering malformed input.
	KindError SyntaxKind = iota
	// KindRoot is the kind of every tree root.
	KindRoot

	// Token kinds. Each leaf token carries the exact source substring.

	KindByteOrderMark   // leading U+FEFF
	KindLineBreak       // \n, \r or \r\n
	KindInlineSeparator // run of spaces and tabs
	KindCommentToken    // #
	KindCommentBody     // comment text after #
	KindDirectiveToken  // %
	KindDirectiveName   // YAML, TAG, ...
	KindDirectiveParameter
	KindYamlVersion        // 1.2
	KindTagToken           // ! inside a tag property
	KindPrimaryTagHandle   // !
	KindSecondaryTagHandle // !!
	KindNamedTagHandle     // !name!
	KindTagPrefix          // tag:yaml.org,2002: or !prefix
	KindTagSuffix          // suffix after a tag handle
	KindNonSpecificTag     // bare !
	KindVerbatimTagStart   // !<
	KindVerbatimTag        // URI inside !<...>
	KindVerbatimTagEnd     // >
	KindAnchorToken        // &
	KindAnchorName         // name after & or *
	KindAliasToken         // *
	KindSequenceStart      // [
	KindSequenceEnd        // ]
	KindMappingStart       // {
	KindMappingEnd         // }
	KindEntrySeparator     // ,
	KindMappingKeyToken    // ?
	KindMappingValueToken  // :
	KindSingleQuote        // '
	KindDoubleQuote        // "
	KindStringText         // literal run inside a quoted scalar
	KindEscapeSequence     // '' or backslash escape
	KindPlainScalar        // unquoted scalar

	// Node kinds.

	KindCommentText       // c-nb-comment-text
	KindDirective         // l-directive
	KindYamlDirective     // ns-yaml-directive
	KindTagDirective      // ns-tag-directive
	KindReservedDirective // ns-reserved-directive
	KindTagProperty       // c-ns-tag-property
	KindAnchorProperty    // c-ns-anchor-property
	KindAliasNode         // c-ns-alias-node
	KindFlowNode          // ns-flow-node
	KindFlowContent       // ns-flow-content
	KindFlowSequence      // c-flow-sequence
	KindFlowMapping       // c-flow-mapping
	KindFlowPair          // ns-flow-pair
	KindSingleQuoted      // c-single-quoted
	KindDoubleQuoted      // c-double-quoted
	KindDocument          // l-yaml-document
)

var kindNames = map[SyntaxKind]string{
	KindError:              "Error",
	KindRoot:               "Root",
	KindByteOrderMark:      "ByteOrderMark",
	KindLineBreak:          "LineBreak",
	KindInlineSeparator:    "InlineSeparator",
	KindCommentToken:       "CommentToken",
	KindCommentBody:        "CommentBody",
	KindDirectiveToken:     "DirectiveToken",
	KindDirectiveName:      "DirectiveName",
	KindDirectiveParameter: "DirectiveParameter",
	KindYamlVersion:        "YamlVersion",
	KindTagToken:           "TagToken",
	KindPrimaryTagHandle:   "PrimaryTagHandle",
	KindSecondaryTagHandle: "SecondaryTagHandle",
	KindNamedTagHandle:     "NamedTagHandle",
	KindTagPrefix:          "TagPrefix",
	KindTagSuffix:          "TagSuffix",
	KindNonSpecificTag:     "NonSpecificTag",
	KindVerbatimTagStart:   "VerbatimTagStart",
	KindVerbatimTag:        "VerbatimTag",
	KindVerbatimTagEnd:     "VerbatimTagEnd",
	KindAnchorToken:        "AnchorToken",
	KindAnchorName:         "AnchorName",
	KindAliasToken:         "AliasToken",
	KindSequenceStart:      "SequenceStart",
	KindSequenceEnd:        "SequenceEnd",
	KindMappingStart:       "MappingStart",
	KindMappingEnd:         "MappingEnd",
	KindEntrySeparator:     "EntrySeparator",
	KindMappingKeyToken:    "MappingKeyToken",
	KindMappingValueToken:  "MappingValueToken",
	KindSingleQuote:        "SingleQuote",
	KindDoubleQuote:        "DoubleQuote",
	KindStringText:         "StringText",
	KindEscapeSequence:     "EscapeSequence",
	KindPlainScalar:        "PlainScalar",
	KindCommentText:        "CommentText",
	KindDirective:          "Directive",
	KindYamlDirective:      "YamlDirective",
	KindTagDirective:       "TagDirective",
	KindReservedDirective:  "ReservedDirective",
	KindTagProperty:        "TagProperty",
	KindAnchorProperty:     "AnchorProperty",
	KindAliasNode:          "AliasNode",
	KindFlowNode:           "FlowNode",
	KindFlowContent:        "FlowContent",
	KindFlowSequence:       "FlowSequence",
	KindFlowMapping:        "FlowMapping",
	KindFlowPair:           "FlowPair",
	KindSingleQuoted:       "SingleQuoted",
	KindDoubleQuoted:       "DoubleQuoted",
	KindDocument:           "Document",
}

func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
