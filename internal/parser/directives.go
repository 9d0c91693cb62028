package parser

import "github.com/shapestone/shape-pipelines/pkg/syntax"

// directive parses a %-led directive line through the end of the line,
// including a trailing same-line comment.
//
// The directive name selects the production: YAML takes a version number,
// TAG takes a tag handle and a tag prefix, and any other name collects
// whitespace-separated parameters as a reserved directive.
//
// l-directive
func (p *Parser) directive() {
	start := p.marker()

	if !p.eatRune('%') {
		p.errorRecover(p.pos(), "expected '%'", isBreak)
		return
	}
	p.token(syntax.KindDirectiveToken, start.pos)

	if !p.at(isNonWhitespace) {
		p.errorRecover(p.pos(), "expected directive name", isBreak)
		return
	}

	inner := p.marker()
	name := p.eatWhile(isNonWhitespace)
	p.tokenAt(syntax.KindDirectiveName, name)

	switch p.get(name) {
	case "YAML":
		if !p.tryInlineSeparator() {
			p.errorRecover(p.pos(), "expected YAML version", isBreak)
			return
		}
		p.yamlVersion()
		p.nodeAt(inner, syntax.KindYamlDirective)

	case "TAG":
		if !p.tryInlineSeparator() {
			p.errorRecover(p.pos(), "expected tag handle", isBreak)
			return
		}
		p.tagHandle()

		if !p.tryInlineSeparator() {
			p.errorRecover(p.pos(), "expected tag prefix", isBreak)
			return
		}
		p.tagPrefix()
		p.nodeAt(inner, syntax.KindTagDirective)

	default:
		for p.isInlineSeparator() {
			next := p.peekSkipInlineSeparator()
			if next == eof || next == '#' || !isNonWhitespace(next) {
				break
			}
			p.inlineSeparator()
			param := p.eatWhile(isNonWhitespace)
			p.tokenAt(syntax.KindDirectiveParameter, param)
		}
		p.nodeAt(inner, syntax.KindReservedDirective)
	}

	p.separatedLineComments()

	p.nodeAt(start, syntax.KindDirective)
}

// yamlVersion parses a version number of the form digits '.' digits.
//
// ns-yaml-version
func (p *Parser) yamlVersion() {
	start := p.pos()
	if !p.at(isDecDigit) {
		p.errorRecover(start, "invalid YAML version: expected digit", isSeparator)
		return
	}
	p.eatWhile(isDecDigit)
	if !p.eatRune('.') {
		p.errorRecover(start, "invalid YAML version: expected '.'", isSeparator)
		return
	}
	if !p.at(isDecDigit) {
		p.errorRecover(start, "invalid YAML version: expected digit", isSeparator)
		return
	}
	p.eatWhile(isDecDigit)

	p.token(syntax.KindYamlVersion, start)
}
