package parser

import "github.com/eggscript/egg/ast"

// mark is the (tokensBefore, issuesBefore) pair a Context captures at the
// start of a parse rule.
type mark struct {
	pos    int
	issues int
}

// result is Partial's three-way outcome tag.
type result int

const (
	resultSkipped result = iota
	resultSucceeded
	resultFailed
)

// Partial is the outcome of one recursive-descent rule, replacing
// exception-based backtracking with an explicit tagged result. A rule MUST
// only report Skipped when it has recorded no new issues since its Context
// was captured; otherwise it must report Failed.
type Partial struct {
	result result
	Node   *ast.Node
}

// Succeeded reports a matched alternative carrying a node.
func (p Partial) Succeeded() bool { return p.result == resultSucceeded }

// Skipped reports "this alternative did not match; try the next" - no node,
// no new issues, no token consumption.
func (p Partial) Skipped() bool { return p.result == resultSkipped }

// Failed reports an unrecoverable syntax error: one or more new issues were
// recorded and the caller must propagate, not retry another alternative.
func (p Partial) Failed() bool { return p.result == resultFailed }

func (p *Parser) mark() mark {
	return mark{pos: p.pos, issues: len(p.handler.Issues())}
}

func (p *Parser) succeed(node *ast.Node) Partial {
	return Partial{result: resultSucceeded, Node: node}
}

// skip rewinds the token cursor to m and reports Skipped. Callers must only
// reach this when no issue has been recorded since m was captured.
func (p *Parser) skip(m mark) Partial {
	p.pos = m.pos
	return Partial{result: resultSkipped}
}

func (p *Parser) fail() Partial {
	return Partial{result: resultFailed}
}
