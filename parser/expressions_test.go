package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/parser"
)

// exprOf parses exprSrc (with no trailing ';') as the operand of a return
// statement and returns the resulting expression node. A bare expression
// statement is restricted to call expressions, so `return` is used here as a
// neutral host for every other expression shape.
func exprOf(t *testing.T, exprSrc string) *ast.Node {
	t.Helper()
	src := "return " + exprSrc + ";"
	root, issues := parser.Parse("test.egg", []byte(src))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	require.Len(t, root.Children, 1)
	ret := root.Children[0]
	require.Equal(t, ast.KindStmtReturn, ret.Kind)
	require.Len(t, ret.Children, 1)
	return ret.Children[0]
}

func TestUnaryOperators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		kind ast.NodeKind
		op   ast.ValueUnaryOp
	}{
		{"!x", ast.KindExprUnary, ast.UnaryLogicalNot},
		{"-x", ast.KindExprUnary, ast.UnaryNegate},
		{"~x", ast.KindExprUnary, ast.UnaryBitwiseNot},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			t.Parallel()
			n := exprOf(t, c.src)
			require.Equal(t, c.kind, n.Kind)
			require.Equal(t, c.op, n.Op.Unary)
			require.Equal(t, "x", n.Children[0].Value.S)
		})
	}
}

func TestReferenceAndDereference(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "&x")
	require.Equal(t, ast.KindExprReference, n.Kind)
	require.Equal(t, "x", n.Children[0].Value.S)

	n = exprOf(t, "*x")
	require.Equal(t, ast.KindExprDereference, n.Kind)
	require.Equal(t, "x", n.Children[0].Value.S)
}

func TestMutationOperatorRejectedInsideExpression(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte("f(++x);"))
	require.Nil(t, root)
	require.NotEmpty(t, issues)
	require.Contains(t, issues[0].Message, "mutation operator inside an expression")
}

func TestTernaryIsRightAssociative(t *testing.T) {
	t.Parallel()
	// a ? b : c ? d : e  ==  a ? b : (c ? d : e)
	n := exprOf(t, "a ? b : c ? d : e")
	require.Equal(t, ast.KindExprTernary, n.Kind)
	require.Equal(t, "a", n.Children[0].Value.S)
	require.Equal(t, "b", n.Children[1].Value.S)
	inner := n.Children[2]
	require.Equal(t, ast.KindExprTernary, inner.Kind)
	require.Equal(t, "c", inner.Children[0].Value.S)
	require.Equal(t, "d", inner.Children[1].Value.S)
	require.Equal(t, "e", inner.Children[2].Value.S)
}

func TestTernaryBindsLooserThanBinary(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "a < b ? c : d")
	require.Equal(t, ast.KindExprTernary, n.Kind)
	cond := n.Children[0]
	require.Equal(t, ast.KindExprBinary, cond.Kind)
	require.Equal(t, ast.BinaryLess, cond.Op.Binary)
}

func TestCallIndexAndPropertySuffixesChain(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "a.b[0](c)")
	require.Equal(t, ast.KindExprCall, n.Kind)
	require.Equal(t, "c", n.Children[1].Value.S)

	index := n.Children[0]
	require.Equal(t, ast.KindExprIndex, index.Kind)
	require.Equal(t, int64(0), index.Children[1].Value.I)

	prop := index.Children[0]
	require.Equal(t, ast.KindExprProperty, prop.Kind)
	require.Equal(t, "a", prop.Children[0].Value.S)
	require.Equal(t, ast.KindLiteral, prop.Children[1].Kind)
	require.Equal(t, "b", prop.Children[1].Value.S)
}

func TestPropertyNameAcceptsKeyword(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "a.if")
	require.Equal(t, ast.KindExprProperty, n.Kind)
	require.Equal(t, "if", n.Children[1].Value.S)
}

func TestArrayLiteral(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "[1, 2, 3]")
	require.Equal(t, ast.KindExprArray, n.Kind)
	require.Len(t, n.Children, 3)
	require.Equal(t, int64(1), n.Children[0].Value.I)
	require.Equal(t, int64(3), n.Children[2].Value.I)
}

func TestEmptyArrayLiteral(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "[]")
	require.Equal(t, ast.KindExprArray, n.Kind)
	require.Empty(t, n.Children)
}

func TestEonObjectLiteral(t *testing.T) {
	t.Parallel()
	// A '{' at the very start of a statement is parsed as a block, so an EON
	// literal is only reachable in expression position - here, the
	// right-hand side of a definition.
	root, issues := parser.Parse("test.egg", []byte(`var obj = {x: 1, y: 2};`))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	def := root.Children[0]
	require.Equal(t, ast.KindStmtDefineVariable, def.Kind)
	n := def.Children[1]
	require.Equal(t, ast.KindExprEon, n.Kind)
	require.Len(t, n.Children, 2)
	require.Equal(t, ast.KindObjectSpecificationData, n.Children[0].Kind)
	require.Equal(t, "x", n.Children[0].Name)
	require.Equal(t, int64(1), n.Children[0].Children[0].Value.I)
	require.Equal(t, "y", n.Children[1].Name)
}

func TestParenthesesAreTransparentGrouping(t *testing.T) {
	t.Parallel()
	n := exprOf(t, "(a + b) * c")
	require.Equal(t, ast.KindExprBinary, n.Kind)
	require.Equal(t, ast.BinaryMultiply, n.Op.Binary)
	lhs := n.Children[0]
	require.Equal(t, ast.KindExprBinary, lhs.Kind)
	require.Equal(t, ast.BinaryAdd, lhs.Op.Binary)
}

func TestManifestationWithObjectBody(t *testing.T) {
	t.Parallel()
	// Like the EON literal above, a bare expression statement must be a call,
	// so the manifestation is exercised through a definition's right-hand
	// side instead.
	root, issues := parser.Parse("test.egg", []byte(`var obj = object{ int x = 1; };`))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	n := root.Children[0].Children[1]
	require.Equal(t, ast.KindExprObject, n.Kind)
	require.Len(t, n.Children, 2) // declType + one data member
	require.Equal(t, ast.KindTypeObject, n.Children[0].Kind)
	data := n.Children[1]
	require.Equal(t, ast.KindObjectSpecificationData, data.Kind)
	require.Equal(t, "x", data.Name)
	require.Equal(t, int64(1), data.Children[1].Value.I)
}

func TestLiteralKinds(t *testing.T) {
	t.Parallel()

	n := exprOf(t, "true")
	require.Equal(t, ast.ValueBool, n.Value.Kind)
	require.True(t, n.Value.B)

	n = exprOf(t, "false")
	require.False(t, n.Value.B)

	n = exprOf(t, "null")
	require.Equal(t, ast.ValueNull, n.Value.Kind)

	n = exprOf(t, "3.5")
	require.Equal(t, ast.ValueFloat, n.Value.Kind)
	require.InDelta(t, 3.5, n.Value.F, 1e-9)
}
