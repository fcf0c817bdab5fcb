package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/parser"
)

func TestTypeUnarySuffixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		op   ast.TypeUnaryOp
	}{
		{"pointer", "int* a;", ast.TypeUnaryPointer},
		{"iterator", "int! a;", ast.TypeUnaryIterator},
		{"iterator of iterator", "int!! a;", ast.TypeUnaryIteratorOfIterator},
		{"array", "int[] a;", ast.TypeUnaryArray},
		{"nullable", "int? a;", ast.TypeUnaryNullable},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			root, issues := parser.Parse("test.egg", []byte(c.src))
			require.NotNil(t, root, "issues: %v", issues)
			require.Empty(t, issues)
			decl := root.Children[0]
			require.Equal(t, ast.KindStmtDeclareVariable, decl.Kind)
			typ := decl.Children[0]
			require.Equal(t, ast.KindTypeUnary, typ.Kind)
			require.Equal(t, c.op, typ.Op.TypeUnary)
			require.Equal(t, ast.KindTypeInt, typ.Children[0].Kind)
		})
	}
}

func TestTypeMapSuffix(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte("int[string] a;"))
	require.NotNil(t, root, "issues: %v", issues)
	decl := root.Children[0]
	m := decl.Children[0]
	require.Equal(t, ast.KindTypeBinary, m.Kind)
	require.Equal(t, ast.TypeBinaryMap, m.Op.TypeBinary)
	require.Equal(t, ast.KindTypeInt, m.Children[0].Kind)
	require.Equal(t, ast.KindTypeString, m.Children[1].Kind)
}

func TestTypeUnionIsRightAssociative(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte("int|string|bool a;"))
	require.NotNil(t, root, "issues: %v", issues)
	decl := root.Children[0]
	outer := decl.Children[0]
	require.Equal(t, ast.KindTypeBinary, outer.Kind)
	require.Equal(t, ast.TypeBinaryUnion, outer.Op.TypeBinary)
	require.Equal(t, ast.KindTypeInt, outer.Children[0].Kind)
	inner := outer.Children[1]
	require.Equal(t, ast.KindTypeBinary, inner.Kind)
	require.Equal(t, ast.TypeBinaryUnion, inner.Op.TypeBinary)
	require.Equal(t, ast.KindTypeString, inner.Children[0].Kind)
	require.Equal(t, ast.KindTypeBool, inner.Children[1].Kind)
}

func TestFunctionSignatureType(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte("int f(int x, string y = \"z\") { return x; }"))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	fn := root.Children[0]
	require.Equal(t, ast.KindStmtDefineFunction, fn.Kind)
	require.Equal(t, "f", fn.Name)
	require.Len(t, fn.Children, 2)

	sig := fn.Children[0]
	require.Equal(t, ast.KindTypeFunctionSignature, sig.Kind)
	require.Equal(t, ast.KindTypeInt, sig.Children[0].Kind) // return type
	require.Len(t, sig.Children, 3)

	reqParam := sig.Children[1]
	require.Equal(t, ast.KindTypeFunctionSignatureParameter, reqParam.Kind)
	require.Equal(t, "x", reqParam.Name)
	require.Equal(t, ast.ParameterRequired, reqParam.Op.Parameter)
	require.Empty(t, reqParam.Children[1:])

	optParam := sig.Children[2]
	require.Equal(t, "y", optParam.Name)
	require.Equal(t, ast.ParameterOptional, optParam.Op.Parameter)
	require.Len(t, optParam.Children, 2)
	require.Equal(t, "z", optParam.Children[1].Value.S)

	body := fn.Children[1]
	require.Equal(t, ast.KindStmtBlock, body.Kind)
}

// TestTypeExpressionFunctionSignatureSuffix covers the `(...)` suffix on a
// type expression used in a variable declaration, distinct from a function
// definition's own `(params)`: the empty form is a TypeFunctionSignature
// with no parameters, while a non-empty parameter list is rejected with the
// original's "not yet supported" wording (see DESIGN.md's Open Question
// log).
func TestTypeExpressionFunctionSignatureSuffix(t *testing.T) {
	t.Parallel()

	t.Run("empty parameter list", func(t *testing.T) {
		t.Parallel()
		root, issues := parser.Parse("test.egg", []byte("int() f;"))
		require.NotNil(t, root, "issues: %v", issues)
		require.Empty(t, issues)
		decl := root.Children[0]
		require.Equal(t, ast.KindStmtDeclareVariable, decl.Kind)
		sig := decl.Children[0]
		require.Equal(t, ast.KindTypeFunctionSignature, sig.Kind)
		require.Len(t, sig.Children, 1) // return type only, no parameters
	})

	t.Run("non-empty parameter list not yet supported", func(t *testing.T) {
		t.Parallel()
		root, issues := parser.Parse("test.egg", []byte("int(int a) f;"))
		require.Nil(t, root)
		require.NotEmpty(t, issues)
		require.Contains(t, issues[len(issues)-1].Message, "not yet supported")
	})
}

// TestAmbiguousIdentifierTypeIsMarked directly checks the Ambiguous flag
// parser/types.go's parseTypePrimary sets on an identifier-rooted type, and
// that a keyword-rooted type never carries it.
func TestAmbiguousIdentifierTypeIsMarked(t *testing.T) {
	t.Parallel()

	root, issues := parser.Parse("test.egg", []byte("Foo a;"))
	require.NotNil(t, root, "issues: %v", issues)
	decl := root.Children[0]
	require.Equal(t, ast.KindStmtDeclareVariable, decl.Kind)
	typ := decl.Children[0]
	require.Equal(t, ast.KindNamed, typ.Kind)
	require.True(t, typ.Ambiguous)

	root, issues = parser.Parse("test.egg", []byte("int a;"))
	require.NotNil(t, root, "issues: %v", issues)
	decl = root.Children[0]
	require.False(t, decl.Children[0].Ambiguous)
}

// TestAmbiguousTypeCallFallsBackToSimpleStatement is the minimal repro for
// the ambiguity flag: a bare identifier call statement must never be
// misparsed as a malformed function-signature type suffix.
func TestAmbiguousTypeCallFallsBackToSimpleStatement(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte(`print("x");`))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	call := root.Children[0]
	require.Equal(t, ast.KindExprCall, call.Kind)
	require.Equal(t, ast.KindVariable, call.Children[0].Kind)
	require.Equal(t, "print", call.Children[0].Value.S)
}

func TestTypeSpecificationBody(t *testing.T) {
	t.Parallel()
	src := `type Class {
		static int i = 123;
		int f();
		int p { get; set; }
	};`
	root, issues := parser.Parse("test.egg", []byte(src))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)

	def := root.Children[0]
	require.Equal(t, ast.KindStmtDefineType, def.Kind)
	require.Equal(t, "Class", def.Name)
	require.Len(t, def.Children, 1)

	spec := def.Children[0]
	require.Equal(t, ast.KindTypeSpecification, spec.Kind)
	require.Len(t, spec.Children, 3)

	staticData := spec.Children[0]
	require.Equal(t, ast.KindTypeSpecificationStaticData, staticData.Kind)
	require.Equal(t, "i", staticData.Name)
	require.Equal(t, ast.KindTypeInt, staticData.Children[0].Kind)
	require.Equal(t, int64(123), staticData.Children[1].Value.I)

	instanceFn := spec.Children[1]
	require.Equal(t, ast.KindTypeSpecificationInstanceFunction, instanceFn.Kind)
	require.Equal(t, "f", instanceFn.Name)
	require.Len(t, instanceFn.Children, 1)
	require.Equal(t, ast.KindTypeFunctionSignature, instanceFn.Children[0].Kind)

	accessors := spec.Children[2]
	require.Equal(t, ast.KindTypeSpecificationInstanceData, accessors.Kind)
	require.Equal(t, "p", accessors.Name)
	require.Len(t, accessors.Children, 3) // type + get + set
	require.Equal(t, ast.KindTypeInt, accessors.Children[0].Kind)

	get := accessors.Children[1]
	require.Equal(t, ast.KindTypeSpecificationAccess, get.Kind)
	require.Equal(t, ast.AccessGet, get.Op.Access)
	set := accessors.Children[2]
	require.Equal(t, ast.AccessSet, set.Op.Access)
}

func TestTypeSpecificationStaticForwardDeclarationsNotYetSupported(t *testing.T) {
	t.Parallel()

	t.Run("static data", func(t *testing.T) {
		t.Parallel()
		root, issues := parser.Parse("test.egg", []byte("type C { static int i; };"))
		require.Nil(t, root)
		require.NotEmpty(t, issues)
		require.Contains(t, issues[len(issues)-1].Message, "not yet supported")
	})

	t.Run("static function", func(t *testing.T) {
		t.Parallel()
		root, issues := parser.Parse("test.egg", []byte("type C { static int f(); };"))
		require.Nil(t, root)
		require.NotEmpty(t, issues)
		require.Contains(t, issues[len(issues)-1].Message, "not yet supported")
	})

	t.Run("static accessor member", func(t *testing.T) {
		t.Parallel()
		root, issues := parser.Parse("test.egg", []byte("type C { static int p { get; } };"))
		require.Nil(t, root)
		require.NotEmpty(t, issues)
		require.Contains(t, issues[len(issues)-1].Message, "not yet supported")
	})
}

func TestTypeAliasDefinition(t *testing.T) {
	t.Parallel()
	root, issues := parser.Parse("test.egg", []byte("type IntArray = int[];"))
	require.NotNil(t, root, "issues: %v", issues)
	require.Empty(t, issues)
	def := root.Children[0]
	require.Equal(t, ast.KindStmtDefineType, def.Kind)
	require.Equal(t, "IntArray", def.Name)
	aliased := def.Children[0]
	require.Equal(t, ast.KindTypeUnary, aliased.Kind)
	require.Equal(t, ast.TypeUnaryArray, aliased.Op.TypeUnary)
}
