// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/ast"
)

func leaf(kind ast.NodeKind) *ast.Node {
	return ast.NewNode(kind, ast.SourceRange{})
}

func sampleTree() *ast.Node {
	root := ast.NewNode(ast.KindModuleRoot, ast.SourceRange{})
	decl := leaf(ast.KindStmtDeclareVariable)
	ifStmt := ast.NewNode(ast.KindStmtIf, ast.SourceRange{}, leaf(ast.KindVariable), leaf(ast.KindStmtBlock))
	root.Append(decl)
	root.Append(ifStmt)
	return root
}

func TestWalkVisitsPreOrder(t *testing.T) {
	t.Parallel()
	root := sampleTree()

	var kinds []ast.NodeKind
	ast.Walk(root, func(n *ast.Node, parent *ast.Node, depth int) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	require.Equal(t, []ast.NodeKind{
		ast.KindModuleRoot,
		ast.KindStmtDeclareVariable,
		ast.KindStmtIf,
		ast.KindVariable,
		ast.KindStmtBlock,
	}, kinds)
}

func TestWalkPruneSkipsChildren(t *testing.T) {
	t.Parallel()
	root := sampleTree()

	var visited []ast.NodeKind
	ast.Walk(root, func(n *ast.Node, parent *ast.Node, depth int) bool {
		visited = append(visited, n.Kind)
		return n.Kind != ast.KindStmtIf
	})

	require.Equal(t, []ast.NodeKind{
		ast.KindModuleRoot,
		ast.KindStmtDeclareVariable,
		ast.KindStmtIf,
	}, visited)
}

func TestFind(t *testing.T) {
	t.Parallel()
	root := sampleTree()

	found := ast.Find(root, func(n *ast.Node) bool { return n.Kind == ast.KindVariable })
	require.NotNil(t, found)
	require.Equal(t, ast.KindVariable, found.Kind)

	require.Nil(t, ast.Find(root, func(n *ast.Node) bool { return n.Kind == ast.KindLiteral }))
}

func TestCount(t *testing.T) {
	t.Parallel()
	root := sampleTree()
	require.Equal(t, 5, ast.Count(root, func(*ast.Node) bool { return true }))
	require.Equal(t, 1, ast.Count(root, func(n *ast.Node) bool { return n.Kind == ast.KindStmtIf }))
}
