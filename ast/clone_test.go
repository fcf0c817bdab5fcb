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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/ast"
)

func TestCloneDeepCopiesChildrenAndAttributes(t *testing.T) {
	t.Parallel()
	child := ast.NewLeaf(ast.KindLiteral, ast.SourceRange{}, ast.IntValue(1))
	original := ast.NewNode(ast.KindStmtReturn, ast.SourceRange{}, child)
	original.Attributes = []string{"deprecated", "inline.hint"}

	clone := ast.Clone(original)
	if !cmp.Equal(original, clone) {
		t.Error(cmp.Diff(original, clone))
	}

	clone.Attributes[0] = "mutated"
	require.Equal(t, "deprecated", original.Attributes[0], "mutating the clone must not affect the original")

	clone.Children[0].Value = ast.IntValue(99)
	require.Equal(t, int64(1), original.Children[0].Value.I, "cloned children must not alias the original's")
}

func TestCloneNil(t *testing.T) {
	t.Parallel()
	require.Nil(t, ast.Clone(nil))
}
