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

func TestFileInfoSourceLocation(t *testing.T) {
	t.Parallel()
	data := []byte("ab\ncd\nef")
	info := ast.NewFileInfo("x.egg", data)
	info.AddLine(3) // offset of 'c'
	info.AddLine(6) // offset of 'e'

	require.Equal(t, ast.SourceLocation{Line: 1, Column: 1}, info.SourceLocation(0))
	require.Equal(t, ast.SourceLocation{Line: 1, Column: 3}, info.SourceLocation(2))
	require.Equal(t, ast.SourceLocation{Line: 2, Column: 1}, info.SourceLocation(3))
	require.Equal(t, ast.SourceLocation{Line: 3, Column: 1}, info.SourceLocation(6))
}

func TestFileInfoAddLinePanicsOnNonIncreasing(t *testing.T) {
	t.Parallel()
	info := ast.NewFileInfo("x.egg", []byte("abcdef"))
	info.AddLine(3)
	require.Panics(t, func() { info.AddLine(3) })
	require.Panics(t, func() { info.AddLine(1) })
}

func TestFileInfoNoteZeroLengthTokenPanicsAfterThreshold(t *testing.T) {
	t.Parallel()
	info := ast.NewFileInfo("x.egg", []byte(""))
	require.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			info.NoteZeroLengthToken(0)
		}
	})
	require.Panics(t, func() { info.NoteZeroLengthToken(0) })
}
