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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/token"
)

func TestMatchOperatorLongestMatch(t *testing.T) {
	t.Parallel()
	cases := []struct {
		run    string
		op     token.Operator
		length int
	}{
		{">>>=", token.OpShiftRightUnsignedAssign, 4},
		{">>>", token.OpShiftRightUnsigned, 3},
		{">>=", token.OpShiftRightAssign, 3},
		{">>", token.OpShiftRight, 2},
		{">=", token.OpGreaterEqual, 2},
		{">", token.OpGreater, 1},
		{"??=", token.OpIfNullAssign, 3},
		{"??", token.OpIfNull, 2},
		{"?", token.OpQuestion, 1},
		{"!!=", token.OpIfVoidAssign, 3},
		{"!!", token.OpIfVoid, 2},
		{"<|=", token.OpMinimumAssign, 3},
		{"<|", token.OpMinimum, 2},
		{"...", token.OpEllipsis, 3},
		{".", token.OpDot, 1},
		{"->", token.OpArrow, 2},
		{";", token.OpSemicolon, 1},
	}
	for _, c := range cases {
		op, length, ok := token.MatchOperator(c.run)
		require.True(t, ok, "expected %q to match", c.run)
		require.Equal(t, c.op, op, "operator for %q", c.run)
		require.Equal(t, c.length, length, "match length for %q", c.run)
	}
}

func TestMatchOperatorLeavesRemainderForNextCall(t *testing.T) {
	t.Parallel()
	// A run like "+++" should match "++" first, leaving "+" for a follow-up
	// MatchOperator call - exactly how the tokenizer's opRun stashing works.
	op, length, ok := token.MatchOperator("+++")
	require.True(t, ok)
	require.Equal(t, token.OpIncrement, op)
	require.Equal(t, 2, length)

	op2, length2, ok2 := token.MatchOperator("+++"[length:])
	require.True(t, ok2)
	require.Equal(t, token.OpPlus, op2)
	require.Equal(t, 1, length2)
}

func TestMatchOperatorRejectsUnknownRun(t *testing.T) {
	t.Parallel()
	_, _, ok := token.MatchOperator("#")
	require.False(t, ok)
}

func TestOperatorAlphabetCoversEveryTableEntry(t *testing.T) {
	t.Parallel()
	for _, r := range []rune("!%&()*+,-./:;<=>?[]^{|}~") {
		require.Contains(t, token.OperatorAlphabet, string(r))
	}
}
