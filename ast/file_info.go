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

package ast

import (
	"fmt"
	"sort"
)

// FileInfo accumulates the byte-offset bookkeeping a lexer and tokenizer need
// to translate absolute offsets into 1-based (line, column) pairs, without
// requiring every Item/Token to carry its own line/column at construction
// time. A lexer calls AddLine as it crosses each newline; SourceLocation and
// Span translate offsets, and NoteZeroLengthToken guards against runaway
// zero-length tokens. No per-token byte spans are stored.
type FileInfo struct {
	name string
	data []byte
	// lines[i] is the zero-based byte offset where line i+1 (1-based) begins.
	// lines[0] is always 0.
	lines []int

	zltConsecutive int
}

// NewFileInfo creates a new FileInfo for a resource name and its contents.
func NewFileInfo(name string, data []byte) *FileInfo {
	return &FileInfo{name: name, data: data, lines: []int{0}}
}

func (f *FileInfo) Name() string { return f.name }
func (f *FileInfo) Data() []byte { return f.data }

// AddLine records that a new line begins at the given zero-based byte offset.
// Offsets must be added in strictly increasing order.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 || offset > len(f.data) {
		panic(fmt.Sprintf("invalid line offset %d for %d-byte file", offset, len(f.data)))
	}
	if last := f.lines[len(f.lines)-1]; offset <= last {
		panic(fmt.Sprintf("line offset %d is not greater than previous offset %d", offset, last))
	}
	f.lines = append(f.lines, offset)
}

// NoteZeroLengthToken is a defensive guard against a buggy rule looping
// forever emitting zero-width tokens; it panics once consecutive zero-length
// tokens exceed a small bound. length > 0 resets the counter.
func (f *FileInfo) NoteZeroLengthToken(length int) {
	if length == 0 {
		f.zltConsecutive++
		if f.zltConsecutive > 10 {
			panic("lexer bug: more than 10 consecutive zero-length tokens produced")
		}
		return
	}
	f.zltConsecutive = 0
}

// SourceLocation converts a zero-based byte offset into a 1-based
// (line, column) pair.
func (f *FileInfo) SourceLocation(offset int) SourceLocation {
	// lines holds the start offset of each line in increasing order; find the
	// last line whose start is <= offset.
	idx := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return SourceLocation{Line: idx + 1, Column: offset - f.lines[idx] + 1}
}

// Span returns the SourceRange for the half-open byte range [start, end).
func (f *FileInfo) Span(start, end int) SourceRange {
	return SourceRange{Begin: f.SourceLocation(start), End: f.SourceLocation(end)}
}
