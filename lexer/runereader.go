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

package lexer

import (
	"io"
	"unicode/utf8"
)

// runeReader is a mark/restore rune cursor over an in-memory byte buffer,
// structurally grounded on a save/restore/readRune/unreadRune/setMark/
// getMark shape; in place of getMark, verbatim returns the exact bytes
// consumed since the mark, which lexer.go needs to reconstruct a token's
// source text exactly.
type runeReader struct {
	data []byte
	pos  int
	mark int

	savedPos int
}

func newRuneReader(data []byte) *runeReader {
	return &runeReader{data: data}
}

func (r *runeReader) save() {
	r.savedPos = r.pos
}

func (r *runeReader) restore() {
	r.pos = r.savedPos
}

// readRune reads and consumes the next rune, or returns io.EOF at end of
// input. An invalid UTF-8 byte is surfaced as utf8.RuneError with size 1;
// the reader performs no strict UTF-8 validation.
func (r *runeReader) readRune() (rn rune, size int, err error) {
	if r.pos >= len(r.data) {
		return 0, 0, io.EOF
	}
	rn, size = utf8.DecodeRune(r.data[r.pos:])
	r.pos += size
	return rn, size, nil
}

// unreadRune backs the cursor up by size bytes. It must not be asked to back
// up past the current mark.
func (r *runeReader) unreadRune(size int) {
	newPos := r.pos - size
	if newPos < r.mark {
		panic("unreadRune past mark")
	}
	r.pos = newPos
}

func (r *runeReader) offset() int {
	return r.pos
}

func (r *runeReader) setMark() {
	r.mark = r.pos
}

// verbatim returns the exact bytes consumed since the last setMark call.
func (r *runeReader) verbatim() string {
	return string(r.data[r.mark:r.pos])
}
