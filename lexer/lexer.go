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
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/reporter"
	"github.com/eggscript/egg/token"
)

// Lexer classifies a UTF-8 byte stream into a pull-based sequence of Items,
// terminating in (and then repeating) EndOfFile. It is single-threaded and
// synchronous; parsing one resource is independent of parsing another, and
// two Lexers may run concurrently on independent inputs.
//
// Structurally grounded on scanning helpers shaped like readNumber,
// readIdentifier, readStringLiteral, and skipToEndOfLineComment/
// BlockComment, reshaped around a coarser Item classification rather than
// goyacc token numbers.
type Lexer struct {
	resource string
	input    *runeReader
	info     *ast.FileInfo
	eof      bool
}

// New creates a Lexer over the given resource name (used only for
// diagnostics) and its raw contents.
func New(resource string, data []byte) *Lexer {
	return &Lexer{
		resource: resource,
		input:    newRuneReader(data),
		info:     ast.NewFileInfo(resource, data),
	}
}

// FileInfo exposes the line-offset table accumulated so far, so a caller
// (typically the tokenizer) can translate further offsets into locations
// using the same table.
func (l *Lexer) FileInfo() *ast.FileInfo { return l.info }

func (l *Lexer) err(begin, end ast.SourceLocation, format string, args ...interface{}) error {
	return reporter.Errorf(ast.SourceSpan{Resource: l.resource, Range: ast.SourceRange{Begin: begin, End: end}}, format, args...)
}

// Next returns the next lexer Item. After the stream is exhausted, Next
// returns EndOfFile items forever: a single terminating EndOfFile item, with
// subsequent calls repeating EOF.
func (l *Lexer) Next() (Item, error) {
	if l.eof {
		loc := l.info.SourceLocation(l.input.offset())
		return Item{Kind: EndOfFile, Location: loc}, nil
	}

	l.input.setMark()
	start := l.info.SourceLocation(l.input.offset())

	c, sz, err := l.input.readRune()
	if err == io.EOF {
		l.eof = true
		return Item{Kind: EndOfFile, Location: start}, nil
	}

	switch {
	case isSpace(c):
		l.input.unreadRune(sz)
		return l.lexWhitespace(start)
	case c == '/' && l.peekIs('/'):
		return l.lexLineComment(start)
	case c == '/' && l.peekIs('*'):
		return l.lexBlockComment(start)
	case c == '"':
		return l.lexQuotedString(start)
	case c == '`':
		return l.lexBackquotedString(start)
	case isDigit(c):
		l.input.unreadRune(sz)
		return l.lexNumber(start)
	case isIdentStart(c):
		l.input.unreadRune(sz)
		return l.lexIdentifier(start)
	case strings.ContainsRune(token.OperatorAlphabet, c):
		l.input.unreadRune(sz)
		return l.lexOperatorRun(start)
	default:
		end := l.info.SourceLocation(l.input.offset())
		return Item{}, l.err(start, end, "Unexpected character: '%c'", c)
	}
}

func (l *Lexer) peekIs(want rune) bool {
	l.input.save()
	defer l.input.restore()
	c, _, err := l.input.readRune()
	return err == nil && c == want
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func (l *Lexer) currentLoc() ast.SourceLocation {
	return l.info.SourceLocation(l.input.offset())
}

// --- whitespace -------------------------------------------------------

func (l *Lexer) lexWhitespace(start ast.SourceLocation) (Item, error) {
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || !isSpace(c) {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
		if c == '\r' {
			// CRLF counts as one line break; don't add a line for the \r
			// itself, only for the \n (or a bare \r, below).
			l.input.save()
			c2, sz2, err2 := l.input.readRune()
			if err2 == nil && c2 == '\n' {
				l.info.AddLine(l.input.offset())
				continue
			}
			if err2 == nil {
				l.input.unreadRune(sz2)
			}
			l.info.AddLine(l.input.offset())
			continue
		}
		if c == '\n' {
			l.info.AddLine(l.input.offset())
		}
	}
	return Item{Kind: Whitespace, Verbatim: l.input.verbatim(), Location: start}, nil
}

// --- comments -----------------------------------------------------------

func (l *Lexer) lexLineComment(start ast.SourceLocation) (Item, error) {
	l.input.readRune() // consume the second '/'
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || c == '\n' {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
	}
	return Item{Kind: Comment, Verbatim: l.input.verbatim(), Location: start}, nil
}

func (l *Lexer) lexBlockComment(start ast.SourceLocation) (Item, error) {
	l.input.readRune() // consume '*'
	for {
		c, _, err := l.input.readRune()
		if err == io.EOF {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "Unexpected end of file found in comment")
		}
		if c == '\n' {
			l.info.AddLine(l.input.offset())
		}
		if c == '*' {
			c2, sz2, err2 := l.input.readRune()
			if err2 == nil && c2 == '/' {
				break
			}
			if err2 == nil {
				l.input.unreadRune(sz2)
			}
		}
	}
	return Item{Kind: Comment, Verbatim: l.input.verbatim(), Location: start}, nil
}

// --- numbers --------------------------------------------------------------

func (l *Lexer) lexNumber(start ast.SourceLocation) (Item, error) {
	first, _, _ := l.input.readRune()

	if first == '0' {
		c2, sz2, err2 := l.input.readRune()
		if err2 == nil && (c2 == 'x' || c2 == 'X') {
			return l.lexHexInteger(start)
		}
		if err2 == nil && isDigit(c2) {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "extraneous leading '0'")
		}
		if err2 == nil {
			l.input.unreadRune(sz2)
		}
	}

	// decimal integer or float
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || !isDigit(c) {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
	}

	isFloat := false
	l.input.save()
	if c, sz, err := l.input.readRune(); err == nil && c == '.' {
		c2, sz2, err2 := l.input.readRune()
		if err2 == nil && isDigit(c2) {
			isFloat = true
			l.input.unreadRune(sz2)
			for {
				l.input.save()
				cc, szz, e := l.input.readRune()
				if e != nil || !isDigit(cc) {
					if e == nil {
						l.input.unreadRune(szz)
					}
					break
				}
			}
		} else {
			if err2 == nil {
				l.input.unreadRune(sz2)
			}
			l.input.unreadRune(sz)
		}
	} else if err == nil {
		l.input.unreadRune(sz)
	}

	if c, sz, err := l.input.readRune(); err == nil && (c == 'e' || c == 'E') {
		isFloat = true
		sign, sgnSz, errS := l.input.readRune()
		consumedSign := false
		if errS == nil && (sign == '+' || sign == '-') {
			consumedSign = true
		} else if errS == nil {
			l.input.unreadRune(sgnSz)
		}
		digitC, digitSz, errD := l.input.readRune()
		if errD != nil || !isDigit(digitC) {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "expected digit after exponent indicator")
		}
		_ = consumedSign
		l.input.unreadRune(digitSz)
		for {
			l.input.save()
			cc, szz, e := l.input.readRune()
			if e != nil || !isDigit(cc) {
				if e == nil {
					l.input.unreadRune(szz)
				}
				break
			}
		}
	} else if err == nil {
		l.input.unreadRune(sz)
	}

	if c, sz, err := l.input.readRune(); err == nil {
		if isIdentStart(c) {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "invalid character '%c' following number literal", c)
		}
		l.input.unreadRune(sz)
	}

	text := l.input.verbatim()
	if isFloat {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			end := l.currentLoc()
			if ne, ok := ferr.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				if math.IsInf(f, 0) {
					return Item{}, l.err(start, end, "float literal out of range: %s", text)
				}
			}
			return Item{}, l.err(start, end, "invalid float literal: %s", text)
		}
		if mantissa := strings.SplitN(strings.ToLower(text), "e", 2)[0]; f == 0 && strings.ContainsAny(mantissa, "123456789") {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "float literal out of range: %s", text)
		}
		return Item{Kind: Float, Verbatim: text, Value: ast.FloatValue(f), Location: start}, nil
	}

	u, ierr := strconv.ParseUint(text, 10, 64)
	if ierr != nil {
		end := l.currentLoc()
		return Item{}, l.err(start, end, "integer literal out of range: %s", text)
	}
	return Item{Kind: Integer, Verbatim: text, Value: ast.IntValue(int64(u)), Location: start}, nil
}

func (l *Lexer) lexHexInteger(start ast.SourceLocation) (Item, error) {
	digits := 0
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || !isHexDigit(c) {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
		digits++
	}
	if digits == 0 {
		end := l.currentLoc()
		return Item{}, l.err(start, end, "hexadecimal integer literal must have at least one digit")
	}
	if digits > 16 {
		end := l.currentLoc()
		return Item{}, l.err(start, end, "hexadecimal integer literal has too many digits")
	}
	if c, sz, err := l.input.readRune(); err == nil {
		if isIdentStart(c) {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "invalid character '%c' following number literal", c)
		}
		l.input.unreadRune(sz)
	}
	text := l.input.verbatim()
	u, err := strconv.ParseUint(text[2:], 16, 64)
	if err != nil {
		end := l.currentLoc()
		return Item{}, l.err(start, end, "invalid hexadecimal integer literal: %s", text)
	}
	return Item{Kind: Integer, Verbatim: text, Value: ast.IntValue(int64(u)), Location: start}, nil
}

// --- identifiers ------------------------------------------------------

func (l *Lexer) lexIdentifier(start ast.SourceLocation) (Item, error) {
	l.input.readRune() // the start rune, already validated by caller
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || !isIdentCont(c) {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
	}
	text := l.input.verbatim()
	return Item{Kind: Identifier, Verbatim: text, Value: ast.StringValue(text), Location: start}, nil
}

// --- operator runs ------------------------------------------------------

func (l *Lexer) lexOperatorRun(start ast.SourceLocation) (Item, error) {
	for {
		l.input.save()
		c, sz, err := l.input.readRune()
		if err != nil || !strings.ContainsRune(token.OperatorAlphabet, c) {
			if err == nil {
				l.input.unreadRune(sz)
			}
			break
		}
	}
	text := l.input.verbatim()
	return Item{Kind: Operator, Verbatim: text, Location: start}, nil
}

// --- strings --------------------------------------------------------------

func (l *Lexer) lexQuotedString(start ast.SourceLocation) (Item, error) {
	var buf bytes.Buffer
	for {
		c, _, err := l.input.readRune()
		if err == io.EOF {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "Unexpected end of file found in string literal")
		}
		if c == '\n' {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "Unexpected newline found in string literal")
		}
		if c == '"' {
			break
		}
		if c == '\\' {
			if err := l.readEscape(&buf, start, '"'); err != nil {
				return Item{}, err
			}
			continue
		}
		buf.WriteRune(c)
	}
	text := l.input.verbatim()
	return Item{Kind: String, Verbatim: text, Value: ast.StringValue(buf.String()), Location: start}, nil
}

func (l *Lexer) lexBackquotedString(start ast.SourceLocation) (Item, error) {
	var buf bytes.Buffer
	for {
		c, sz, err := l.input.readRune()
		if err == io.EOF {
			end := l.currentLoc()
			return Item{}, l.err(start, end, "Unexpected end of file found in string literal")
		}
		if c == '\n' {
			l.info.AddLine(l.input.offset())
			buf.WriteRune(c)
			continue
		}
		if c == '`' {
			// `` inside a backquoted string encodes a literal backtick.
			l.input.save()
			c2, sz2, err2 := l.input.readRune()
			if err2 == nil && c2 == '`' {
				buf.WriteRune('`')
				continue
			}
			if err2 == nil {
				l.input.unreadRune(sz2)
			}
			_ = sz
			break
		}
		if c == '\\' {
			if err := l.readEscape(&buf, start, '`'); err != nil {
				return Item{}, err
			}
			continue
		}
		buf.WriteRune(c)
	}
	text := l.input.verbatim()
	return Item{Kind: String, Verbatim: text, Value: ast.StringValue(buf.String()), Location: start}, nil
}

// readEscape decodes one escape sequence immediately following a consumed
// backslash, appending the decoded rune(s) to buf. quote is the enclosing
// string's quote character; it affects neither the decoding nor the messages.
func (l *Lexer) readEscape(buf *bytes.Buffer, start ast.SourceLocation, quote rune) error {
	c, _, err := l.input.readRune()
	if err == io.EOF {
		end := l.currentLoc()
		return l.err(start, end, "Unexpected end of file found in string literal")
	}
	switch c {
	case '"':
		buf.WriteByte('"')
	case '\\':
		buf.WriteByte('\\')
	case '/':
		buf.WriteByte('/')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'u':
		return l.readUnicodeEscape(buf, start, 4)
	case 'U':
		return l.readUnicodeEscape(buf, start, 8)
	default:
		end := l.currentLoc()
		return l.err(start, end, "invalid escape sequence: \\%c", c)
	}
	return nil
}

// readUnicodeEscape decodes \u{H} / \u{H; and \U{H} / \U{H; forms, where H
// is 1..maxDigits hex digits, closed by either '}' (the brace form) or ';'
// (the truncated form) - see DESIGN.md's Open Question resolution for why
// both terminators are accepted.
func (l *Lexer) readUnicodeEscape(buf *bytes.Buffer, start ast.SourceLocation, maxDigits int) error {
	c, _, err := l.input.readRune()
	if err != nil || c != '{' {
		end := l.currentLoc()
		return l.err(start, end, "invalid unicode escape: expected '{'")
	}
	var hex strings.Builder
	for hex.Len() < maxDigits {
		cc, sz, errc := l.input.readRune()
		if errc != nil {
			end := l.currentLoc()
			return l.err(start, end, "Unexpected end of file found in string literal")
		}
		if cc == '}' || cc == ';' {
			l.input.unreadRune(sz)
			break
		}
		if !isHexDigit(cc) {
			end := l.currentLoc()
			return l.err(start, end, "invalid unicode escape: %c is not a hex digit", cc)
		}
		hex.WriteRune(cc)
	}
	if hex.Len() == 0 {
		end := l.currentLoc()
		return l.err(start, end, "invalid unicode escape: no hex digits found")
	}
	term, _, errt := l.input.readRune()
	if errt != nil || (term != '}' && term != ';') {
		end := l.currentLoc()
		return l.err(start, end, "invalid unicode escape: expected '}' or ';'")
	}
	cp, perr := strconv.ParseInt(hex.String(), 16, 64)
	if perr != nil {
		end := l.currentLoc()
		return l.err(start, end, "invalid unicode escape: %s", hex.String())
	}
	if cp < 0 || cp > 0x10FFFF {
		end := l.currentLoc()
		return l.err(start, end, "unicode escape out of range: must be between U+0000 and U+10FFFF")
	}
	buf.WriteRune(rune(cp))
	return nil
}

