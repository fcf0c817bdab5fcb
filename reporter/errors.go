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

// Package reporter defines the error types and collection handler used to
// surface lexer, tokenizer, and parser diagnostics.
package reporter

import (
	"errors"
	"fmt"

	"github.com/eggscript/egg/ast"
)

// ErrInvalidSource is the sticky abort error that a Handler built with the
// default (nil) ReportFunc records for the first Error; Handler.Error returns
// it. Parse itself returns a nil root and the issue list, not this error.
var ErrInvalidSource = errors.New("parse failed: invalid egg source")

// ErrorWithPos is an error that carries the source span responsible for it.
type ErrorWithPos interface {
	error
	GetSpan() ast.SourceSpan
	Unwrap() error
}

// Error creates an ErrorWithPos from a span and an underlying error.
func Error(span ast.SourceSpan, err error) ErrorWithPos {
	return errorWithSourceSpan{span: span, underlying: err}
}

// Errorf creates an ErrorWithPos whose underlying error is built with
// fmt.Errorf.
func Errorf(span ast.SourceSpan, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourceSpan{span: span, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourceSpan struct {
	underlying error
	span       ast.SourceSpan
}

func (e errorWithSourceSpan) Error() string {
	return fmt.Sprintf("%s: %v", e.span, e.underlying)
}

func (e errorWithSourceSpan) GetSpan() ast.SourceSpan { return e.span }
func (e errorWithSourceSpan) Unwrap() error           { return e.underlying }

var _ ErrorWithPos = errorWithSourceSpan{}
