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

package reporter

import "github.com/eggscript/egg/ast"

// ReportFunc decides, for a single reported error, whether the parse should
// abort. Returning nil means "keep going" (the caller is choosing to not
// treat this as fatal); returning a non-nil error aborts the parse and that
// error becomes Handler.Error()'s result. The zero value (nil ReportFunc)
// gives the default policy: the very first Error-severity issue is fatal
// and halts the parse.
type ReportFunc func(ErrorWithPos) error

// Handler accumulates Issues reported while lexing, tokenizing, or parsing a
// single source, and decides - via its ReportFunc - whether a reported error
// is fatal. It is the bridge between the tokenizer's exception-like error
// propagation and the parser's explicit Context/Partial result type.
type Handler struct {
	reportError ReportFunc
	issues      []ast.Issue
	err         error
}

// NewHandler creates a Handler using the given ReportFunc, or the default
// abort-on-first-error policy if reportError is nil.
func NewHandler(reportError ReportFunc) *Handler {
	return &Handler{reportError: reportError}
}

// HandleError records an Error-severity issue and returns non-nil if the
// parse must now stop. Once a Handler has aborted, it continues to return the
// same sticky error from every subsequent call.
func (h *Handler) HandleError(err ErrorWithPos) error {
	if h.err != nil {
		return h.err
	}
	h.issues = append(h.issues, ast.Issue{
		Severity: ast.SeverityError,
		Message:  err.Unwrap().Error(),
		Range:    err.GetSpan().Range,
	})
	if h.reportError != nil {
		if abortErr := h.reportError(err); abortErr != nil {
			h.err = abortErr
		}
		return h.err
	}
	h.err = ErrInvalidSource
	return h.err
}

// HandleWarning records a Warning-severity issue. Warnings never abort the
// parse: they are recorded and parsing continues.
func (h *Handler) HandleWarning(err ErrorWithPos) {
	h.issues = append(h.issues, ast.Issue{
		Severity: ast.SeverityWarning,
		Message:  err.Unwrap().Error(),
		Range:    err.GetSpan().Range,
	})
}

// HandleInformation records an Information-severity issue.
func (h *Handler) HandleInformation(err ErrorWithPos) {
	h.issues = append(h.issues, ast.Issue{
		Severity: ast.SeverityInformation,
		Message:  err.Unwrap().Error(),
		Range:    err.GetSpan().Range,
	})
}

// ReporterError returns the sticky abort error, if the parse has already been
// told to stop. A caller can check this to skip the rest of the input once an
// abort has been decided; no code in this module calls it.
func (h *Handler) ReporterError() error {
	return h.err
}

// Error returns the sticky abort error recorded by HandleError, if any.
func (h *Handler) Error() error {
	return h.err
}

// Issues returns every issue recorded so far, in insertion order.
func (h *Handler) Issues() []ast.Issue {
	return h.issues
}

// HasErrors reports whether any Error-severity issue has been recorded,
// regardless of whether the Handler's ReportFunc chose to abort.
func (h *Handler) HasErrors() bool {
	for _, i := range h.issues {
		if i.Severity == ast.SeverityError {
			return true
		}
	}
	return false
}
