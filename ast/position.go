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

import "fmt"

// SourceLocation is a single 1-based (line, column) pair in a source file.
type SourceLocation struct {
	Line   int
	Column int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Less reports whether l sorts strictly before o, lexicographically on
// (Line, Column).
func (l SourceLocation) Less(o SourceLocation) bool {
	if l.Line != o.Line {
		return l.Line < o.Line
	}
	return l.Column < o.Column
}

// LessOrEqual reports whether l sorts at or before o.
func (l SourceLocation) LessOrEqual(o SourceLocation) bool {
	return l == o || l.Less(o)
}

// SourceRange spans [Begin, End): inclusive-begin, exclusive-end columns on a
// single line unless End.Line > Begin.Line.
type SourceRange struct {
	Begin SourceLocation
	End   SourceLocation
}

func (r SourceRange) String() string {
	if r.Begin == r.End {
		return r.Begin.String()
	}
	return fmt.Sprintf("%s-%s", r.Begin, r.End)
}

// Encloses reports whether r fully contains o.
func (r SourceRange) Encloses(o SourceRange) bool {
	return r.Begin.LessOrEqual(o.Begin) && o.End.LessOrEqual(r.End)
}

// Extend returns a copy of r whose End is replaced with end, provided end is
// not before r.Begin. This is used by the parser's wrap-and-replace assembly:
// wrapping a child preserves range.Begin and extends range.End to cover the
// suffix just consumed.
func (r SourceRange) Extend(end SourceLocation) SourceRange {
	return SourceRange{Begin: r.Begin, End: end}
}

// SourceSpan pairs a resource name with a SourceRange, for use in diagnostics.
type SourceSpan struct {
	Resource string
	Range    SourceRange
}

func (s SourceSpan) String() string {
	if s.Resource == "" {
		return s.Range.String()
	}
	return fmt.Sprintf("%s:%s", s.Resource, s.Range)
}
