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

// ValueKind discriminates LiteralValue's union.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueString
	ValueNull
)

// LiteralValue is a small tagged union capable of representing every literal
// a Token or Node can carry: bool, signed 64-bit int, float64, interned
// string, or the null literal. Only the field matching Kind is meaningful.
type LiteralValue struct {
	Kind ValueKind
	B    bool
	I    int64
	F    float64
	S    string
}

func BoolValue(b bool) LiteralValue     { return LiteralValue{Kind: ValueBool, B: b} }
func IntValue(i int64) LiteralValue     { return LiteralValue{Kind: ValueInt, I: i} }
func FloatValue(f float64) LiteralValue { return LiteralValue{Kind: ValueFloat, F: f} }
func StringValue(s string) LiteralValue { return LiteralValue{Kind: ValueString, S: s} }
func NullValue() LiteralValue           { return LiteralValue{Kind: ValueNull} }

func (v LiteralValue) String() string {
	switch v.Kind {
	case ValueBool:
		return fmt.Sprintf("%t", v.B)
	case ValueInt:
		return fmt.Sprintf("%d", v.I)
	case ValueFloat:
		return fmt.Sprintf("%g", v.F)
	case ValueString:
		return fmt.Sprintf("%q", v.S)
	case ValueNull:
		return "null"
	default:
		return ""
	}
}
