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

package token

// Keyword is the closed 29-entry keyword enumeration.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordAny
	KeywordBool
	KeywordBreak
	KeywordCase
	KeywordCatch
	KeywordContinue
	KeywordDefault
	KeywordDo
	KeywordElse
	KeywordFalse
	KeywordFinally
	KeywordFloat
	KeywordFor
	KeywordIf
	KeywordInt
	KeywordNull
	KeywordObject
	KeywordReturn
	KeywordStatic
	KeywordString
	KeywordSwitch
	KeywordThrow
	KeywordTrue
	KeywordTry
	KeywordType
	KeywordVar
	KeywordVoid
	KeywordWhile
	KeywordYield
)

var keywordNames = [...]string{
	KeywordNone:     "",
	KeywordAny:      "any",
	KeywordBool:     "bool",
	KeywordBreak:    "break",
	KeywordCase:     "case",
	KeywordCatch:    "catch",
	KeywordContinue: "continue",
	KeywordDefault:  "default",
	KeywordDo:       "do",
	KeywordElse:     "else",
	KeywordFalse:    "false",
	KeywordFinally:  "finally",
	KeywordFloat:    "float",
	KeywordFor:      "for",
	KeywordIf:       "if",
	KeywordInt:      "int",
	KeywordNull:     "null",
	KeywordObject:   "object",
	KeywordReturn:   "return",
	KeywordStatic:   "static",
	KeywordString:   "string",
	KeywordSwitch:   "switch",
	KeywordThrow:    "throw",
	KeywordTrue:     "true",
	KeywordTry:      "try",
	KeywordType:     "type",
	KeywordVar:      "var",
	KeywordVoid:     "void",
	KeywordWhile:    "while",
	KeywordYield:    "yield",
}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "?"
}

// Keywords is the closed identifier-text -> Keyword lookup table. A plain
// map is enough here: 29 entries is small enough that a perfect hash or
// sorted slice would only add ceremony.
var Keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames)-1)
	for k := KeywordAny; int(k) < len(keywordNames); k++ {
		m[keywordNames[k]] = k
	}
	return m
}()

// LookupKeyword reports whether ident names one of the 29 closed keywords.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := Keywords[ident]
	return k, ok
}
