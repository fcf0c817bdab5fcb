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

// NodeKind is the closed tag set for every AST node kind Egg's grammar can
// produce. It is intentionally a single flat enum, rather than one Go type
// per production, so that a generic Node{Kind, Range, Op, Value, Children}
// can represent the whole tree.
type NodeKind int

const (
	KindInvalid NodeKind = iota

	// Module / statements
	KindModuleRoot
	KindStmtBlock
	KindStmtDeclareVariable
	KindStmtDefineVariable
	KindStmtDefineFunction
	KindStmtDefineType
	KindStmtForLoop
	KindStmtForEach
	KindStmtIf
	KindStmtReturn
	KindStmtYield
	KindStmtThrow
	KindStmtTry
	KindStmtCatch
	KindStmtFinally
	KindStmtWhile
	KindStmtDo
	KindStmtSwitch
	KindStmtCase
	KindStmtDefault
	KindStmtBreak
	KindStmtContinue
	KindStmtMutate

	// Expressions
	KindExprUnary
	KindExprBinary
	KindExprTernary
	KindExprCall
	KindExprIndex
	KindExprProperty
	KindExprReference
	KindExprDereference
	KindExprArray
	KindExprEon
	KindExprObject
	KindExprEllipsis
	KindExprGuard

	// Types
	KindTypeInfer
	KindTypeInferQ
	KindTypeVoid
	KindTypeBool
	KindTypeInt
	KindTypeFloat
	KindTypeString
	KindTypeObject
	KindTypeAny
	KindTypeType
	KindTypeUnary
	KindTypeBinary
	KindTypeFunctionSignature
	KindTypeFunctionSignatureParameter

	// Type specifications (the body of `type Name { ... }`)
	KindTypeSpecification
	KindTypeSpecificationStaticData
	KindTypeSpecificationStaticFunction
	KindTypeSpecificationInstanceData
	KindTypeSpecificationInstanceFunction
	KindTypeSpecificationAccess

	// Object expression literals (EON)
	KindObjectSpecification
	KindObjectSpecificationData
	KindObjectSpecificationFunction

	// Leaves
	KindLiteral
	KindVariable
	KindNamed
	KindMissing
)

var nodeKindNames = map[NodeKind]string{
	KindInvalid:                           "invalid",
	KindModuleRoot:                        "module-root",
	KindStmtBlock:                         "stmt-block",
	KindStmtDeclareVariable:               "stmt-declare-variable",
	KindStmtDefineVariable:                "stmt-define-variable",
	KindStmtDefineFunction:                "stmt-define-function",
	KindStmtDefineType:                    "stmt-define-type",
	KindStmtForLoop:                       "stmt-for-loop",
	KindStmtForEach:                       "stmt-for-each",
	KindStmtIf:                            "stmt-if",
	KindStmtReturn:                        "stmt-return",
	KindStmtYield:                         "stmt-yield",
	KindStmtThrow:                         "stmt-throw",
	KindStmtTry:                           "stmt-try",
	KindStmtCatch:                         "stmt-catch",
	KindStmtFinally:                       "stmt-finally",
	KindStmtWhile:                         "stmt-while",
	KindStmtDo:                            "stmt-do",
	KindStmtSwitch:                        "stmt-switch",
	KindStmtCase:                          "stmt-case",
	KindStmtDefault:                       "stmt-default",
	KindStmtBreak:                         "stmt-break",
	KindStmtContinue:                      "stmt-continue",
	KindStmtMutate:                        "stmt-mutate",
	KindExprUnary:                         "expr-unary",
	KindExprBinary:                        "expr-binary",
	KindExprTernary:                       "expr-ternary",
	KindExprCall:                          "expr-call",
	KindExprIndex:                         "expr-index",
	KindExprProperty:                      "expr-property",
	KindExprReference:                     "expr-reference",
	KindExprDereference:                   "expr-dereference",
	KindExprArray:                         "expr-array",
	KindExprEon:                           "expr-eon",
	KindExprObject:                        "expr-object",
	KindExprEllipsis:                      "expr-ellipsis",
	KindExprGuard:                         "expr-guard",
	KindTypeInfer:                         "type-infer",
	KindTypeInferQ:                        "type-infer-q",
	KindTypeVoid:                          "type-void",
	KindTypeBool:                          "type-bool",
	KindTypeInt:                           "type-int",
	KindTypeFloat:                         "type-float",
	KindTypeString:                        "type-string",
	KindTypeObject:                        "type-object",
	KindTypeAny:                           "type-any",
	KindTypeType:                          "type-type",
	KindTypeUnary:                         "type-unary",
	KindTypeBinary:                        "type-binary",
	KindTypeFunctionSignature:             "type-function-signature",
	KindTypeFunctionSignatureParameter:    "type-function-signature-parameter",
	KindTypeSpecification:                 "type-specification",
	KindTypeSpecificationStaticData:       "type-specification-static-data",
	KindTypeSpecificationStaticFunction:   "type-specification-static-function",
	KindTypeSpecificationInstanceData:     "type-specification-instance-data",
	KindTypeSpecificationInstanceFunction: "type-specification-instance-function",
	KindTypeSpecificationAccess:           "type-specification-access",
	KindObjectSpecification:               "object-specification",
	KindObjectSpecificationData:           "object-specification-data",
	KindObjectSpecificationFunction:       "object-specification-function",
	KindLiteral:                           "literal",
	KindVariable:                          "variable",
	KindNamed:                             "named",
	KindMissing:                           "missing",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "unknown-kind"
}
