// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"

	"github.com/consensys/go-stackc/pkg/stackc/code"
)

// Rule identifies a non-terminal of the grammar.
type Rule uint8

// PROGRAM is the start rule: 'begin' stmt_list 'end'
const PROGRAM Rule = 0

// STMT_LIST matches a (possibly empty) list of statements.
const STMT_LIST Rule = 1

// STMT matches a single assignment (or nothing before 'end').
const STMT Rule = 2

// STMT_LIST_TAIL matches the remainder of a statement list.
const STMT_LIST_TAIL Rule = 3

// EXPR matches a sum of terms.
const EXPR Rule = 4

// EXPR_TAIL matches the remainder of a sum.
const EXPR_TAIL Rule = 5

// TERM matches a product of factors.
const TERM Rule = 6

// TERM_TAIL matches the remainder of a product.
const TERM_TAIL Rule = 7

// FACTOR matches a (right associative) exponentiation.
const FACTOR Rule = 8

// PRIMARY matches an identifier, number or parenthesised expression.
const PRIMARY Rule = 9

var ruleNames = []string{"program", "stmt_list", "stmt", "stmt_list'", "expr", "expr'", "term", "term'",
	"factor", "primary"}

func (p Rule) String() string {
	if int(p) < len(ruleNames) {
		return ruleNames[p]
	}
	//
	return fmt.Sprintf("Rule(%d)", uint8(p))
}

// Observer is notified of significant events during a parse, such as entering
// or leaving a rule.  Observers cannot influence the outcome of a parse.
type Observer interface {
	// Enter signals that an attempt to match a given rule is starting at a given
	// offset.
	Enter(rule Rule, offset int)
	// Exit signals that an attempt to match a given rule has finished, either
	// successfully or not.
	Exit(rule Rule, ok bool)
	// Accept signals that a word of the given kind has been accepted.
	Accept(kind TokenKind, word string)
	// Emit signals that an instruction has been emitted.
	Emit(insn code.Instruction)
	// Rollback signals that a set of previously emitted instructions has been
	// abandoned.
	Rollback(ids []uint)
}

// NopObserver ignores every event.
type NopObserver struct{}

// Enter implementation for Observer interface.
func (p NopObserver) Enter(rule Rule, offset int) {}

// Exit implementation for Observer interface.
func (p NopObserver) Exit(rule Rule, ok bool) {}

// Accept implementation for Observer interface.
func (p NopObserver) Accept(kind TokenKind, word string) {}

// Emit implementation for Observer interface.
func (p NopObserver) Emit(insn code.Instruction) {}

// Rollback implementation for Observer interface.
func (p NopObserver) Rollback(ids []uint) {}
