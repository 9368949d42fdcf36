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
	"slices"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// TERM_FOLLOW identifies the lookahead words which permit the empty
// alternative of term'.  The empty word arises when the cursor rests on a
// delimiting symbol (e.g. ';' or ')'), or at the end of the input.
var TERM_FOLLOW = []string{"", "+", "-", "end"}

// Parser translates source files into stack machine code.  A parser holds no
// state between calls to Parse and, hence, can be reused.
type Parser struct {
	observer Observer
}

// NewParser constructs a new parser which reports events to a given observer
// (which may be nil).
func NewParser(observer Observer) *Parser {
	if observer == nil {
		observer = NopObserver{}
	}
	//
	return &Parser{observer}
}

// Parse a given source file into a program using a parser which reports no
// events.
func Parse(srcfile *source.File) (code.Program, []*Diagnostic) {
	return NewParser(nil).Parse(srcfile)
}

// Parse a given source file into a program.  On success, the program is
// returned along with a source map covering every instruction.  Otherwise, the
// diagnostics recorded furthest into the input are returned.  Exactly one of
// these is non-empty.
func (p *Parser) Parse(srcfile *source.File) (code.Program, []*Diagnostic) {
	var s = newState(srcfile, p.observer)
	//
	if _, err := s.program(); err != nil {
		errs := s.aggregator.SelectBest()
		log.Debugf("recorded %d diagnostics for %s (reporting %d)", s.aggregator.Len(), srcfile.Filename(), len(errs))
		//
		return code.Program{}, errs
	}
	//
	var (
		insns = s.log.Instructions()
		ids   = make([]uint, len(insns))
	)
	//
	for i, insn := range insns {
		ids[i] = insn.Id
	}
	//
	log.Debugf("emitted %d instructions for %s", len(insns), srcfile.Filename())
	//
	return code.NewProgram(insns, s.srcmap.Restrict(ids...)), nil
}

// ============================================================================
// Parse state
// ============================================================================

// An alternative of some rule.  Identifiers of instructions emitted (directly
// or indirectly) by the alternative are appended to ids, regardless of whether
// or not it ultimately succeeds.
type alternative func(ids *[]uint) *Diagnostic

// state holds everything mutated during a single parse.
type state struct {
	scanner    *Scanner
	log        *code.Log
	srcmap     *source.Map[uint]
	aggregator Aggregator
	observer   Observer
}

func newState(srcfile *source.File, observer Observer) *state {
	return &state{
		scanner:  NewScanner(srcfile),
		log:      code.NewLog(),
		srcmap:   source.NewSourceMap[uint](srcfile),
		observer: observer,
	}
}

// Attempt each alternative of a rule in turn, returning the emitted
// identifiers of the first which succeeds.  Whenever an alternative fails, its
// diagnostic is recorded, its instructions are rolled back and the cursor is
// restored.  If no alternative succeeds, the diagnostic of the last is
// returned.
func (s *state) choose(rule Rule, alternatives ...alternative) ([]uint, *Diagnostic) {
	var err *Diagnostic
	//
	s.observer.Enter(rule, s.scanner.Position())
	//
	for _, alt := range alternatives {
		var (
			checkpoint = s.scanner.Position()
			ids        []uint
		)
		//
		if err = alt(&ids); err == nil {
			s.observer.Exit(rule, true)
			return ids, nil
		}
		//
		s.aggregator.Record(err)
		s.rollback(ids)
		s.scanner.Restore(checkpoint)
	}
	//
	s.observer.Exit(rule, false)
	//
	return nil, err
}

// Match a subrule, accumulating any identifiers it emits.
func (s *state) include(ids *[]uint, rule func() ([]uint, *Diagnostic)) *Diagnostic {
	sub, err := rule()
	*ids = append(*ids, sub...)
	//
	return err
}

// Emit an instruction originating from a given span of the input.
func (s *state) emit(ids *[]uint, opcode code.Opcode, operand string, span source.Span) {
	id := s.log.Emit(opcode, operand)
	s.srcmap.Put(id, span)
	*ids = append(*ids, id)
	s.observer.Emit(code.Instruction{Id: id, Opcode: opcode, Operand: operand})
}

func (s *state) rollback(ids []uint) {
	if len(ids) > 0 {
		s.log.Rollback(ids...)
		s.observer.Rollback(ids)
	}
}

func (s *state) keyword(keyword string, kind TokenKind) *Diagnostic {
	if err := s.scanner.MatchKeyword(keyword, kind); err != nil {
		return err
	}
	//
	s.observer.Accept(kind, keyword)
	//
	return nil
}

func (s *state) identifier() (string, *Diagnostic) {
	id, err := s.scanner.ReadIdentifier()
	//
	if err == nil {
		s.observer.Accept(IDENTIFIER, id)
	}
	//
	return id, err
}

func (s *state) number() (string, *Diagnostic) {
	number, err := s.scanner.ReadNumber()
	//
	if err == nil {
		s.observer.Accept(NUMBER, number)
	}
	//
	return number, err
}

// Check the lookahead permits an empty alternative.  The returned span is the
// (empty) span at the cursor.
func (s *state) empty(kind ErrorKind, permitted func(string) bool, msg string) (source.Span, *Diagnostic) {
	word, err := s.scanner.Lookahead()
	pos := s.scanner.Position()
	//
	if err != nil {
		return source.Span{}, err
	} else if !permitted(word) {
		return source.Span{}, s.scanner.errorAt(kind, pos, runeCount(word), fmt.Sprintf(msg, word))
	}
	//
	s.observer.Accept(EMPTY, word)
	//
	return source.NewSpan(pos, pos), nil
}

func isEnd(word string) bool {
	return word == "end"
}

// ============================================================================
// Grammar
// ============================================================================

// program -> 'begin' stmt_list 'end'
func (s *state) program() ([]uint, *Diagnostic) {
	return s.choose(PROGRAM, func(ids *[]uint) *Diagnostic {
		if err := s.keyword("begin", PROGRAM_KEYWORD); err != nil {
			return err
		} else if err := s.include(ids, s.stmtList); err != nil {
			return err
		} else if err := s.keyword("end", PROGRAM_KEYWORD); err != nil {
			return err
		}
		//
		s.emit(ids, code.HALT, "", s.scanner.Last())
		//
		return nil
	})
}

// stmt_list -> id ':=' expr stmt_list'
//
//	| expr'
func (s *state) stmtList() ([]uint, *Diagnostic) {
	return s.choose(STMT_LIST, s.assignment(s.stmtListTail), func(ids *[]uint) *Diagnostic {
		return s.include(ids, s.exprTail)
	})
}

// stmt -> id ':=' expr
//
//	| <empty>
func (s *state) stmt() ([]uint, *Diagnostic) {
	return s.choose(STMT, s.assignment(nil), func(ids *[]uint) *Diagnostic {
		_, err := s.empty(UNEXPECTED_TOKEN, isEnd, "expected keyword 'end' but found '%s'")
		return err
	})
}

// Construct the alternative id ':=' expr, optionally followed by some tail.
func (s *state) assignment(tail func() ([]uint, *Diagnostic)) alternative {
	return func(ids *[]uint) *Diagnostic {
		id, err := s.identifier()
		//
		if err != nil {
			return err
		}
		//
		s.emit(ids, code.LVALUE, id, s.scanner.Last())
		//
		if err := s.keyword(":=", ASSIGNMENT); err != nil {
			return err
		} else if err := s.include(ids, s.expr); err != nil {
			return err
		} else if tail != nil {
			return s.include(ids, tail)
		}
		//
		return nil
	}
}

// stmt_list' -> ';' stmt stmt_list'
//
//	| <empty>
func (s *state) stmtListTail() ([]uint, *Diagnostic) {
	return s.choose(STMT_LIST_TAIL, func(ids *[]uint) *Diagnostic {
		if err := s.keyword(";", STATEMENT_TERMINATOR); err != nil {
			return err
		}
		//
		s.emit(ids, code.STO, "", s.scanner.Last())
		//
		if err := s.include(ids, s.stmt); err != nil {
			return err
		}
		//
		return s.include(ids, s.stmtListTail)
	}, func(ids *[]uint) *Diagnostic {
		span, err := s.empty(UNEXPECTED_END, isEnd, "expected keyword 'end' but found '%s'")
		//
		if err == nil {
			// Flush final statement
			s.emit(ids, code.STO, "", span)
		}
		//
		return err
	})
}

// expr -> term expr'
func (s *state) expr() ([]uint, *Diagnostic) {
	return s.choose(EXPR, func(ids *[]uint) *Diagnostic {
		if err := s.include(ids, s.term); err != nil {
			return err
		}
		//
		return s.include(ids, s.exprTail)
	})
}

// expr' -> '+' term expr'
//
//	| '-' term expr'
//	| <empty>
func (s *state) exprTail() ([]uint, *Diagnostic) {
	return s.choose(EXPR_TAIL, s.sum("+", code.ADD), s.sum("-", code.SUB), func(ids *[]uint) *Diagnostic {
		// NOTE: since ';' delimits words, the lookahead is never ";" here.
		_, err := s.empty(UNEXPECTED_END, func(word string) bool { return word != ";" },
			"unexpected '%s' after expression")
		//
		return err
	})
}

// Construct the alternative op term expr', where the operator is emitted after
// the tail.
func (s *state) sum(operator string, opcode code.Opcode) alternative {
	return func(ids *[]uint) *Diagnostic {
		if err := s.keyword(operator, OPERATOR); err != nil {
			return err
		}
		//
		span := s.scanner.Last()
		//
		if err := s.include(ids, s.term); err != nil {
			return err
		} else if err := s.include(ids, s.exprTail); err != nil {
			return err
		}
		//
		s.emit(ids, opcode, "", span)
		//
		return nil
	}
}

// term -> factor term'
func (s *state) term() ([]uint, *Diagnostic) {
	return s.choose(TERM, func(ids *[]uint) *Diagnostic {
		if err := s.include(ids, s.factor); err != nil {
			return err
		}
		//
		return s.include(ids, s.termTail)
	})
}

// term' -> '*' factor term'
//
//	| 'div' factor term'
//	| 'mod' factor term'
//	| <empty>
func (s *state) termTail() ([]uint, *Diagnostic) {
	return s.choose(TERM_TAIL, s.product("*", code.MPY), s.product("div", code.DIV), s.product("mod", code.MOD),
		func(ids *[]uint) *Diagnostic {
			_, err := s.empty(UNEXPECTED_END, func(word string) bool { return slices.Contains(TERM_FOLLOW, word) },
				"expected '+', '-' or 'end' but found '%s'")
			//
			return err
		})
}

// Construct the alternative op factor term', where the operator is emitted
// before the tail.
func (s *state) product(operator string, opcode code.Opcode) alternative {
	return func(ids *[]uint) *Diagnostic {
		if err := s.keyword(operator, OPERATOR); err != nil {
			return err
		}
		//
		span := s.scanner.Last()
		//
		if err := s.include(ids, s.factor); err != nil {
			return err
		}
		//
		s.emit(ids, opcode, "", span)
		//
		return s.include(ids, s.termTail)
	}
}

// factor -> primary '^' factor
//
//	| primary
func (s *state) factor() ([]uint, *Diagnostic) {
	return s.choose(FACTOR, func(ids *[]uint) *Diagnostic {
		if err := s.include(ids, s.primary); err != nil {
			return err
		} else if err := s.keyword("^", OPERATOR); err != nil {
			return err
		}
		//
		span := s.scanner.Last()
		//
		if err := s.include(ids, s.factor); err != nil {
			return err
		}
		//
		s.emit(ids, code.POW, "", span)
		//
		return nil
	}, func(ids *[]uint) *Diagnostic {
		return s.include(ids, s.primary)
	})
}

// primary -> id
//
//	| number
//	| '(' expr ')'
func (s *state) primary() ([]uint, *Diagnostic) {
	return s.choose(PRIMARY, func(ids *[]uint) *Diagnostic {
		id, err := s.identifier()
		//
		if err == nil {
			s.emit(ids, code.RVALUE, id, s.scanner.Last())
		}
		//
		return err
	}, func(ids *[]uint) *Diagnostic {
		number, err := s.number()
		//
		if err == nil {
			s.emit(ids, code.PUSH, number, s.scanner.Last())
		}
		//
		return err
	}, func(ids *[]uint) *Diagnostic {
		if err := s.keyword("(", PARENTHESIS); err != nil {
			return err
		} else if err := s.include(ids, s.expr); err != nil {
			return err
		}
		//
		return s.keyword(")", PARENTHESIS)
	})
}
