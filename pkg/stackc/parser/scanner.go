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
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-stackc/pkg/util/source"
	"github.com/consensys/go-stackc/pkg/util/source/lex"
)

// TokenKind classifies the words accepted by the scanner.  This is primarily
// used for reporting what kind of token was expected.
type TokenKind uint8

// PROGRAM_KEYWORD signals "begin" or "end"
const PROGRAM_KEYWORD TokenKind = 0

// ASSIGNMENT signals ":="
const ASSIGNMENT TokenKind = 1

// OPERATOR signals "+", "-", "*", "^", "div" or "mod"
const OPERATOR TokenKind = 2

// PARENTHESIS signals "(" or ")"
const PARENTHESIS TokenKind = 3

// STATEMENT_TERMINATOR signals ";"
const STATEMENT_TERMINATOR TokenKind = 4

// IDENTIFIER signals a variable name
const IDENTIFIER TokenKind = 5

// NUMBER signals a numeric literal
const NUMBER TokenKind = 6

// EMPTY signals the (empty) lookahead accepted by an empty alternative
const EMPTY TokenKind = 7

var tokenKindNames = []string{"keyword", "assignment", "operator", "parenthesis", "terminator",
	"identifier", "number", "empty"}

func (p TokenKind) String() string {
	if int(p) < len(tokenKindNames) {
		return tokenKindNames[p]
	}
	//
	return fmt.Sprintf("TokenKind(%d)", uint8(p))
}

// UNBOUNDED indicates no limit on the length of a word.
const UNBOUNDED = math.MaxInt

// RESERVED identifies the keywords which cannot be used as identifiers.
var RESERVED = []string{"begin", "end", "div", "mod"}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.OneOf(' ', '\n', '\t', '\r', '\v', '\f')

// Rule for describing the symbols which delimit words
var delimiter lex.Scanner[rune] = lex.OneOf(';', '+', '-', '*', '^', '(', ')')

// Rule for describing decimal digits
var digit lex.Scanner[rune] = lex.Within('0', '9')

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Or(identifierStart, digit)

// Rule for describing every character which may appear in a word
var valid lex.Scanner[rune] = lex.Or(identifierRest, lex.OneOf(':', ';', '=', '+', '-', '*', '^', '(', ')'))

// Scanner extracts words from a source text on demand.  It maintains a cursor
// into the text which only moves forwards when whitespace is skipped, or when
// the caller accepts a word.  The cursor can be saved and restored to support
// backtracking.
type Scanner struct {
	srcfile *source.File
	text    []rune
	// Cursor into text
	pos int
	// Span of the most recently accepted word
	last source.Span
}

// NewScanner constructs a scanner positioned at the start of a given file.
func NewScanner(srcfile *source.File) *Scanner {
	return &Scanner{srcfile, srcfile.Contents(), 0, source.NewSpan(0, 0)}
}

// Position returns the current cursor position.
func (p *Scanner) Position() int {
	return p.pos
}

// Restore the cursor to a previously saved position.
func (p *Scanner) Restore(pos int) {
	p.pos = pos
}

// Last returns the span of the most recently accepted word.
func (p *Scanner) Last() source.Span {
	return p.last
}

// SkipWhitespace advances the cursor past any whitespace.
func (p *Scanner) SkipWhitespace() {
	for p.pos < len(p.text) && lex.Accepts(whitespace, p.text[p.pos]) {
		p.pos++
	}
}

// NextWord skips any whitespace and then returns the next word, without
// accepting it.  A word extends upto (at most) limit characters, stopping at
// whitespace or, unless anySymbol holds, at a delimiting symbol.  A word
// consisting of a number glued to "div" or "mod" followed by another number
// (e.g. "5div3") is truncated to the first number.  Every character of the
// resulting word must be valid.
func (p *Scanner) NextWord(anySymbol bool, limit int) (string, *Diagnostic) {
	p.SkipWhitespace()
	//
	end := p.pos
	//
	for end-p.pos < limit && end < len(p.text) && !p.delimits(anySymbol, p.text[end]) {
		end++
	}
	//
	word := unglue(string(p.text[p.pos:end]))
	// Sanity check characters
	for i, c := range []rune(word) {
		if !lex.Accepts(valid, c) {
			msg := fmt.Sprintf("invalid word (%s)", word)
			return "", p.errorAt(INVALID_WORD, p.pos+i, 1, msg)
		}
	}
	//
	return word, nil
}

// Lookahead returns the next word delimited by whitespace or symbols, without
// accepting it.  This is empty when the cursor rests on a symbol, or at the
// end of the text.
func (p *Scanner) Lookahead() (string, *Diagnostic) {
	return p.NextWord(false, UNBOUNDED)
}

// MatchKeyword attempts to match a given keyword (or symbol) at the cursor.  If
// successful, the cursor is advanced past it.
func (p *Scanner) MatchKeyword(keyword string, kind TokenKind) *Diagnostic {
	var n = utf8.RuneCountInString(keyword)
	//
	word, err := p.NextWord(true, n)
	//
	if err != nil {
		return err
	} else if word != keyword {
		msg := fmt.Sprintf("expected %s '%s' but found '%s'", kind, keyword, word)
		return p.errorAt(UNEXPECTED_TOKEN, p.pos, runeCount(word), msg)
	}
	//
	p.accept(n)
	//
	return nil
}

// ReadIdentifier attempts to read an identifier at the cursor.  An identifier
// starts with a letter or underscore, and continues with letters, digits or
// underscores.  Note that the final character of an identifier is not checked
// beyond being a valid word character, hence "ab:" is accepted.  If
// successful, the cursor is advanced past it.
func (p *Scanner) ReadIdentifier() (string, *Diagnostic) {
	word, err := p.NextWord(false, UNBOUNDED)
	chars := []rune(word)
	//
	if err != nil {
		return "", err
	} else if len(chars) == 0 {
		return "", p.errorAt(MISSING_ID, p.pos, 0, "missing identifier")
	} else if !lex.Accepts(identifierStart, chars[0]) {
		return "", p.errorAt(INVALID_ID, p.pos, 1, "invalid identifier (must start with letter or underscore)")
	}
	//
	for i := 1; i < len(chars)-1; i++ {
		if !lex.Accepts(identifierRest, chars[i]) {
			msg := fmt.Sprintf("invalid identifier (unexpected character '%c')", chars[i])
			return "", p.errorAt(INVALID_ID, p.pos+i, 1, msg)
		}
	}
	//
	if slices.Contains(RESERVED, word) {
		msg := fmt.Sprintf("invalid identifier (reserved keyword '%s')", word)
		return "", p.errorAt(INVALID_ID, p.pos, len(chars), msg)
	}
	//
	p.accept(len(chars))
	//
	return word, nil
}

// ReadNumber attempts to read a decimal number at the cursor.  If successful,
// the cursor is advanced past it.
func (p *Scanner) ReadNumber() (string, *Diagnostic) {
	word, err := p.NextWord(false, UNBOUNDED)
	chars := []rune(word)
	//
	if err != nil {
		return "", err
	} else if len(chars) == 0 {
		return "", p.errorAt(EMPTY_NUMBER, p.pos, 0, "expected number (empty)")
	}
	//
	for _, c := range chars {
		if !lex.Accepts(digit, c) {
			msg := fmt.Sprintf("expected number (invalid digit '%c')", c)
			return "", p.errorAt(INVALID_NUMBER, p.pos, len(chars), msg)
		}
	}
	//
	p.accept(len(chars))
	//
	return word, nil
}

func (p *Scanner) accept(n int) {
	p.last = source.NewSpan(p.pos, p.pos+n)
	p.pos += n
}

func (p *Scanner) delimits(anySymbol bool, c rune) bool {
	return lex.Accepts(whitespace, c) || (!anySymbol && lex.Accepts(delimiter, c))
}

// Construct a diagnostic covering upto n characters from a given offset.
func (p *Scanner) errorAt(kind ErrorKind, offset int, n int, msg string) *Diagnostic {
	end := min(offset+n, len(p.text))
	//
	return &Diagnostic{kind, *p.srcfile.SyntaxError(source.NewSpan(offset, end), msg)}
}

// Split a word like "5div3" or "12mod7" at the operator, returning the left
// operand.  Anything else (e.g. "div", "5div", "divisor" or "5divmod3") is
// returned unchanged.  Only "div" is considered when the word contains it.
func unglue(word string) string {
	for _, op := range []string{"div", "mod"} {
		if strings.Contains(word, op) {
			pieces := strings.Split(word, op)
			//
			if len(pieces) == 2 && isNumber(pieces[0]) && isNumber(pieces[1]) {
				return pieces[0]
			}
			//
			return word
		}
	}
	//
	return word
}

func isNumber(word string) bool {
	return word != "" && lex.AcceptsAll(digit, []rune(word))
}

func runeCount(word string) int {
	return utf8.RuneCountInString(word)
}
