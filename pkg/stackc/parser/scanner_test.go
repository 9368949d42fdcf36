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
	"testing"

	"github.com/consensys/go-stackc/pkg/util/assert"
	"github.com/consensys/go-stackc/pkg/util/source"
)

func TestScanner_NextWord_00(t *testing.T) {
	scanner := newScanner("  abc;")
	checkWord(t, scanner, false, UNBOUNDED, "abc")
	// Whitespace skip is the only movement
	assert.Equal(t, 2, scanner.Position())
}

func TestScanner_NextWord_01(t *testing.T) {
	checkWord(t, newScanner(";x"), false, UNBOUNDED, "")
}

func TestScanner_NextWord_02(t *testing.T) {
	checkWord(t, newScanner(";x"), true, UNBOUNDED, ";x")
}

func TestScanner_NextWord_03(t *testing.T) {
	checkWord(t, newScanner(":=1"), true, 2, ":=")
}

func TestScanner_NextWord_04(t *testing.T) {
	checkWord(t, newScanner("x+y"), false, UNBOUNDED, "x")
}

func TestScanner_NextWord_05(t *testing.T) {
	checkWord(t, newScanner("\t\n\r\v\f"), false, UNBOUNDED, "")
}

func TestScanner_NextWord_06(t *testing.T) {
	checkFailure(t, "ab$c", INVALID_WORD, 2, func(s *Scanner) *Diagnostic {
		_, err := s.NextWord(false, UNBOUNDED)
		return err
	})
}

func TestScanner_NextWord_07(t *testing.T) {
	checkFailure(t, "  #", INVALID_WORD, 2, func(s *Scanner) *Diagnostic {
		_, err := s.NextWord(false, UNBOUNDED)
		return err
	})
}

func TestScanner_Glued_00(t *testing.T) {
	checkWord(t, newScanner("5div3"), false, UNBOUNDED, "5")
}

func TestScanner_Glued_01(t *testing.T) {
	checkWord(t, newScanner("div"), false, UNBOUNDED, "div")
}

func TestScanner_Glued_02(t *testing.T) {
	checkWord(t, newScanner("5div"), false, UNBOUNDED, "5div")
}

func TestScanner_Glued_03(t *testing.T) {
	checkWord(t, newScanner("5divmod3"), false, UNBOUNDED, "5divmod3")
}

func TestScanner_Glued_04(t *testing.T) {
	checkWord(t, newScanner("divisor"), false, UNBOUNDED, "divisor")
}

func TestScanner_Glued_05(t *testing.T) {
	checkWord(t, newScanner("12mod7"), false, UNBOUNDED, "12")
}

func TestScanner_Glued_06(t *testing.T) {
	checkWord(t, newScanner("5diva"), false, UNBOUNDED, "5diva")
}

func TestScanner_Identifier_00(t *testing.T) {
	checkIdentifier(t, "a", "a")
}

func TestScanner_Identifier_01(t *testing.T) {
	checkIdentifier(t, "a1_", "a1_")
}

func TestScanner_Identifier_02(t *testing.T) {
	checkIdentifier(t, "_x", "_x")
}

func TestScanner_Identifier_03(t *testing.T) {
	checkIdentifier(t, " foo := 1", "foo")
}

func TestScanner_Identifier_04(t *testing.T) {
	// Last character is not checked
	checkIdentifier(t, "ab:", "ab:")
}

func TestScanner_Identifier_05(t *testing.T) {
	checkFailure(t, "1a", INVALID_ID, 0, readIdentifier)
}

func TestScanner_Identifier_06(t *testing.T) {
	checkFailure(t, "a:b", INVALID_ID, 1, readIdentifier)
}

func TestScanner_Identifier_07(t *testing.T) {
	checkFailure(t, "  x:=", INVALID_ID, 3, readIdentifier)
}

func TestScanner_Identifier_08(t *testing.T) {
	checkFailure(t, " ;", MISSING_ID, 1, readIdentifier)
}

func TestScanner_Identifier_09(t *testing.T) {
	checkFailure(t, "end", INVALID_ID, 0, readIdentifier)
}

func TestScanner_Identifier_10(t *testing.T) {
	checkFailure(t, "  mod", INVALID_ID, 2, readIdentifier)
}

func TestScanner_Number_00(t *testing.T) {
	scanner := newScanner(" 42 ")
	number, err := scanner.ReadNumber()
	//
	assert.True(t, err == nil)
	assert.Equal(t, "42", number)
	assert.Equal(t, 3, scanner.Position())
	assert.Equal(t, source.NewSpan(1, 3), scanner.Last())
}

func TestScanner_Number_01(t *testing.T) {
	scanner := newScanner("5div3")
	number, err := scanner.ReadNumber()
	//
	assert.True(t, err == nil)
	assert.Equal(t, "5", number)
	assert.Equal(t, 1, scanner.Position())
}

func TestScanner_Number_02(t *testing.T) {
	checkFailure(t, "4a", INVALID_NUMBER, 0, readNumber)
}

func TestScanner_Number_03(t *testing.T) {
	checkFailure(t, "  )", EMPTY_NUMBER, 2, readNumber)
}

func TestScanner_Keyword_00(t *testing.T) {
	scanner := newScanner("  begin x")
	//
	assert.True(t, scanner.MatchKeyword("begin", PROGRAM_KEYWORD) == nil)
	assert.Equal(t, 7, scanner.Position())
	assert.Equal(t, source.NewSpan(2, 7), scanner.Last())
}

func TestScanner_Keyword_01(t *testing.T) {
	scanner := newScanner("x:=1")
	//
	assert.True(t, scanner.MatchKeyword("x", IDENTIFIER) == nil)
	assert.True(t, scanner.MatchKeyword(":=", ASSIGNMENT) == nil)
	assert.Equal(t, 3, scanner.Position())
}

func TestScanner_Keyword_02(t *testing.T) {
	scanner := newScanner(" x := 1")
	err := scanner.MatchKeyword("begin", PROGRAM_KEYWORD)
	//
	assert.True(t, err != nil)
	assert.Equal(t, UNEXPECTED_TOKEN, err.Kind)
	assert.Equal(t, 1, err.Offset())
	assert.Equal(t, "expected keyword 'begin' but found 'x'", err.Message())
	// Cursor only moves past whitespace
	assert.Equal(t, 1, scanner.Position())
}

func TestScanner_Keyword_03(t *testing.T) {
	scanner := newScanner("")
	err := scanner.MatchKeyword("end", PROGRAM_KEYWORD)
	//
	assert.True(t, err != nil)
	assert.Equal(t, "expected keyword 'end' but found ''", err.Message())
}

func TestScanner_Lookahead_00(t *testing.T) {
	scanner := newScanner("  end")
	word, err := scanner.Lookahead()
	//
	assert.True(t, err == nil)
	assert.Equal(t, "end", word)
	assert.Equal(t, 2, scanner.Position())
}

func TestScanner_Lookahead_01(t *testing.T) {
	word, err := newScanner(" + 1").Lookahead()
	//
	assert.True(t, err == nil)
	assert.Equal(t, "", word)
}

func TestScanner_Restore_00(t *testing.T) {
	scanner := newScanner("begin end")
	checkpoint := scanner.Position()
	//
	assert.True(t, scanner.MatchKeyword("begin", PROGRAM_KEYWORD) == nil)
	scanner.Restore(checkpoint)
	assert.True(t, scanner.MatchKeyword("begin", PROGRAM_KEYWORD) == nil)
	assert.True(t, scanner.MatchKeyword("end", PROGRAM_KEYWORD) == nil)
}

// ==================================================================
// Framework
// ==================================================================

func newScanner(text string) *Scanner {
	return NewScanner(source.NewSourceText("test", []string{text}))
}

func readIdentifier(s *Scanner) *Diagnostic {
	_, err := s.ReadIdentifier()
	return err
}

func readNumber(s *Scanner) *Diagnostic {
	_, err := s.ReadNumber()
	return err
}

func checkWord(t *testing.T, scanner *Scanner, anySymbol bool, limit int, expected string) {
	t.Helper()
	//
	word, err := scanner.NextWord(anySymbol, limit)
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	assert.Equal(t, expected, word)
}

func checkIdentifier(t *testing.T, text string, expected string) {
	t.Helper()
	//
	scanner := newScanner(text)
	id, err := scanner.ReadIdentifier()
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	assert.Equal(t, expected, id)
	assert.Equal(t, scanner.Last().End(), scanner.Position())
}

func checkFailure(t *testing.T, text string, kind ErrorKind, offset int, fn func(*Scanner) *Diagnostic) {
	t.Helper()
	//
	scanner := newScanner(text)
	err := fn(scanner)
	//
	if err == nil {
		t.Fatalf("expected %s error for \"%s\"", kind, text)
	}
	//
	assert.Equal(t, kind, err.Kind)
	assert.Equal(t, offset, err.Offset())
}
