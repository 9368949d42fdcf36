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

	"github.com/consensys/go-stackc/pkg/util/collection/array"
	"github.com/consensys/go-stackc/pkg/util/source"
)

// ErrorKind classifies the diagnostics which can arise during parsing.
type ErrorKind uint8

// INVALID_WORD signals a lexeme containing a disallowed character.
const INVALID_WORD ErrorKind = 0

// MISSING_ID signals an identifier was expected, but nothing was found.
const MISSING_ID ErrorKind = 1

// INVALID_ID signals a malformed (or reserved) identifier.
const INVALID_ID ErrorKind = 2

// EMPTY_NUMBER signals a number was expected, but nothing was found.
const EMPTY_NUMBER ErrorKind = 3

// INVALID_NUMBER signals a malformed numeric literal.
const INVALID_NUMBER ErrorKind = 4

// UNEXPECTED_TOKEN signals that a keyword or symbol was expected, but
// something else was found.
const UNEXPECTED_TOKEN ErrorKind = 5

// UNEXPECTED_END signals that the empty alternative of a tail rule was
// rejected, because the lookahead was not an expected terminator.
const UNEXPECTED_END ErrorKind = 6

func (p ErrorKind) String() string {
	switch p {
	case INVALID_WORD:
		return "InvalidWord"
	case MISSING_ID:
		return "MissingId"
	case INVALID_ID:
		return "InvalidId"
	case EMPTY_NUMBER:
		return "EmptyNumber"
	case INVALID_NUMBER:
		return "InvalidNumber"
	case UNEXPECTED_TOKEN:
		return "UnexpectedToken"
	case UNEXPECTED_END:
		return "UnexpectedEnd"
	}
	//
	return fmt.Sprintf("ErrorKind(%d)", uint8(p))
}

// Diagnostic describes a failed attempt to match some part of the input.  The
// span starts at the (absolute) offset where the failure arose.
type Diagnostic struct {
	Kind ErrorKind
	source.SyntaxError
}

// Offset returns the absolute offset in the source text of this diagnostic.
func (p *Diagnostic) Offset() int {
	return p.Span().Start()
}

// Aggregator collects every diagnostic recorded during a single parse.  This
// retains the full history of failed attempts, from which the most likely
// cause of failure is later selected.
type Aggregator struct {
	diagnostics []*Diagnostic
}

// Record a given diagnostic.
func (p *Aggregator) Record(diagnostic *Diagnostic) {
	p.diagnostics = append(p.diagnostics, diagnostic)
}

// Len returns the number of diagnostics recorded.
func (p *Aggregator) Len() int {
	return len(p.diagnostics)
}

// SelectBest returns those diagnostics recorded at the furthest offset reached
// in the input, with duplicates (i.e. same offset and message) removed and
// their recorded order otherwise preserved.  The rationale is that the parser
// got furthest along these paths before failing, hence they are the most
// likely true cause.
func (p *Aggregator) SelectBest() []*Diagnostic {
	var (
		furthest = -1
		best     []*Diagnostic
	)
	//
	for _, d := range p.diagnostics {
		furthest = max(furthest, d.Offset())
	}
	//
	for _, d := range p.diagnostics {
		duplicate := func(b *Diagnostic) bool {
			return b.Offset() == d.Offset() && b.Message() == d.Message()
		}
		//
		if d.Offset() == furthest && !array.ContainsMatching(best, duplicate) {
			best = append(best, d)
		}
	}
	//
	return best
}
