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
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
)

// TreePrinter writes an indented tree of the rules attempted during a parse,
// along with the words accepted and the instructions emitted (or rolled back)
// by them.
type TreePrinter struct {
	out   io.Writer
	depth int
}

// NewTreePrinter constructs a printer which writes to a given writer.
func NewTreePrinter(out io.Writer) *TreePrinter {
	return &TreePrinter{out, 0}
}

// Enter implementation for parser.Observer interface.
func (p *TreePrinter) Enter(rule parser.Rule, offset int) {
	p.println(fmt.Sprintf("<%s @%d", rule, offset))
	p.depth++
}

// Exit implementation for parser.Observer interface.
func (p *TreePrinter) Exit(rule parser.Rule, ok bool) {
	var outcome = "failed"
	//
	if ok {
		outcome = "ok"
	}
	//
	p.depth = max(0, p.depth-1)
	p.println(fmt.Sprintf(">%s %s", rule, outcome))
}

// Accept implementation for parser.Observer interface.
func (p *TreePrinter) Accept(kind parser.TokenKind, word string) {
	p.println(fmt.Sprintf("* %s '%s'", kind, word))
}

// Emit implementation for parser.Observer interface.
func (p *TreePrinter) Emit(insn code.Instruction) {
	p.println(fmt.Sprintf("* emit #%d %s", insn.Id, insn.String()))
}

// Rollback implementation for parser.Observer interface.
func (p *TreePrinter) Rollback(ids []uint) {
	var builder strings.Builder
	//
	for _, id := range ids {
		builder.WriteString(fmt.Sprintf(" #%d", id))
	}
	//
	p.println(fmt.Sprintf("* rollback%s", builder.String()))
}

func (p *TreePrinter) println(line string) {
	_, _ = fmt.Fprintf(p.out, "%s%s\n", strings.Repeat("  ", p.depth), line)
}
