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
	"math"
	"strings"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/util/termio"
)

// Step records the state of a machine immediately after executing a given
// instruction.
type Step struct {
	// Program counter of the executed instruction
	Pc uint
	// Instruction executed
	Instruction code.Instruction
	// Operand stack after execution (bottom first)
	Stack []string
}

// Highlighter identifies steps which should be highlighted.
type Highlighter = func(Step) bool

// Printer encapsulates various configuration options useful for printing out
// execution traces in human-readable forms.
type Printer struct {
	// Which steps to highlight
	highlighter Highlighter
	// Determine maximum width to print
	maxCellWidth uint
	// Enable ANSI
	ansiEscapes bool
}

// NewPrinter constructs a default printer
func NewPrinter() *Printer {
	// Highlight nothing by default
	emptyHighlighter := func(Step) bool {
		return false
	}
	//
	return &Printer{emptyHighlighter, math.MaxUint, true}
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// Highlight configures a filter for steps which should be highlighted.  By
// default, no steps are highlighted.
func (p *Printer) Highlight(highlighter Highlighter) *Printer {
	p.highlighter = highlighter
	return p
}

// MaxCellWidth sets the maximum width to use for the cell data.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// Print a given sequence of steps as a table with one row per step.
func (p *Printer) Print(out io.Writer, steps []Step) {
	var (
		tp              = termio.NewTablePrinter(3, uint(1+len(steps)))
		titleEscape     = termio.NewAnsiEscape().FgColour(termio.TERM_WHITE)
		highlightEscape = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	tp.SetRow(0, "pc", "instruction", "stack")
	//
	for col := uint(0); col < 3; col++ {
		tp.SetEscape(col, 0, titleEscape)
	}
	//
	for i, step := range steps {
		row := uint(i + 1)
		pc := fmt.Sprintf("%d", step.Pc)
		//
		if p.highlighter(step) && !p.ansiEscapes {
			// In a non-ANSI environment, use a marker "*" instead.
			pc = "*" + pc
		} else if p.highlighter(step) {
			tp.SetEscape(1, row, highlightEscape)
		}
		//
		tp.SetRow(row, pc, step.Instruction.String(), strings.Join(step.Stack, " "))
	}
	//
	tp.SetMaxWidths(p.maxCellWidth)
	tp.AnsiEscapes(p.ansiEscapes)
	tp.Print(out)
}
