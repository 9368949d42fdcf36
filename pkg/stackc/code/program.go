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
package code

import (
	"github.com/consensys/go-stackc/pkg/util/source"
)

// Program is the result of successfully translating a source file.  It
// consists of the emitted instruction sequence, along with a mapping from each
// instruction back to the text which gave rise to it.
type Program struct {
	// Instructions in execution order.
	Code []Instruction
	// Maps instruction identifiers to their originating text.
	SourceMap *source.Map[uint]
}

// NewProgram constructs a new program from a given instruction sequence and
// source map.
func NewProgram(code []Instruction, srcmap *source.Map[uint]) Program {
	return Program{code, srcmap}
}

// Strings returns the textual representation of each instruction in this
// program.
func (p Program) Strings() []string {
	lines := make([]string, len(p.Code))
	//
	for i, insn := range p.Code {
		lines[i] = insn.String()
	}
	//
	return lines
}
