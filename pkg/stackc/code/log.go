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
	"github.com/consensys/go-stackc/pkg/util/collection/array"
	"github.com/consensys/go-stackc/pkg/util/collection/set"
)

// Log is an append-only record of emitted instructions.  Instructions can only
// be removed from the log by rolling back their identifiers, which happens
// when the grammar rule responsible for them is abandoned.  Identifiers are
// drawn from a monotone counter and are never reused, even after rollback.
type Log struct {
	instructions []Instruction
	// Identifier for the next emitted instruction.
	next uint
}

// NewLog constructs an empty instruction log.
func NewLog() *Log {
	return &Log{nil, 0}
}

// Emit appends a new instruction to the log, returning its identifier.
func (p *Log) Emit(opcode Opcode, operand string) uint {
	id := p.next
	p.next++
	p.instructions = append(p.instructions, Instruction{id, opcode, operand})
	//
	return id
}

// Rollback removes every instruction whose identifier is given, preserving the
// relative order of those remaining.  Identifiers not present in the log are
// ignored.
func (p *Log) Rollback(ids ...uint) {
	if len(ids) == 0 {
		return
	}
	//
	removed := set.NewSortedSet(ids...)
	//
	p.instructions = array.RemoveMatching(p.instructions, func(insn Instruction) bool {
		return removed.Contains(insn.Id)
	})
}

// Len returns the number of instructions currently in the log.
func (p *Log) Len() uint {
	return uint(len(p.instructions))
}

// Instructions returns a copy of the instructions currently in the log, in
// emission order.
func (p *Log) Instructions() []Instruction {
	insns := make([]Instruction, len(p.instructions))
	copy(insns, p.instructions)
	//
	return insns
}
