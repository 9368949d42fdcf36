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
	"fmt"
	"strings"
)

// Opcode identifies an operation of the (hypothetical) stack machine.
type Opcode uint8

// HALT terminates execution.
const HALT Opcode = 0

// LVALUE pushes the address of a named variable.
const LVALUE Opcode = 1

// RVALUE pushes the contents of a named variable.
const RVALUE Opcode = 2

// PUSH pushes a literal value.
const PUSH Opcode = 3

// STO stores the value on top of the stack into the address beneath it.
const STO Opcode = 4

// ADD pops two values and pushes their sum.
const ADD Opcode = 5

// SUB pops two values and pushes their difference.
const SUB Opcode = 6

// MPY pops two values and pushes their product.
const MPY Opcode = 7

// DIV pops two values and pushes their quotient.
const DIV Opcode = 8

// MOD pops two values and pushes the remainder of their division.
const MOD Opcode = 9

// POW pops two values and pushes the first raised to the power of the second.
const POW Opcode = 10

var opcodeNames = []string{"HALT", "LVALUE", "RVALUE", "PUSH", "STO", "ADD", "SUB", "MPY", "DIV", "MOD", "POW"}

func (p Opcode) String() string {
	if int(p) < len(opcodeNames) {
		return opcodeNames[p]
	}
	//
	return fmt.Sprintf("OPCODE(%d)", uint8(p))
}

// HasOperand determines whether instructions with this opcode carry an
// operand (i.e. a variable name or literal).
func (p Opcode) HasOperand() bool {
	return p == LVALUE || p == RVALUE || p == PUSH
}

// ParseOpcode determines the opcode with the given name, or returns false if
// no such opcode exists.
func ParseOpcode(name string) (Opcode, bool) {
	for i, n := range opcodeNames {
		if n == name {
			return Opcode(i), true
		}
	}
	//
	return 0, false
}

// Instruction represents a single emitted stack-machine instruction.  Every
// instruction is stamped with a unique identifier at the point of emission,
// which is used to refer to it (e.g. for rollback).
type Instruction struct {
	// Unique identifier (emission order)
	Id uint
	// Operation to perform
	Opcode Opcode
	// Variable name or literal (if applicable)
	Operand string
}

func (p Instruction) String() string {
	if p.Opcode.HasOperand() {
		return fmt.Sprintf("%s %s", p.Opcode, p.Operand)
	}
	//
	return p.Opcode.String()
}

// ParseInstruction parses an instruction from its textual representation (e.g.
// "PUSH 5" or "ADD"), assigning it a given identifier.
func ParseInstruction(id uint, text string) (Instruction, error) {
	var (
		fields     = strings.Fields(text)
		opcode, ok = Opcode(0), false
	)
	//
	if len(fields) != 0 {
		opcode, ok = ParseOpcode(fields[0])
	}
	//
	switch {
	case !ok:
		return Instruction{}, fmt.Errorf("unknown instruction \"%s\"", text)
	case opcode.HasOperand() && len(fields) != 2:
		return Instruction{}, fmt.Errorf("instruction %s requires one operand", opcode)
	case !opcode.HasOperand() && len(fields) != 1:
		return Instruction{}, fmt.Errorf("instruction %s has no operands", opcode)
	case opcode.HasOperand():
		return Instruction{id, opcode, fields[1]}, nil
	}
	//
	return Instruction{id, opcode, ""}, nil
}
