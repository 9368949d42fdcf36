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
package vm

import (
	"fmt"
	"maps"
	"slices"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
	"github.com/consensys/go-stackc/pkg/util/collection/stack"
)

// Variable is a named value in the environment of a machine.
type Variable[W any] struct {
	Name  string
	Value W
}

// cell is an item on the operand stack, which holds either an address (i.e.
// the name of a variable being assigned) or a value.
type cell[W word.Word[W]] struct {
	address string
	value   W
	isValue bool
}

func (p cell[W]) String() string {
	if p.isValue {
		return p.value.String()
	}
	//
	return fmt.Sprintf("&%s", p.address)
}

// Machine is a simple stack machine which executes a sequence of instructions
// over a given arithmetic domain.
type Machine[W word.Word[W]] struct {
	code   []code.Instruction
	pc     uint
	stack  *stack.Stack[cell[W]]
	env    map[string]W
	halted bool
}

// NewMachine constructs a machine positioned at the first of a given sequence
// of instructions, with an empty stack and environment.
func NewMachine[W word.Word[W]](insns []code.Instruction) *Machine[W] {
	return &Machine[W]{insns, 0, stack.NewStack[cell[W]](), make(map[string]W), false}
}

// ExecuteAll runs a given sequence of instructions to completion, returning the
// final value of every variable (sorted by name).
func ExecuteAll[W word.Word[W]](insns []code.Instruction) ([]Variable[W], error) {
	machine := NewMachine[W](insns)
	//
	if err := machine.Run(); err != nil {
		return nil, err
	}
	//
	return machine.Variables(), nil
}

// Pc returns the index of the next instruction to execute.
func (p *Machine[W]) Pc() uint {
	return p.pc
}

// Halted checks whether this machine has executed HALT.
func (p *Machine[W]) Halted() bool {
	return p.halted
}

// Stack returns a textual rendering of the operand stack (bottom first), where
// addresses are prefixed with "&".
func (p *Machine[W]) Stack() []string {
	var items []string
	//
	for _, item := range p.stack.Items() {
		items = append(items, item.String())
	}
	//
	return items
}

// Variables returns the current value of every assigned variable, sorted by
// name.
func (p *Machine[W]) Variables() []Variable[W] {
	var vars []Variable[W]
	//
	for _, name := range slices.Sorted(maps.Keys(p.env)) {
		vars = append(vars, Variable[W]{name, p.env[name]})
	}
	//
	return vars
}

// Run executes instructions until the machine halts, or an error arises.
func (p *Machine[W]) Run() error {
	for !p.halted {
		if err := p.Step(); err != nil {
			return err
		}
	}
	//
	return nil
}

// Step executes the next instruction.
func (p *Machine[W]) Step() error {
	if p.halted {
		return &Error{p.pc, nil, ErrHalted}
	} else if p.pc >= uint(len(p.code)) {
		return &Error{p.pc, nil, ErrMissingHalt}
	}
	//
	insn := &p.code[p.pc]
	//
	if err := p.execute(insn); err != nil {
		return &Error{p.pc, insn, err}
	}
	//
	p.pc++
	//
	return nil
}

func (p *Machine[W]) execute(insn *code.Instruction) error {
	switch insn.Opcode {
	case code.HALT:
		p.halted = true
	case code.LVALUE:
		p.stack.Push(cell[W]{address: insn.Operand})
	case code.RVALUE:
		val, ok := p.env[insn.Operand]
		//
		if !ok {
			return fmt.Errorf("%w '%s'", ErrUnknownVariable, insn.Operand)
		}
		//
		p.push(val)
	case code.PUSH:
		val, err := word.Parse[W](insn.Operand)
		//
		if err != nil {
			return fmt.Errorf("%w (%s)", ErrInvalidOperand, err.Error())
		}
		//
		p.push(val)
	case code.STO:
		return p.store()
	default:
		return p.binary(insn.Opcode)
	}
	//
	return nil
}

// Store the value on top of the stack into the address immediately beneath
// it.  An empty stack indicates there is nothing to flush.
func (p *Machine[W]) store() error {
	if p.stack.IsEmpty() {
		return nil
	}
	//
	val, err := p.pop()
	//
	if err != nil {
		return err
	} else if p.stack.IsEmpty() {
		return ErrStackUnderflow
	}
	//
	addr := p.stack.Pop()
	//
	if addr.isValue {
		return fmt.Errorf("%w (expected address, found %s)", ErrInvalidOperand, addr.String())
	}
	//
	p.env[addr.address] = val
	//
	return nil
}

func (p *Machine[W]) binary(opcode code.Opcode) error {
	var (
		result      W
		err         error
		right, rerr = p.pop()
		left, lerr  = p.pop()
	)
	//
	if rerr != nil {
		return rerr
	} else if lerr != nil {
		return lerr
	}
	//
	switch opcode {
	case code.ADD:
		result = left.Add(right)
	case code.SUB:
		result = left.Sub(right)
	case code.MPY:
		result = left.Mul(right)
	case code.DIV:
		result, err = left.Div(right)
	case code.MOD:
		result, err = left.Mod(right)
	case code.POW:
		result, err = left.Pow(right)
	default:
		return fmt.Errorf("unknown opcode %s", opcode)
	}
	//
	if err != nil {
		return err
	}
	//
	p.push(result)
	//
	return nil
}

func (p *Machine[W]) push(val W) {
	p.stack.Push(cell[W]{value: val, isValue: true})
}

// Pop a value off the stack.
func (p *Machine[W]) pop() (W, error) {
	var zero W
	//
	if p.stack.IsEmpty() {
		return zero, ErrStackUnderflow
	}
	//
	item := p.stack.Pop()
	//
	if !item.isValue {
		return zero, fmt.Errorf("%w (expected value, found %s)", ErrInvalidOperand, item.String())
	}
	//
	return item.value, nil
}
