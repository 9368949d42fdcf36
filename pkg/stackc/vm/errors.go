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
	"errors"
	"fmt"

	"github.com/consensys/go-stackc/pkg/stackc/code"
)

// ErrStackUnderflow signals an attempt to pop from an empty stack.
var ErrStackUnderflow = errors.New("stack underflow")

// ErrUnknownVariable signals a read of a variable which was never assigned.
var ErrUnknownVariable = errors.New("unknown variable")

// ErrInvalidOperand signals a malformed literal, or an address found where a
// value was expected (or vice versa).
var ErrInvalidOperand = errors.New("invalid operand")

// ErrMissingHalt signals that execution ran past the last instruction.
var ErrMissingHalt = errors.New("missing HALT")

// ErrHalted signals an attempt to step a machine which has already halted.
var ErrHalted = errors.New("machine halted")

// Error describes a failure arising at a given point during execution.
type Error struct {
	// Program counter at which the failure arose.
	Pc uint
	// Instruction being executed (nil if pc is out of bounds).
	Instruction *code.Instruction
	// Underlying cause
	Err error
}

func (e *Error) Error() string {
	if e.Instruction == nil {
		return fmt.Sprintf("%s at pc %d", e.Err, e.Pc)
	}
	//
	return fmt.Sprintf("%s at pc %d (%s)", e.Err, e.Pc, e.Instruction.String())
}

func (e *Error) Unwrap() error {
	return e.Err
}
