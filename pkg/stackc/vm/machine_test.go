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
	"testing"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
	"github.com/consensys/go-stackc/pkg/util/assert"
	"github.com/consensys/go-stackc/pkg/util/source"
)

func TestMachine_Int_00(t *testing.T) {
	checkInt(t, "begin end")
}

func TestMachine_Int_01(t *testing.T) {
	checkInt(t, "begin x := 2 + 3 * 4 end", "x = 14")
}

func TestMachine_Int_02(t *testing.T) {
	// Additive operators associate to the right
	checkInt(t, "begin x := 5 - 2 - 1 end", "x = 4")
}

func TestMachine_Int_03(t *testing.T) {
	checkInt(t, "begin a := 7 div 2; b := 7 mod 2; c := 2 ^ 3 ^ 2 end", "a = 3", "b = 1", "c = 512")
}

func TestMachine_Int_04(t *testing.T) {
	checkInt(t, "begin x := 1; end", "x = 1")
}

func TestMachine_Int_05(t *testing.T) {
	checkInt(t, "begin y := 3; x := y * (y + 1); y := x - 20 end", "x = 12", "y = -8")
}

func TestMachine_Int_06(t *testing.T) {
	checkInt(t, "begin x := 5div3 end", "x = 1")
}

func TestMachine_Bls12_377_00(t *testing.T) {
	checkBls12_377(t, "begin x := 1 div 2; y := x * 2 end",
		"x = 4222230874714185212124412469390773265687949667577031913967616727958704619521", "y = 1")
}

func TestMachine_Bls12_377_01(t *testing.T) {
	checkBls12_377(t, "begin x := 2 ^ 10 end", "x = 1024")
}

func TestMachine_Error_00(t *testing.T) {
	checkFailure[word.Int](t, ErrUnknownVariable, 1, "begin x := y end")
}

func TestMachine_Error_01(t *testing.T) {
	checkFailure[word.Int](t, word.ErrDivisionByZero, 3, "begin x := 1 div 0 end")
}

func TestMachine_Error_02(t *testing.T) {
	checkFailure[word.Int](t, word.ErrDivisionByZero, 5, "begin x := 1 mod (2 - 2) end")
}

func TestMachine_Error_03(t *testing.T) {
	checkFailure[word.Bls12_377](t, word.ErrUnsupported, 3, "begin x := 7 mod 2 end")
}

func TestMachine_Error_04(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "PUSH 1", "PUSH 2", "ADD"))
	checkError(t, err, ErrMissingHalt, 3)
}

func TestMachine_Error_05(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "PUSH 1", "ADD", "HALT"))
	checkError(t, err, ErrStackUnderflow, 1)
}

func TestMachine_Error_06(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "PUSH 1", "STO", "HALT"))
	checkError(t, err, ErrStackUnderflow, 1)
}

func TestMachine_Error_07(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "LVALUE x", "LVALUE y", "ADD", "HALT"))
	checkError(t, err, ErrInvalidOperand, 2)
}

func TestMachine_Error_08(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "PUSH x1", "HALT"))
	checkError(t, err, ErrInvalidOperand, 0)
}

func TestMachine_Step_00(t *testing.T) {
	machine := NewMachine[word.Int](assemble(t, "LVALUE x", "PUSH 3", "STO", "HALT"))
	//
	assert.NoError(t, machine.Step())
	assert.NoError(t, machine.Step())
	assert.Equal(t, []string{"&x", "3"}, machine.Stack())
	assert.Equal(t, 2, machine.Pc())
	assert.NoError(t, machine.Step())
	assert.Equal(t, 0, len(machine.Stack()))
	assert.NoError(t, machine.Step())
	assert.True(t, machine.Halted())
	// Cannot step further
	checkError(t, machine.Step(), ErrHalted, 4)
}

func TestMachine_Error_09(t *testing.T) {
	_, err := ExecuteAll[word.Int](assemble(t, "RVALUE z", "HALT"))
	//
	assert.Equal(t, "unknown variable 'z' at pc 0 (RVALUE z)", err.Error())
}

// ==================================================================
// Framework
// ==================================================================

func checkInt(t *testing.T, text string, expected ...string) {
	t.Helper()
	checkExecution[word.Int](t, text, expected...)
}

func checkBls12_377(t *testing.T, text string, expected ...string) {
	t.Helper()
	checkExecution[word.Bls12_377](t, text, expected...)
}

func checkExecution[W word.Word[W]](t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	vars, err := ExecuteAll[W](translate(t, text))
	assert.NoError(t, err)
	//
	var actual []string
	//
	for _, v := range vars {
		actual = append(actual, v.Name+" = "+v.Value.String())
	}
	//
	assert.Equal(t, expected, actual)
}

func checkFailure[W word.Word[W]](t *testing.T, expected error, pc uint, text string) {
	t.Helper()
	//
	_, err := ExecuteAll[W](translate(t, text))
	checkError(t, err, expected, pc)
}

func checkError(t *testing.T, err error, expected error, pc uint) {
	t.Helper()
	//
	var vmerr *Error
	//
	if !errors.As(err, &vmerr) {
		t.Fatalf("expected execution error, got %v", err)
	}
	//
	assert.True(t, errors.Is(err, expected), "expected %s, got %s", expected, err)
	assert.Equal(t, pc, vmerr.Pc)
}

func translate(t *testing.T, text string) []code.Instruction {
	t.Helper()
	//
	program, errs := parser.Parse(source.NewSourceText("test", []string{text}))
	//
	for _, err := range errs {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	return program.Code
}

func assemble(t *testing.T, lines ...string) []code.Instruction {
	t.Helper()
	//
	insns := make([]code.Instruction, len(lines))
	//
	for i, line := range lines {
		insn, err := code.ParseInstruction(uint(i), line)
		assert.NoError(t, err)
		//
		insns[i] = insn
	}
	//
	return insns
}
