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
package util

import (
	"fmt"
	"testing"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/stackc/vm"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
)

// CheckValid checks that a given source file translates without errors into
// exactly the instruction sequence given in the corresponding "out" file.  If
// a "val" file is also present, then the translated program is executed over
// the integers and the final value of every variable is compared against it.
// nolint
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, SOURCE_EXT)
		outfile  = fmt.Sprintf("%s/%s.out", TestDir, test)
		valfile  = fmt.Sprintf("%s/%s.val", TestDir, test)
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Translate source file
	program, errs := parser.Parse(srcfile)
	//
	if len(errs) > 0 {
		msg := fmt.Sprintf("Error %s should have translated\n", filename)
		for _, err := range errs {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, err.Error())
		}
		//
		t.Fatal(msg)
	}
	// Check generated instructions
	if expected, ok := readExpectedLines(t, outfile); !ok {
		t.Fatalf("Error %s has no expected output\n", filename)
	} else {
		checkExpectedLines(t, outfile, "instruction", program.Strings(), expected)
	}
	// Check computed values (if applicable)
	if expected, ok := readExpectedLines(t, valfile); ok {
		checkExpectedLines(t, valfile, "value", executeProgram(t, program), expected)
	}
}

// Execute a given program over the integers, returning the final variable
// bindings as "name = value" strings.
func executeProgram(t *testing.T, program code.Program) []string {
	var lines []string
	//
	vars, err := vm.ExecuteAll[word.Int](program.Code)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("%s = %s", v.Name, v.Value))
	}
	//
	return lines
}
