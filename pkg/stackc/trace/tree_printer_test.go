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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/util/assert"
	"github.com/consensys/go-stackc/pkg/util/source"
)

func TestTreePrinter_00(t *testing.T) {
	checkTree(t, "begin end",
		"<program @0",
		"  * keyword 'begin'",
		"  <stmt_list @5",
		"    <expr' @5",
		"      * empty 'end'",
		"    >expr' ok",
		"  >stmt_list ok",
		"  * keyword 'end'",
		"  * emit #0 HALT",
		">program ok")
}

func TestTreePrinter_01(t *testing.T) {
	checkTree(t, "end",
		"<program @0",
		">program failed")
}

func TestTreePrinter_02(t *testing.T) {
	var buf bytes.Buffer
	//
	printer := NewTreePrinter(&buf)
	printer.Emit(code.Instruction{Id: 3, Opcode: code.PUSH, Operand: "5"})
	printer.Rollback([]uint{1, 3})
	//
	assert.Equal(t, "* emit #3 PUSH 5\n* rollback #1 #3\n", buf.String())
}

func TestTreePrinter_03(t *testing.T) {
	var (
		text    = []string{"begin x := (1 + 2) * 3; y := x ^ 2 end"}
		buf     bytes.Buffer
		plain   = parser.NewParser(nil)
		printer = parser.NewParser(NewTreePrinter(&buf))
	)
	// Observation does not affect the outcome
	p1, errs1 := plain.Parse(source.NewSourceText("test", text))
	p2, errs2 := printer.Parse(source.NewSourceText("test", text))
	//
	assert.Equal(t, 0, len(errs1))
	assert.Equal(t, 0, len(errs2))
	assert.Equal(t, p1.Strings(), p2.Strings())
	assert.True(t, strings.Contains(buf.String(), "* rollback"))
}

// ==================================================================
// Framework
// ==================================================================

func checkTree(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	parser.NewParser(NewTreePrinter(&buf)).Parse(source.NewSourceText("test", []string{text}))
	//
	assert.Equal(t, strings.Join(expected, "\n")+"\n", buf.String())
}
