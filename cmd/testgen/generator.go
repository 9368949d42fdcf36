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
package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var operators = []string{"+", "-", "*", "div", "mod"}

// Generator produces random (but syntactically valid) programs.  Statements
// only read variables assigned by earlier statements, though the resulting
// programs may still fail to execute (e.g. through division by zero).
type Generator struct {
	rng      *rand.Rand
	maxDepth uint
}

// NewGenerator constructs a generator from a given seed, such that the same
// seed always produces the same sequence of programs.
func NewGenerator(seed uint64, maxDepth uint) *Generator {
	return &Generator{rand.New(rand.NewPCG(seed, seed)), maxDepth}
}

// Program generates a program with upto n statements.  A trailing ';' is
// occasionally included, as this is permitted before "end".
func (p *Generator) Program(n uint) string {
	var (
		stmts []string
		vars  []string
		count = p.rng.UintN(n + 1)
	)
	//
	for i := uint(0); i < count; i++ {
		name := fmt.Sprintf("v%d", i)
		stmts = append(stmts, fmt.Sprintf("%s := %s", name, p.expr(vars, p.maxDepth)))
		vars = append(vars, name)
	}
	//
	body := strings.Join(stmts, ";\n  ")
	//
	if len(stmts) > 0 && p.rng.IntN(4) == 0 {
		body += ";"
	}
	//
	return fmt.Sprintf("begin\n  %s\nend\n", body)
}

func (p *Generator) expr(vars []string, depth uint) string {
	if depth == 0 {
		return p.leaf(vars)
	}
	//
	switch p.rng.IntN(5) {
	case 0:
		return p.leaf(vars)
	case 1:
		return fmt.Sprintf("(%s)", p.expr(vars, depth-1))
	case 2:
		// Exponents are kept small
		return fmt.Sprintf("%s ^ %d", p.leaf(vars), p.rng.IntN(4))
	default:
		op := operators[p.rng.IntN(len(operators))]
		return fmt.Sprintf("%s %s %s", p.expr(vars, depth-1), op, p.expr(vars, depth-1))
	}
}

func (p *Generator) leaf(vars []string) string {
	if len(vars) > 0 && p.rng.IntN(2) == 0 {
		return vars[p.rng.IntN(len(vars))]
	}
	//
	return fmt.Sprintf("%d", p.rng.IntN(100))
}
