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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/trace"
	"github.com/consensys/go-stackc/pkg/stackc/vm"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
	"github.com/consensys/go-stackc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// DOMAIN_INT identifies arbitrary precision integer arithmetic.
const DOMAIN_INT = "INT"

// DOMAIN_BLS12_377 identifies arithmetic in the scalar field of BLS12-377.
const DOMAIN_BLS12_377 = "BLS12_377"

var executeCmd = &cobra.Command{
	Use:   "execute [flags] source_file",
	Short: "Translate a source file and execute it on the stack machine.",
	Long: `Translate a given source file into stack machine code, and then execute
	that code printing the final value of every variable.  Execution can be
	performed over different arithmetic domains.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDomainAgnosticCmd(cmd, args, executeCmds)
	},
}

// DomainAgnosticCmd represents a command to be executed for a given arithmetic
// domain.
type DomainAgnosticCmd struct {
	Domain   string
	Function func(*cobra.Command, []string)
}

// Available instances
var executeCmds = []DomainAgnosticCmd{
	{DOMAIN_INT, runExecuteCmd[word.Int]},
	{DOMAIN_BLS12_377, runExecuteCmd[word.Bls12_377]},
}

// Run a domain agnostic top-level command.
func runDomainAgnosticCmd(cmd *cobra.Command, args []string, cmds []DomainAgnosticCmd) {
	var domain = strings.ToUpper(GetString(cmd, "domain"))
	// Find command to dispatch
	for _, c := range cmds {
		if c.Domain == domain {
			c.Function(cmd, args)
			return
		}
	}
	//
	fmt.Printf("unknown domain \"%s\"\n", domain)
	os.Exit(EXIT_USAGE)
}

func runExecuteCmd[W word.Word[W]](cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(EXIT_USAGE)
	}
	//
	var (
		srcfile = readSourceFile(args[0])
		ansi    = termio.IsTerminal(os.Stdout)
		config  = translateConfig{ansi: ansi}
		out     io.Writer = io.Discard
	)
	//
	if GetFlag(cmd, "dump") {
		out = os.Stdout
	}
	//
	program, errs := translate(out, srcfile, config)
	//
	if len(errs) > 0 {
		printDiagnostics(os.Stdout, errs, ansi)
		os.Exit(EXIT_SYNTAX)
	}
	//
	steps, vars, err := execute[W](program.Code, GetFlag(cmd, "trace"))
	//
	if len(steps) > 0 {
		printer := trace.NewPrinter().AnsiEscapes(ansi).Highlight(func(s trace.Step) bool {
			return err != nil && s.Pc == failingPc(err)
		})
		//
		if width, ok := termio.Width(os.Stdout); ok {
			printer.MaxCellWidth(width / 2)
		}
		//
		printer.Print(os.Stdout, steps)
	}
	//
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_EXECUTION)
	}
	//
	for _, v := range vars {
		fmt.Printf("%s = %s\n", v.Name, v.Value.String())
	}
}

// Execute a given program, optionally recording every step taken.  When an
// error arises, the steps upto (and including) the failing instruction are
// still returned.
func execute[W word.Word[W]](insns []code.Instruction, record bool) ([]trace.Step, []vm.Variable[W], error) {
	var (
		machine = vm.NewMachine[W](insns)
		steps   []trace.Step
	)
	//
	for !machine.Halted() {
		var (
			pc  = machine.Pc()
			err = machine.Step()
		)
		//
		if record && pc < uint(len(insns)) {
			steps = append(steps, trace.Step{Pc: pc, Instruction: insns[pc], Stack: machine.Stack()})
		}
		//
		if err != nil {
			return steps, nil, err
		}
	}
	//
	log.Debugf("executed %d instructions", machine.Pc())
	//
	return steps, machine.Variables(), nil
}

// Determine the program counter at which an execution error arose.
func failingPc(err error) uint {
	var vmerr *vm.Error
	//
	if errors.As(err, &vmerr) {
		return vmerr.Pc
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(executeCmd)
	executeCmd.Flags().String("domain", defaults.Domain, "arithmetic domain to use (INT or BLS12_377)")
	executeCmd.Flags().Bool("dump", false, "print the translated code before executing it")
	executeCmd.Flags().Bool("trace", false, "print every step of execution")
}
