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
	"os"
	"path"
	"strings"

	util "github.com/consensys/go-stackc/pkg/cmd"
	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/stackc/vm"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
	"github.com/consensys/go-stackc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("count", 10, "Number of programs to generate")
	rootCmd.Flags().Uint("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().Uint("depth", 3, "Maximum nesting depth of expressions")
	rootCmd.Flags().Uint("stmts", 4, "Maximum number of statements per program")
	rootCmd.Flags().String("dir", "testdata/valid", "Directory into which tests are written")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] name",
	Short: "Test generation utility for stackc.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		var cfg TestGenConfig
		//
		cfg.name = args[0]
		cfg.count = util.GetUint(cmd, "count")
		cfg.seed = util.GetUint(cmd, "seed")
		cfg.depth = util.GetUint(cmd, "depth")
		cfg.stmts = util.GetUint(cmd, "stmts")
		cfg.dir = util.GetString(cmd, "dir")
		// Generate & split programs
		accepted, rejected := generateTests(cfg)
		// Write out
		for _, test := range accepted {
			writeTest(test)
		}
		//
		log.Infof("Generated %d programs (%d rejected by the machine)", len(accepted), rejected)
		os.Exit(0)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	name  string
	dir   string
	count uint
	seed  uint
	depth uint
	stmts uint
}

// Test captures a generated program along with its expected outcome.
type Test struct {
	// Source file from which this test was generated
	Source *source.File
	// Translated program
	Program code.Program
	// Final variable bindings after execution
	Variables []vm.Variable[word.Int]
}

// Generate test programs.  Every generated program must translate, but only
// those which execute without error (e.g. no division by zero) are accepted.
func generateTests(cfg TestGenConfig) ([]Test, uint) {
	var (
		gen      = NewGenerator(uint64(cfg.seed), cfg.depth)
		accepted []Test
		rejected uint
	)
	//
	for i := uint(0); i < cfg.count; i++ {
		var (
			filename = path.Join(cfg.dir, fmt.Sprintf("%s_%02d.auto", cfg.name, i))
			srcfile  = source.NewSourceFile(filename+".stk", []byte(gen.Program(cfg.stmts)))
		)
		//
		program, errs := parser.Parse(srcfile)
		//
		if len(errs) > 0 {
			// Generator and parser disagree, which should be impossible.
			log.Errorf("generated program %s failed to translate: %s", filename, errs[0].Error())
			os.Exit(1)
		}
		//
		if vars, err := vm.ExecuteAll[word.Int](program.Code); err != nil {
			log.Debugf("rejected %s (%s)", filename, err)
			//
			rejected++
		} else {
			accepted = append(accepted, Test{srcfile, program, vars})
		}
	}
	//
	return accepted, rejected
}

func writeTest(test Test) {
	var (
		base = strings.TrimSuffix(test.Source.Filename(), ".stk")
		out  strings.Builder
		val  strings.Builder
	)
	//
	for _, line := range test.Program.Strings() {
		out.WriteString(line)
		out.WriteString("\n")
	}
	//
	for _, v := range test.Variables {
		val.WriteString(fmt.Sprintf("%s = %s\n", v.Name, v.Value))
	}
	//
	writeFile(test.Source.Filename(), string(test.Source.Contents()))
	writeFile(base+".out", out.String())
	writeFile(base+".val", val.String())
	// Log what happened
	log.Infof("Wrote %s (%d instructions)\n", test.Source.Filename(), len(test.Program.Code))
}

func writeFile(filename string, contents string) {
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		panic(err)
	}
}
