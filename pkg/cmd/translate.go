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
	"fmt"
	"io"
	"math"
	"os"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/stackc/trace"
	"github.com/consensys/go-stackc/pkg/util"
	"github.com/consensys/go-stackc/pkg/util/source"
	"github.com/consensys/go-stackc/pkg/util/termio"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] [source_file]",
	Short: "Translate a source file into stack machine code.",
	Long: `Translate a given source file into stack machine code, printing the
	generated instructions (or any errors found).  When no source file is given,
	the user is prompted for one.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = getInputFile(cmd, args, defaults.Input)
			srcfile  = readSourceFile(filename)
			config   = translateConfig{
				print: GetFlag(cmd, "print"),
				time:  GetFlag(cmd, "time"),
				ansi:  termio.IsTerminal(os.Stdout),
			}
		)
		//
		if _, errs := translate(os.Stdout, srcfile, config); len(errs) > 0 {
			printDiagnostics(os.Stdout, errs, config.ansi)
			os.Exit(EXIT_SYNTAX)
		}
	},
}

// translateConfig encapsulates options affecting translation.
type translateConfig struct {
	// Print the parse tree
	print bool
	// Report parse time
	time bool
	// Use ANSI escapes for highlighting
	ansi bool
}

// Translate a given source file, writing the generated code (and, optionally,
// the parse tree) to a given writer.  Any diagnostics are returned rather than
// printed.
func translate(out io.Writer, srcfile *source.File, config translateConfig) (code.Program, []*parser.Diagnostic) {
	var (
		observer parser.Observer
		stats    = util.NewPerfStats()
	)
	//
	if config.print {
		observer = trace.NewTreePrinter(out)
	}
	//
	program, errs := parser.NewParser(observer).Parse(srcfile)
	elapsed := stats.Elapsed()
	stats.Log("Parsing")
	//
	if len(errs) > 0 {
		return program, errs
	}
	//
	if config.time {
		fmt.Fprintf(out, "Parse time: %f\n", math.Round(elapsed.Seconds()*1000)/1000)
	}
	//
	fmt.Fprintln(out, "Finished parsing with no errors.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Printing generated output:")
	//
	for _, line := range program.Strings() {
		fmt.Fprintln(out, line)
	}
	//
	return program, nil
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().Bool("print", defaults.Print, "print the parse tree")
	translateCmd.Flags().Bool("time", defaults.Time, "report how long parsing takes")
}
