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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/util/source"
	"github.com/consensys/go-stackc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EXIT_USAGE indicates invalid flags or arguments.
const EXIT_USAGE = 2

// EXIT_INPUT indicates the input file could not be read.
const EXIT_INPUT = 3

// EXIT_SYNTAX indicates the input file could not be parsed.
const EXIT_SYNTAX = 4

// EXIT_EXECUTION indicates a failure when executing a translated program.
const EXIT_EXECUTION = 5

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// Determine the input file for a command.  This is either given explicitly as
// an argument or, when none is given and stdin is a terminal, requested from
// the user.
func getInputFile(cmd *cobra.Command, args []string, defaultFile string) string {
	switch {
	case len(args) == 1:
		return args[0]
	case len(args) == 0 && termio.IsTerminal(os.Stdin):
		filename, err := promptInputFile(os.Stdin, os.Stdout, defaultFile, fileExists)
		//
		if err == nil {
			return filename
		}
		//
		log.Error(err)
		os.Exit(EXIT_INPUT)
	}
	//
	fmt.Println(cmd.UsageString())
	os.Exit(EXIT_USAGE)
	// unreachable
	return ""
}

// Repeatedly ask the user for the name of an input file, until an existing
// file is given.  An empty answer selects the default.
func promptInputFile(in io.Reader, out io.Writer, defaultFile string, exists func(string) bool) (string, error) {
	scanner := bufio.NewScanner(in)
	//
	for {
		fmt.Fprintf(out, "Input file name [Default %s]: ", defaultFile)
		//
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			//
			return "", errors.New("no input file given")
		}
		//
		filename := strings.TrimSpace(scanner.Text())
		//
		if filename == "" {
			filename = defaultFile
		}
		//
		if exists(filename) {
			fmt.Fprintf(out, "Found file %s\n", filename)
			return filename, nil
		}
		//
		fmt.Fprintf(out, "could not find file %s\n", filename)
	}
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

// Read a given source file, or exit if this is not possible.
func readSourceFile(filename string) *source.File {
	log.Debugf("reading source file %s", filename)
	//
	files, err := source.ReadFiles(filename)
	//
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_INPUT)
	}
	//
	return &files[0]
}

// Print the diagnostics arising from a failed parse, in order, with
// appropriate highlighting.
func printDiagnostics(out io.Writer, errs []*parser.Diagnostic, ansi bool) {
	fmt.Fprintln(out, "Possible errors:")
	//
	for i, err := range errs {
		fmt.Fprintf(out, "%d %s\n", i, err.Error())
		printSyntaxError(out, &err.SyntaxError, ansi)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError, ansi bool) {
	var (
		span = err.Span()
		line = err.FirstEnclosingLine()
		// Offset of error within line
		offset = max(0, span.Start()-line.Start())
		// Length of highlight (ensures don't overflow line)
		length = max(1, min(line.Length()-offset, span.Length()))
		caret  = strings.Repeat("^", length)
	)
	//
	if ansi {
		caret = termio.BoldAnsiEscape().FgColour(termio.TERM_RED).Apply(caret)
	}
	// Print line
	fmt.Fprintf(out, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), line.String())
	// Print indent, accounting for the filename prefix
	prefix := len(fmt.Sprintf("%s:%d: ", err.SourceFile().Filename(), line.Number()))
	fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", prefix+offset), caret)
}
