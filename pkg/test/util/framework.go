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
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-stackc/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the source files (stk) and their expected outcomes are found.
const TestDir = "../../testdata"

// SOURCE_EXT is the extension used for all source files.
const SOURCE_EXT = "stk"

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read source file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Read the expected outcome of a given test, which is one item per (non-blank)
// line.  The second return indicates whether or not the file existed at all.
func readExpectedLines(t *testing.T, filename string) ([]string, bool) {
	var lines []string
	//
	bytes, err := os.ReadFile(filename)
	//
	if os.IsNotExist(err) {
		return nil, false
	} else if err != nil {
		t.Fatal(err)
	}
	//
	for _, line := range strings.Split(string(bytes), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	//
	return lines, true
}

// Compare actual against expected lines, reporting every mismatch in one go.
func checkExpectedLines(t *testing.T, filename string, what string, actual, expected []string) {
	failed := false
	// Construct initial message
	msg := fmt.Sprintf("Error %s\n", filename)
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) && actual[i] == expected[i] {
			continue
		}
		// Indicate error arose
		failed = true
		// actual
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected %s \"%s\" (line %d)\n", msg, what, actual[i], i+1)
		}
		// expected
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected %s \"%s\" (line %d)\n", msg, what, expected[i], i+1)
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}
