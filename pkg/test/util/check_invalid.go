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

	"github.com/consensys/go-stackc/pkg/stackc/parser"
)

// CheckInvalid checks that a given source file fails to translate, reporting
// exactly those diagnostics given in the corresponding "err" file (one per
// line, in the form "message at line L pos P").
// nolint
func CheckInvalid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, SOURCE_EXT)
		errfile  = fmt.Sprintf("%s/%s.err", TestDir, test)
		actual   []string
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Translate source file to produce errors
	_, errs := parser.Parse(srcfile)
	//
	for _, err := range errs {
		actual = append(actual, err.Error())
	}
	// Check program did not translate!
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have translated\n", filename)
	} else if expected, ok := readExpectedLines(t, errfile); !ok {
		t.Fatalf("Error %s has no expected errors\n", filename)
	} else {
		checkExpectedLines(t, errfile, "error", actual, expected)
	}
}
