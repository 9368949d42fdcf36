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
package test

import (
	"testing"

	"github.com/consensys/go-stackc/pkg/test/util"
)

// ===================================================================
// Basic Tests
// ===================================================================

func Test_Valid_Empty(t *testing.T) {
	util.CheckValid(t, "valid/empty")
}

func Test_Valid_Basic_01(t *testing.T) {
	util.CheckValid(t, "valid/basic_01")
}

func Test_Valid_Basic_02(t *testing.T) {
	util.CheckValid(t, "valid/basic_02")
}

func Test_Valid_Basic_03(t *testing.T) {
	util.CheckValid(t, "valid/basic_03")
}

// ===================================================================
// Operator Tests
// ===================================================================

func Test_Valid_Assoc_01(t *testing.T) {
	util.CheckValid(t, "valid/assoc_01")
}

func Test_Valid_Assoc_02(t *testing.T) {
	util.CheckValid(t, "valid/assoc_02")
}

func Test_Valid_Pow_01(t *testing.T) {
	util.CheckValid(t, "valid/pow_01")
}

func Test_Valid_Glued_01(t *testing.T) {
	util.CheckValid(t, "valid/glued_01")
}

func Test_Valid_Paren_01(t *testing.T) {
	util.CheckValid(t, "valid/paren_01")
}
