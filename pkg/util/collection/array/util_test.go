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
package array

import (
	"testing"

	"github.com/consensys/go-stackc/pkg/util/assert"
)

func TestRemoveMatching_00(t *testing.T) {
	items := RemoveMatching([]uint{0, 1, 2, 3, 4}, isOdd)
	assert.Equal(t, []uint{0, 2, 4}, items)
}

func TestRemoveMatching_01(t *testing.T) {
	items := []uint{0, 2, 4}
	// Nothing to remove, hence the original array is returned
	assert.Equal(t, items, RemoveMatching(items, isOdd))
}

func TestRemoveMatching_02(t *testing.T) {
	items := RemoveMatching([]uint{1, 3}, isOdd)
	assert.Equal(t, 0, len(items))
}

func TestContainsMatching_00(t *testing.T) {
	assert.True(t, ContainsMatching([]uint{0, 2, 3}, isOdd))
	assert.False(t, ContainsMatching([]uint{0, 2, 4}, isOdd))
	assert.False(t, ContainsMatching([]uint{}, isOdd))
}

func isOdd(item uint) bool {
	return item%2 == 1
}
