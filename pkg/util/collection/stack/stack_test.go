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
package stack

import (
	"testing"

	"github.com/consensys/go-stackc/pkg/util/assert"
)

func TestStack_00(t *testing.T) {
	stack := NewStack[int]()
	//
	assert.True(t, stack.IsEmpty())
	stack.Push(1)
	stack.Push(2)
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, 2, stack.Peek(0))
	assert.Equal(t, 1, stack.Peek(1))
	assert.Equal(t, 2, stack.Pop())
	assert.Equal(t, 1, stack.Pop())
	assert.True(t, stack.IsEmpty())
}

func TestStack_01(t *testing.T) {
	stack := NewStack[string]()
	//
	stack.Push("x")
	stack.Clear()
	assert.True(t, stack.IsEmpty())
}

func TestStack_02(t *testing.T) {
	stack := NewStack[string]()
	//
	stack.Push("a")
	stack.Push("b")
	items := stack.Items()
	// Copy is independent
	stack.Pop()
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, []string{"a"}, stack.Items())
}
