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
package word

import (
	"fmt"
	"math/big"
)

// Int is an arbitrary precision signed integer.  Division and remainder
// truncate towards zero.
type Int struct {
	*big.Int
}

// NewInt constructs an integer word from a machine integer.
func NewInt(value int64) Int {
	return Int{big.NewInt(value)}
}

// SetString implementation for Word interface.
func (x Int) SetString(literal string) (Int, error) {
	val, ok := new(big.Int).SetString(literal, 10)
	//
	if !ok {
		return Int{}, fmt.Errorf("invalid integer literal \"%s\"", literal)
	}
	//
	return Int{val}, nil
}

// Add x + y
func (x Int) Add(y Int) Int {
	return Int{new(big.Int).Add(x.Int, y.Int)}
}

// Sub x - y
func (x Int) Sub(y Int) Int {
	return Int{new(big.Int).Sub(x.Int, y.Int)}
}

// Mul x * y
func (x Int) Mul(y Int) Int {
	return Int{new(big.Int).Mul(x.Int, y.Int)}
}

// Div x / y
func (x Int) Div(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	//
	return Int{new(big.Int).Quo(x.Int, y.Int)}, nil
}

// Mod x % y
func (x Int) Mod(y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	//
	return Int{new(big.Int).Rem(x.Int, y.Int)}, nil
}

// Pow x ^ y
func (x Int) Pow(y Int) (Int, error) {
	if y.Sign() < 0 {
		return Int{}, ErrNegativeExponent
	} else if y.Cmp(big.NewInt(MAX_EXPONENT)) > 0 {
		return Int{}, ErrExponentTooLarge
	}
	//
	return Int{new(big.Int).Exp(x.Int, y.Int, nil)}, nil
}

// IsZero implementation for Word interface.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

func (x Int) String() string {
	return x.Int.String()
}
