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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Bls12_377 is an element of the scalar field of the BLS12-377 curve.  Literals
// are reduced modulo the field order, and division multiplies by the inverse.
type Bls12_377 struct {
	*fr.Element
}

// NewBls12_377 constructs a field element from a machine integer.
func NewBls12_377(value uint64) Bls12_377 {
	val := fr.NewElement(value)
	return Bls12_377{&val}
}

// SetString implementation for Word interface.
func (x Bls12_377) SetString(literal string) (Bls12_377, error) {
	val, err := new(fr.Element).SetString(literal)
	//
	if err != nil {
		return Bls12_377{}, err
	}
	//
	return Bls12_377{val}, nil
}

// Add x + y
func (x Bls12_377) Add(y Bls12_377) Bls12_377 {
	return Bls12_377{new(fr.Element).Add(x.Element, y.Element)}
}

// Sub x - y
func (x Bls12_377) Sub(y Bls12_377) Bls12_377 {
	return Bls12_377{new(fr.Element).Sub(x.Element, y.Element)}
}

// Mul x * y
func (x Bls12_377) Mul(y Bls12_377) Bls12_377 {
	return Bls12_377{new(fr.Element).Mul(x.Element, y.Element)}
}

// Div x * y⁻¹
func (x Bls12_377) Div(y Bls12_377) (Bls12_377, error) {
	if y.IsZero() {
		return Bls12_377{}, ErrDivisionByZero
	}
	//
	inverse := new(fr.Element).Inverse(y.Element)
	//
	return Bls12_377{new(fr.Element).Mul(x.Element, inverse)}, nil
}

// Mod is not defined for field elements.
func (x Bls12_377) Mod(y Bls12_377) (Bls12_377, error) {
	return Bls12_377{}, ErrUnsupported
}

// Pow x ^ y, where y is interpreted as its canonical (non-negative) integer.
func (x Bls12_377) Pow(y Bls12_377) (Bls12_377, error) {
	exponent := y.BigInt(new(big.Int))
	//
	return Bls12_377{new(fr.Element).Exp(*x.Element, exponent)}, nil
}

// IsZero implementation for Word interface.
func (x Bls12_377) IsZero() bool {
	return x.Element.IsZero()
}

func (x Bls12_377) String() string {
	return x.Element.String()
}
