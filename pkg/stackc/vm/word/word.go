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
	"errors"
	"fmt"
)

// ErrDivisionByZero signals an attempt to divide by zero (or to compute a
// remainder modulo zero).
var ErrDivisionByZero = errors.New("division by zero")

// ErrNegativeExponent signals an attempt to raise an integer to a negative
// power.
var ErrNegativeExponent = errors.New("negative exponent")

// ErrExponentTooLarge signals an exponent beyond MAX_EXPONENT.
var ErrExponentTooLarge = errors.New("exponent too large")

// ErrUnsupported signals an operation not defined in a given domain.
var ErrUnsupported = errors.New("unsupported operation")

// MAX_EXPONENT bounds the exponents permitted for (unbounded) integers.
const MAX_EXPONENT = 1 << 16

// Word represents a value in some arithmetic domain on which programs can be
// executed.  Operations never modify their operands.  Operations which are
// partial return an error rather than a result in the cases they are not
// defined for.
type Word[W any] interface {
	// SetString constructs a word from a decimal literal.  This does not depend
	// upon the receiver, and hence can be called on the zero value.
	SetString(literal string) (W, error)
	// Add x+y
	Add(y W) W
	// Sub x-y
	Sub(y W) W
	// Mul x*y
	Mul(y W) W
	// Div x/y
	Div(y W) (W, error)
	// Mod x%y
	Mod(y W) (W, error)
	// Pow x^y
	Pow(y W) (W, error)
	// IsZero checks whether this is the additive identity.
	IsZero() bool
	fmt.Stringer
}

// Parse a decimal literal into a word of a given domain.
func Parse[W Word[W]](literal string) (W, error) {
	var zero W
	return zero.SetString(literal)
}
