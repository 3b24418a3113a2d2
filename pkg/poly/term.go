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
package poly

import (
	"strconv"
)

// Term represents a single monomial c*x^e of a polynomial in one variable.
type Term struct {
	coefficient int
	exponent    uint
}

// NewTerm constructs a term with a given coefficient and exponent.
func NewTerm(coefficient int, exponent uint) Term {
	return Term{coefficient, exponent}
}

// Coefficient returns the coefficient of this term.
func (p Term) Coefficient() int {
	return p.coefficient
}

// Exponent returns the power to which the variable is raised in this term.
func (p Term) Exponent() uint {
	return p.exponent
}

// IsZero checks whether the coefficient of this term is zero.
func (p Term) IsZero() bool {
	return p.coefficient == 0
}

// Neg returns this term with its coefficient negated.
func (p Term) Neg() Term {
	return Term{-p.coefficient, p.exponent}
}

// Mul returns the product of this term and another, i.e. the product of their
// coefficients raised to the sum of their exponents.
func (p Term) Mul(other Term) Term {
	return Term{p.coefficient * other.coefficient, p.exponent + other.exponent}
}

// String renders this term as "coefficient exponent".
func (p Term) String() string {
	return strconv.Itoa(p.coefficient) + " " + strconv.FormatUint(uint64(p.exponent), 10)
}
