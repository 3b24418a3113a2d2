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
package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is a value in the scalar field of the BLS12-377 curve.  Elements have
// value semantics: every operation returns a fresh element.
type Element struct {
	fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var res fr.Element
	//
	res.SetOne()
	//
	return Element{res}
}

// FromInt maps an integer into the field, such that negative values are
// reduced modulo the field order.
func FromInt(val int) Element {
	var res fr.Element
	//
	res.SetInt64(int64(val))
	//
	return Element{res}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Pow raises x to a given power using square-and-multiply.  Following the usual
// convention, x^0 is one for every x (including zero).
func (x Element) Pow(exp uint) Element {
	var (
		result = One()
		base   = x
	)
	//
	for exp != 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		// div 2
		exp >>= 1
		//
		if exp != 0 {
			base = base.Mul(base)
		}
	}
	//
	return result
}

// Equal checks whether two elements hold the same value.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// String returns the canonical decimal representation.
func (x Element) String() string {
	return x.Element.String()
}
