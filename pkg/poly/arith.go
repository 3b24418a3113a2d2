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

// Add returns a fresh polynomial representing the sum of this polynomial and
// another.  Neither operand is modified.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	return merge(p, other, 1)
}

// Sub returns a fresh polynomial representing the difference of this
// polynomial and another.  Neither operand is modified.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return merge(p, other, -1)
}

// Mul returns a fresh polynomial representing the product of this polynomial
// and another.  Neither operand is modified.  The product is accumulated one
// term of this polynomial at a time: that term multiplied through the other
// polynomial gives an intermediate polynomial, which is then added onto the
// running total.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	var res = &Polynomial{}
	//
	for _, ith := range p.terms {
		var tmp Polynomial
		//
		for _, jth := range other.terms {
			t := ith.Mul(jth)
			tmp.Insert(t.coefficient, t.exponent)
		}
		//
		res = res.Add(&tmp)
	}
	//
	return res
}

// merge walks the terms of both polynomials from the highest exponent down,
// emitting lhs + sign*rhs.  Since both operands are already in canonical order,
// the terms are emitted in decreasing order of exponent.
func merge(lhs *Polynomial, rhs *Polynomial, sign int) *Polynomial {
	var (
		res  Polynomial
		i, j int
	)
	//
	for i < len(lhs.terms) && j < len(rhs.terms) {
		l, r := lhs.terms[i], rhs.terms[j]
		//
		switch {
		case l.exponent > r.exponent:
			res.Insert(l.coefficient, l.exponent)
			i++
		case l.exponent < r.exponent:
			res.Insert(sign*r.coefficient, r.exponent)
			j++
		default:
			if c := l.coefficient + sign*r.coefficient; c != 0 {
				res.Insert(c, l.exponent)
			}
			//
			i++
			j++
		}
	}
	// Copy over whatever remains of either side
	for ; i < len(lhs.terms); i++ {
		res.Insert(lhs.terms[i].coefficient, lhs.terms[i].exponent)
	}
	//
	for ; j < len(rhs.terms); j++ {
		res.Insert(sign*rhs.terms[j].coefficient, rhs.terms[j].exponent)
	}
	//
	return &res
}
