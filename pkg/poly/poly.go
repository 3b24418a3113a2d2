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
	"bytes"
	"slices"
)

// Polynomial is a sparse polynomial in one variable with integer coefficients.
// Terms are held in an array ordered by strictly decreasing exponent, such that
// no two terms share an exponent and no term has a zero coefficient.  The only
// way to change the terms of a polynomial is through Insert (or Set, which
// uses it), and this is responsible for maintaining those invariants.  The zero
// value is the zero polynomial, ready for use.
type Polynomial struct {
	terms []Term
}

// New constructs a polynomial from zero or more terms, given in any order.
// Terms with matching exponents are combined.
func New(terms ...Term) *Polynomial {
	var p Polynomial
	//
	for _, t := range terms {
		p.Insert(t.coefficient, t.exponent)
	}
	//
	return &p
}

// Len returns the number of (non-zero) terms in this polynomial.
func (p *Polynomial) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of this polynomial, where terms are ordered from
// highest exponent to lowest.
func (p *Polynomial) Term(ith uint) Term {
	return p.terms[ith]
}

// IsZero checks whether this is the zero polynomial (i.e. has no terms).
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Insert adds the term coefficient*x^exponent into this polynomial.  When a
// term with the same exponent already exists, the coefficient is added onto it
// and the term is removed altogether if that leaves it zero.  Otherwise, a new
// term is placed so as to keep terms in decreasing order of exponent.
func (p *Polynomial) Insert(coefficient int, exponent uint) {
	var n = len(p.terms)
	// Terms emitted in decreasing order always land at the end.
	if n == 0 || p.terms[n-1].exponent > exponent {
		if coefficient != 0 {
			p.terms = append(p.terms, Term{coefficient, exponent})
		}
		//
		return
	}
	//
	for i := range p.terms {
		ith := &p.terms[i]
		//
		if ith.exponent == exponent {
			ith.coefficient += coefficient
			// Check whether its now zero (or not)
			if ith.coefficient == 0 {
				p.terms = slices.Delete(p.terms, i, i+1)
			}
			//
			return
		} else if ith.exponent < exponent {
			if coefficient != 0 {
				p.terms = slices.Insert(p.terms, i, Term{coefficient, exponent})
			}
			//
			return
		}
	}
	// Unreachable, since the last term has an exponent no larger than this one.
	panic("unreachable")
}

// Set reinitialises this polynomial from zero or more terms given in any order,
// discarding whatever it held before.  This returns the polynomial itself.
func (p *Polynomial) Set(terms ...Term) *Polynomial {
	p.terms = nil
	//
	for _, t := range terms {
		p.Insert(t.coefficient, t.exponent)
	}
	//
	return p
}

// Clone returns an independent copy of this polynomial, built by inserting each
// term (in order) into an empty polynomial.
func (p *Polynomial) Clone() *Polynomial {
	var res Polynomial
	//
	for _, t := range p.terms {
		res.Insert(t.coefficient, t.exponent)
	}
	//
	return &res
}

// Equal checks whether two polynomials have the same terms.  Since the term
// order is canonical, this coincides with equality as polynomials.
func (p *Polynomial) Equal(other *Polynomial) bool {
	return slices.Equal(p.terms, other.terms)
}

// String renders the terms of this polynomial, highest exponent first, as
// "coefficient exponent" pairs separated by ", ".  The zero polynomial renders
// as the empty string.
func (p *Polynomial) String() string {
	var buf bytes.Buffer
	//
	for i, t := range p.terms {
		if i != 0 {
			buf.WriteString(", ")
		}
		//
		buf.WriteString(t.String())
	}
	//
	return buf.String()
}
