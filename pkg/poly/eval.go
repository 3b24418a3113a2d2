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
	"math"

	"github.com/consensys/go-sparsepoly/pkg/field"
)

// Eval evaluates this polynomial at a given point, summing terms from the
// highest exponent down.  Powers are computed with math.Pow, hence 0^0 is 1.
func (p *Polynomial) Eval(x float64) float64 {
	var val float64
	//
	for _, t := range p.terms {
		val += float64(t.coefficient) * math.Pow(x, float64(t.exponent))
	}
	//
	return val
}

// EvalField evaluates this polynomial at a given point of the BLS12-377 scalar
// field.  Coefficients are first reduced into the field, so the result is
// exact (modulo the field order) irrespective of the magnitude of x.
func (p *Polynomial) EvalField(x field.Element) field.Element {
	var val = field.Zero()
	//
	for _, t := range p.terms {
		ith := field.FromInt(t.coefficient).Mul(x.Pow(t.exponent))
		val = val.Add(ith)
	}
	//
	return val
}
