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
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/consensys/go-sparsepoly/pkg/field"
	"github.com/consensys/go-sparsepoly/pkg/poly"
	"github.com/consensys/go-sparsepoly/pkg/source"
	"github.com/consensys/go-sparsepoly/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Run reads two polynomials from a given input, and writes out (one per line)
// both polynomials, their sum, their difference, their product and then the
// first polynomial evaluated at the sample point.  Malformed input is reported
// as a *source.SyntaxError.
func Run(cfg Config, srcfile *source.File, out io.Writer) error {
	parser := poly.NewParser(srcfile)
	//
	lhs, err := parser.Parse()
	if err != nil {
		return err
	}
	//
	log.Debugf("read first polynomial (%d terms)", lhs.Len())
	//
	rhs, err := parser.Parse()
	if err != nil {
		return err
	}
	//
	log.Debugf("read second polynomial (%d terms)", rhs.Len())
	//
	if !parser.Done() {
		log.Warnf("%s: ignoring trailing input", srcfile.Filename())
	}
	//
	stats := util.NewPerfStats()
	lines := []string{
		lhs.String(),
		rhs.String(),
		lhs.Add(rhs).String(),
		lhs.Sub(rhs).String(),
		lhs.Mul(rhs).String(),
		formatFloat(lhs.Eval(cfg.Sample)),
	}
	//
	if cfg.Field {
		x := field.FromInt(int(cfg.Sample))
		lines = append(lines, lhs.EvalField(x).String())
	}
	//
	stats.Log("Arithmetic")
	//
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	//
	return nil
}

// formatFloat renders a value with (up to) six significant digits, dropping
// trailing zeros and switching to exponent form for very large or small
// magnitudes.
func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', 6, 64)
}
