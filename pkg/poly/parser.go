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

	"github.com/consensys/go-sparsepoly/pkg/source"
	"github.com/consensys/go-sparsepoly/pkg/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace (including line breaks)
const WHITESPACE uint = 1

// NUMBER signals an integer number, possibly signed
const NUMBER uint = 2

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

// Rule for describing unsigned numbers
var digits lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Or(
	lex.Sequence(lex.Or(lex.Unit('-'), lex.Unit('+')), digits),
	digits)

// lexing rules
var rules []lex.Rule[rune] = []lex.Rule[rune]{
	lex.NewRule(whitespace, WHITESPACE),
	lex.NewRule(number, NUMBER),
	lex.NewRule(lex.Eof[rune](), END_OF),
}

// Parser reads polynomials from a textual input, where each polynomial is given
// as a term count n followed by n (coefficient, exponent) pairs.  All items are
// whitespace separated integers, and the pairs may come in any order (with
// repeated exponents).  Successive calls to Parse read successive polynomials.
type Parser struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
}

// NewParser constructs a parser positioned at the start of a given file.
func NewParser(srcfile *source.File) *Parser {
	lexer := lex.NewLexer(srcfile.Contents(), rules...).Ignore(WHITESPACE)
	//
	return &Parser{srcfile, lexer}
}

// Parse reads the next polynomial from the input.
func (p *Parser) Parse() (*Polynomial, *source.SyntaxError) {
	var res Polynomial
	//
	n, span, err := p.parseInt()
	if err != nil {
		return nil, err
	} else if n < 0 {
		return nil, p.srcfile.SyntaxError(span, "negative term count")
	}
	//
	for range n {
		coefficient, _, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		//
		exponent, span, err := p.parseInt()
		if err != nil {
			return nil, err
		} else if exponent < 0 {
			return nil, p.srcfile.SyntaxError(span, "negative exponent")
		}
		//
		res.Insert(coefficient, uint(exponent))
	}
	//
	return &res, nil
}

// Done checks whether nothing but whitespace remains in the input.
func (p *Parser) Done() bool {
	return p.lexer.HasNext() && p.lexer.Peek().Kind == END_OF
}

func (p *Parser) parseInt() (int, source.Span, *source.SyntaxError) {
	if !p.lexer.HasNext() {
		var (
			index = int(p.lexer.Index())
			span  = source.NewSpan(index, index+1)
		)
		//
		if p.lexer.Remaining() == 0 {
			return 0, span, p.srcfile.SyntaxError(span, "unexpected end of input")
		}
		//
		return 0, span, p.srcfile.SyntaxError(span, "unknown character")
	}
	//
	token := p.lexer.Peek()
	//
	if token.Kind == END_OF {
		return 0, token.Span, p.srcfile.SyntaxError(token.Span, "unexpected end of input")
	}
	// Consume number
	p.lexer.Next()
	//
	text := string(p.srcfile.Contents()[token.Span.Start():token.Span.End()])
	//
	val, err := strconv.Atoi(text)
	if err != nil {
		return 0, token.Span, p.srcfile.SyntaxError(token.Span, "integer out of range")
	}
	//
	return val, token.Span, nil
}
