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
package lex

import (
	"slices"

	"github.com/consensys/go-sparsepoly/pkg/source"
)

// Token associates a kind with a given range of items in the input being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// Rule associates items matched by a scanner with a given token kind.
//
// nolint
type Rule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// NewRule constructs a new lexing rule which maps matching items to a given
// kind.
func NewRule[T any](scanner Scanner[T], kind uint) Rule[T] {
	return Rule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens by trying each rule in turn.
// Rules are tried in the order given, and the first match wins.  Tokens whose
// kind has been marked as ignored are consumed but never returned.
type Lexer[T any] struct {
	items   []T
	index   int
	rules   []Rule[T]
	ignored []uint
	buffer  []Token
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...Rule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil, nil}
}

// Ignore marks zero or more token kinds (e.g. whitespace) as being skipped
// silently, returning this lexer.
func (p *Lexer[T]) Ignore(kinds ...uint) *Lexer[T] {
	p.ignored = append(p.ignored, kinds...)
	return p
}

// Index returns the position of the first item not yet consumed.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items of the input have not been consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not another token can be produced.  When this
// fails with items remaining, then the input contains something no rule
// accepts at Index().
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Peek returns the next token without consuming it.  This assumes HasNext()
// holds.
func (p *Lexer[T]) Peek() Token {
	p.scan()
	return p.buffer[0]
}

// Next returns the next token and advances the lexer.  This assumes HasNext()
// holds.
func (p *Lexer[T]) Next() Token {
	p.scan()
	//
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	return next
}

// Collect tokenises everything that remains, stopping at the first item which
// no rule accepts.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	for len(p.buffer) == 0 && p.index <= len(p.items) {
		token, ok := p.match()
		//
		if !ok {
			return
		} else if !slices.Contains(p.ignored, token.Kind) {
			p.buffer = append(p.buffer, token)
		}
	}
}

// match applies the first matching rule at the current position, advancing
// past whatever it consumed.
func (p *Lexer[T]) match() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			span := source.NewSpan(p.index, end)
			//
			if end == p.index {
				// End of input, which can only be matched once.
				p.index++
			} else {
				p.index = end
			}
			//
			return Token{r.kind, span}, true
		}
	}
	//
	return Token{}, false
}
