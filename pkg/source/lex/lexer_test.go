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
	"testing"

	"github.com/consensys/go-sparsepoly/pkg/source"
	"github.com/stretchr/testify/assert"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "1", 0,
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "123", 0,
		Token{NUMBER, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "-12", 0,
		Token{NUMBER, source.NewSpan(0, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_04(t *testing.T) {
	checkLexer(t, "2 3\t-1\n0", 0,
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 2)},
		Token{NUMBER, source.NewSpan(2, 3)},
		Token{WSPACE, source.NewSpan(3, 4)},
		Token{NUMBER, source.NewSpan(4, 6)},
		Token{WSPACE, source.NewSpan(6, 7)},
		Token{NUMBER, source.NewSpan(7, 8)},
		Token{END_OF, source.NewSpan(8, 8)})
}

func TestLexer_05(t *testing.T) {
	// Lone sign is not a number
	checkLexer(t, "-", 1)
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "1 x", 1,
		Token{NUMBER, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 2)})
}

func TestLexer_Ignore(t *testing.T) {
	lexer := NewLexer([]rune(" 12  4 "), rules...).Ignore(WSPACE)
	//
	assert.Equal(t, []Token{
		{NUMBER, source.NewSpan(1, 3)},
		{NUMBER, source.NewSpan(5, 6)},
		{END_OF, source.NewSpan(7, 7)},
	}, lexer.Collect())
	assert.False(t, lexer.HasNext())
}

func TestLexer_Peek(t *testing.T) {
	lexer := NewLexer([]rune("7 8"), rules...).Ignore(WSPACE)
	//
	assert.Equal(t, lexer.Peek(), lexer.Next())
	assert.Equal(t, Token{NUMBER, source.NewSpan(2, 3)}, lexer.Next())
}

func TestLexer_Index(t *testing.T) {
	lexer := NewLexer([]rune("1 ?"), rules...).Ignore(WSPACE)
	//
	assert.True(t, lexer.HasNext())
	lexer.Next()
	assert.False(t, lexer.HasNext())
	assert.Equal(t, uint(2), lexer.Index())
	assert.Equal(t, uint(1), lexer.Remaining())
}

func TestScannerSequence(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	//
	assert.Equal(t, uint(3), rule([]rune("abc")))
	assert.Equal(t, uint(0), rule([]rune("acc")))
	assert.Equal(t, uint(0), rule([]rune("ab")))
}

func TestScannerMany(t *testing.T) {
	rule := Many(Within('0', '9'))
	//
	assert.Equal(t, uint(0), rule([]rune("x1")))
	assert.Equal(t, uint(4), rule([]rune("2024x")))
}

// ==================================================================
// Framework
// ==================================================================

const (
	END_OF uint = iota
	WSPACE
	NUMBER
)

var digits = Many(Within('0', '9'))

var rules = []Rule[rune]{
	NewRule(Many(Or(Unit(' '), Unit('\t'), Unit('\n'))), WSPACE),
	NewRule(Or(Sequence(Unit('-'), digits), digits), NUMBER),
	NewRule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	lexer := NewLexer(items, rules...)
	tokens := lexer.Collect()
	//
	if len(expected) == 0 {
		assert.Empty(t, tokens)
	} else {
		assert.Equal(t, expected, tokens)
	}
	//
	if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
