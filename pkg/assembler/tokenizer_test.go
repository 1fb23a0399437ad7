// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lassandro/gohack/pkg/assembler"
)

type tokenCase struct {
	Name   string
	Input  string
	Output []assembler.Token
}

func testTokenizer(t *testing.T, test *tokenCase) {
	tokenizer := assembler.NewTokenizer(strings.NewReader(test.Input))

	for i, want := range test.Output {
		have, err := tokenizer.Next()

		if err != nil {
			t.Fatal(err)
		}

		if have.Type != want.Type {
			t.Fatalf(
				"Token type mismatch\nwant:%s (test.Output[%d])\nhave:%s",
				want.Type,
				i,
				have.Type,
			)
		}

		if want.Value != "" && have.Value != want.Value {
			t.Fatalf(
				"Token value mismatch\nwant:%q (test.Output[%d])\nhave:%q",
				want.Value,
				i,
				have.Value,
			)
		}

		if have.Number != want.Number {
			t.Fatalf(
				"Token number mismatch\nwant:%d (test.Output[%d])\nhave:%d",
				want.Number,
				i,
				have.Number,
			)
		}

		if want.Position != (assembler.Cursor{}) && have.Position != want.Position {
			t.Fatalf(
				"Token position mismatch\nwant:%+v (test.Output[%d])\nhave:%+v",
				want.Position,
				i,
				have.Position,
			)
		}
	}
}

func TestTokenizer(t *testing.T) {
	tests := []tokenCase{
		{
			Name:  "Instructions",
			Input: "@R0\n(L.1$:)\nAM=M-1;JNE // c\n",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_AT},
				{Type: assembler.TOKEN_IDENT, Value: "R0"},
				{Type: assembler.TOKEN_EOL},
				{Type: assembler.TOKEN_LPAREN},
				{Type: assembler.TOKEN_IDENT, Value: "L.1$:"},
				{Type: assembler.TOKEN_RPAREN},
				{Type: assembler.TOKEN_EOL},
				{Type: assembler.TOKEN_IDENT, Value: "AM"},
				{Type: assembler.TOKEN_EQUAL},
				{Type: assembler.TOKEN_IDENT, Value: "M"},
				{Type: assembler.TOKEN_MINUS},
				{Type: assembler.TOKEN_NUMBER, Value: "1", Number: 1},
				{Type: assembler.TOKEN_SEMI},
				{Type: assembler.TOKEN_IDENT, Value: "JNE"},
				{Type: assembler.TOKEN_EOL},
				{Type: assembler.TOKEN_EOF},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Operators",
			Input: "-+&|!",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_MINUS},
				{Type: assembler.TOKEN_PLUS},
				{Type: assembler.TOKEN_AND},
				{Type: assembler.TOKEN_OR},
				{Type: assembler.TOKEN_NOT},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Positions",
			Input: "  @x\n D",
			Output: []assembler.Token{
				{
					Type:     assembler.TOKEN_AT,
					Position: assembler.Cursor{Line: 1, Column: 3, Byte: 2, Size: 1},
				},
				{
					Type:     assembler.TOKEN_IDENT,
					Position: assembler.Cursor{Line: 1, Column: 4, Byte: 3, Size: 1},
				},
				{
					Type:     assembler.TOKEN_EOL,
					Position: assembler.Cursor{Line: 1, Column: 5, Byte: 4, Size: 1},
				},
				{
					Type:     assembler.TOKEN_IDENT,
					Position: assembler.Cursor{
						Line: 2, Column: 2, Byte: 6, Size: 1, LineByte: 5,
					},
				},
			},
		},
		{
			Name:  "Number Bounds",
			Input: "32767 32768 0",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_NUMBER, Value: "32767", Number: 32767},
				{Type: assembler.TOKEN_ERROR, Value: "32768"},
				{Type: assembler.TOKEN_NUMBER, Value: "0", Number: 0},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Whole Oversized Number",
			Input: "123456789@",
			Output: []assembler.Token{
				{
					Type:     assembler.TOKEN_ERROR,
					Value:    "123456789",
					Position: assembler.Cursor{Line: 1, Column: 1, Byte: 0, Size: 9},
				},
				{Type: assembler.TOKEN_AT},
			},
		},
		{
			Name:  "Identifier Then Digits",
			Input: "_a1 1a",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_IDENT, Value: "_a1"},
				{Type: assembler.TOKEN_NUMBER, Value: "1", Number: 1},
				{Type: assembler.TOKEN_IDENT, Value: "a"},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Invalid Characters",
			Input: "#*%",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_ERROR, Value: "#"},
				{Type: assembler.TOKEN_ERROR, Value: "*"},
				{Type: assembler.TOKEN_ERROR, Value: "%"},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Comments",
			Input: "/ one\n// two\r\n@",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_EOL},
				{Type: assembler.TOKEN_EOL},
				{Type: assembler.TOKEN_AT},
				{Type: assembler.TOKEN_EOF},
			},
		},
		{
			Name:  "Skipped Whitespace",
			Input: " \t\r@\r",
			Output: []assembler.Token{
				{Type: assembler.TOKEN_AT},
				{Type: assembler.TOKEN_EOF},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			testTokenizer(t, &test)
		})
	}
}

func TestTokenizerReadError(t *testing.T) {
	failure := errors.New("read failure")

	tokenizer := assembler.NewTokenizer(io.MultiReader(
		strings.NewReader("@1\n"),
		iotest.ErrReader(failure),
	))

	for _, want := range []assembler.TokenType{
		assembler.TOKEN_AT,
		assembler.TOKEN_NUMBER,
		assembler.TOKEN_EOL,
	} {
		have, err := tokenizer.Next()

		if err != nil {
			t.Fatal(err)
		}

		if have.Type != want {
			t.Fatalf("Token type mismatch\nwant:%s\nhave:%s", want, have.Type)
		}
	}

	if _, err := tokenizer.Next(); !errors.Is(err, failure) {
		t.Fatalf("Read error not reported\nwant:%v\nhave:%v", failure, err)
	}
}
