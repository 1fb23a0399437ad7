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

package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/lassandro/gohack/pkg/encoding"
)

// Tokenizer pulls tokens from a byte stream using a single byte of
// lookahead. It cannot be rewound.
type Tokenizer struct {
	reader  *bufio.Reader
	current byte
	eof     bool
	err     error
	cursor  Cursor
}

func NewTokenizer(input io.Reader) *Tokenizer {
	tokenizer := &Tokenizer{
		reader: bufio.NewReader(input),
		cursor: Cursor{Line: 1, Column: 1},
	}

	tokenizer.load()

	return tokenizer
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '.' || c == '$' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (t *Tokenizer) load() {
	c, err := t.reader.ReadByte()

	if err != nil {
		t.eof = true

		if err != io.EOF {
			t.err = err
		}

		return
	}

	t.current = c
}

func (t *Tokenizer) peek() (byte, bool) {
	if t.eof {
		return 0, false
	}

	return t.current, true
}

func (t *Tokenizer) advance() {
	if t.eof {
		return
	}

	t.cursor.Byte++

	if t.current == '\n' {
		t.cursor.Line++
		t.cursor.Column = 1
		t.cursor.LineByte = t.cursor.Byte
	} else {
		t.cursor.Column++
	}

	t.load()
}

func (t *Tokenizer) single(tokenType TokenType) Token {
	position := t.cursor
	position.Size = 1
	value := string(t.current)

	t.advance()

	return Token{Type: tokenType, Position: position, Value: value}
}

func (t *Tokenizer) scan(accept func(byte) bool) (string, Cursor) {
	var builder strings.Builder

	position := t.cursor

	for {
		c, ok := t.peek()

		if !ok || !accept(c) {
			break
		}

		builder.WriteByte(c)
		t.advance()
	}

	position.Size = t.cursor.Byte - position.Byte

	return builder.String(), position
}

// Next returns the following token. Once the input is exhausted every call
// yields TOKEN_EOF. The error is only set when the underlying reader fails.
func (t *Tokenizer) Next() (Token, error) {
	for {
		if t.err != nil {
			return Token{Type: TOKEN_ERROR, Position: t.cursor}, t.err
		}

		c, ok := t.peek()

		if !ok {
			return Token{Type: TOKEN_EOF, Position: t.cursor}, nil
		}

		switch {
		// Comments run to the end of the line, the newline is kept
		case c == '/':
			for {
				if c, ok := t.peek(); !ok || c == '\n' {
					break
				}

				t.advance()
			}

		case c == ' ' || c == '\t' || c == '\r':
			t.advance()

		case c == '\n':
			return t.single(TOKEN_EOL), nil

		case c == '@':
			return t.single(TOKEN_AT), nil
		case c == '-':
			return t.single(TOKEN_MINUS), nil
		case c == '+':
			return t.single(TOKEN_PLUS), nil
		case c == '&':
			return t.single(TOKEN_AND), nil
		case c == '|':
			return t.single(TOKEN_OR), nil
		case c == '!':
			return t.single(TOKEN_NOT), nil
		case c == '=':
			return t.single(TOKEN_EQUAL), nil
		case c == ';':
			return t.single(TOKEN_SEMI), nil
		case c == '(':
			return t.single(TOKEN_LPAREN), nil
		case c == ')':
			return t.single(TOKEN_RPAREN), nil

		case isDigit(c):
			value, position := t.scan(isDigit)

			number, err := encoding.DecodeInt(value, ADDRESS_MAX)

			if err != nil {
				return Token{
					Type:     TOKEN_ERROR,
					Position: position,
					Value:    value,
				}, nil
			}

			return Token{
				Type:     TOKEN_NUMBER,
				Position: position,
				Value:    value,
				Number:   number,
			}, nil

		case isIdentStart(c):
			value, position := t.scan(func(c byte) bool {
				return isIdentStart(c) || isDigit(c)
			})

			return Token{
				Type:     TOKEN_IDENT,
				Position: position,
				Value:    value,
			}, nil

		default:
			return t.single(TOKEN_ERROR), nil
		}
	}
}
