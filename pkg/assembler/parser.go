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
	"math"
	"strconv"
	"strings"
)

func parseDestination(text string) (Destination, bool) {
	switch text {
	case "M":
		return DEST_M, true
	case "D":
		return DEST_D, true
	case "DM", "MD":
		return DEST_DM, true
	case "A":
		return DEST_A, true
	case "AM", "MA":
		return DEST_AM, true
	case "AD", "DA":
		return DEST_AD, true
	case "ADM":
		return DEST_ADM, true
	}

	return DEST_NULL, false
}

func parseJump(ident string) (Jump, bool) {
	switch ident {
	case "JGT":
		return JUMP_JGT, true
	case "JEQ":
		return JUMP_JEQ, true
	case "JGE":
		return JUMP_JGE, true
	case "JLT":
		return JUMP_JLT, true
	case "JNE":
		return JUMP_JNE, true
	case "JLE":
		return JUMP_JLE, true
	case "JMP":
		return JUMP_JMP, true
	}

	return JUMP_NULL, false
}

func isLineEnd(token *Token) bool {
	return token.Type == TOKEN_EOL || token.Type == TOKEN_EOF
}

// Parser turns a token stream into a Program in a single pass. Labels are
// bound as soon as they are declared, symbolic addresses are left for the
// code generator.
type Parser struct {
	tokenizer    *Tokenizer
	symbols      *SymbolTable
	instructions []Instruction
	consumed     bool
}

func NewParser(tokenizer *Tokenizer) *Parser {
	return &Parser{tokenizer: tokenizer}
}

// Parse consumes the whole token stream and hands over the resulting
// program. A Parser can only be used once.
func (p *Parser) Parse() (*Program, error) {
	if p.consumed {
		return nil, ErrParserConsumed
	}

	p.consumed = true
	p.symbols = NewSymbolTable()

	defer func() {
		p.instructions = nil
		p.symbols = nil
	}()

	for {
		token, err := p.tokenizer.Next()

		if err != nil {
			return nil, err
		}

		switch token.Type {
		case TOKEN_EOF:
			return &Program{
				Instructions: p.instructions,
				Symbols:      p.symbols,
			}, nil

		case TOKEN_EOL:
			continue

		case TOKEN_AT:
			err = p.parseAddress(&token)

		case TOKEN_LPAREN:
			err = p.parseLabel(&token)

		default:
			err = p.parseCompute(&token)
		}

		if err != nil {
			return nil, err
		}
	}
}

func unexpected(token *Token, required ...TokenType) error {
	if token.Type == TOKEN_ERROR {
		if len(token.Value) > 0 && isDigit(token.Value[0]) {
			return &OversizedLiteralError{
				token.Position, ADDRESS_MAX, token.Value,
			}
		}

		var received byte

		if len(token.Value) > 0 {
			received = token.Value[0]
		}

		return &UnexpectedCharacterError{token.Position, received}
	}

	return &UnexpectedTokenError{token.Position, required, *token}
}

func (p *Parser) expectLineEnd() error {
	token, err := p.tokenizer.Next()

	if err != nil {
		return err
	}

	if !isLineEnd(&token) {
		return unexpected(&token, TOKEN_EOL)
	}

	return nil
}

// (LABEL)
func (p *Parser) parseLabel(open *Token) error {
	name, err := p.tokenizer.Next()

	if err != nil {
		return err
	}

	if name.Type != TOKEN_IDENT {
		return unexpected(&name, TOKEN_IDENT)
	}

	token, err := p.tokenizer.Next()

	if err != nil {
		return err
	}

	if token.Type != TOKEN_RPAREN {
		return unexpected(&token, TOKEN_RPAREN)
	}

	if err := p.expectLineEnd(); err != nil {
		return err
	}

	count := len(p.instructions)

	if count > math.MaxUint16 {
		return &OversizedBinaryError{open.Position}
	}

	addr := uint16(count)

	if bound, exists := p.symbols.Lookup(name.Value); exists && bound != addr {
		return &RedeclaredLabelError{name.Position, name.Value}
	}

	p.symbols.Insert(name.Value, addr)

	return nil
}

// @value
func (p *Parser) parseAddress(at *Token) error {
	token, err := p.tokenizer.Next()

	if err != nil {
		return err
	}

	instr := &AddressInstruction{Position: at.Position}

	switch token.Type {
	case TOKEN_NUMBER:
		instr.Literal = token.Number
	case TOKEN_IDENT:
		instr.Symbol = token.Value
	default:
		return unexpected(&token, TOKEN_NUMBER, TOKEN_IDENT)
	}

	instr.Position.Size = token.Position.Byte + token.Position.Size -
		at.Position.Byte

	if err := p.expectLineEnd(); err != nil {
		return err
	}

	p.instructions = append(p.instructions, instr)

	return nil
}

// Gathers the canonical text of an operand, starting at token, until one of
// '=', ';' or the end of the line. Returns the terminating token and the
// span covered by the operand.
func (p *Parser) accumulate(token Token) (Token, string, Cursor, error) {
	var builder strings.Builder

	span := token.Position
	span.Size = 0

	for {
		switch token.Type {
		case TOKEN_EQUAL, TOKEN_SEMI, TOKEN_EOL, TOKEN_EOF:
			return token, builder.String(), span, nil
		case TOKEN_IDENT:
			builder.WriteString(token.Value)
		case TOKEN_NUMBER:
			builder.WriteString(strconv.FormatUint(uint64(token.Number), 10))
		case TOKEN_MINUS:
			builder.WriteByte('-')
		case TOKEN_PLUS:
			builder.WriteByte('+')
		case TOKEN_NOT:
			builder.WriteByte('!')
		case TOKEN_AND:
			builder.WriteByte('&')
		case TOKEN_OR:
			builder.WriteByte('|')
		default:
			return token, "", span, unexpected(
				&token, TOKEN_EQUAL, TOKEN_SEMI, TOKEN_EOL,
			)
		}

		span.Size = token.Position.Byte + token.Position.Size - span.Byte

		var err error

		if token, err = p.tokenizer.Next(); err != nil {
			return token, "", span, err
		}
	}
}

// dest=comp;jump, where dest= and ;jump are optional
func (p *Parser) parseCompute(first *Token) error {
	instr := &ComputeInstruction{Position: first.Position}

	stop, text, span, err := p.accumulate(*first)

	if err != nil {
		return err
	}

	if stop.Type == TOKEN_EQUAL {
		dest, ok := parseDestination(text)

		if !ok {
			return &UnknownDestinationError{span, text}
		}

		instr.Dest = dest

		token, err := p.tokenizer.Next()

		if err != nil {
			return err
		}

		if stop, text, span, err = p.accumulate(token); err != nil {
			return err
		}

		if stop.Type == TOKEN_EQUAL {
			return unexpected(&stop, TOKEN_SEMI, TOKEN_EOL)
		}
	}

	instr.Comp = text
	instr.CompPosition = span

	if stop.Type == TOKEN_SEMI {
		if instr.Jump, err = p.parseJump(); err != nil {
			return err
		}
	}

	instr.Position.Size = stop.Position.Byte - instr.Position.Byte

	p.instructions = append(p.instructions, instr)

	return nil
}

func (p *Parser) parseJump() (Jump, error) {
	token, err := p.tokenizer.Next()

	if err != nil {
		return JUMP_NULL, err
	}

	if token.Type != TOKEN_IDENT {
		return JUMP_NULL, unexpected(&token, TOKEN_IDENT)
	}

	jump, ok := parseJump(token.Value)

	if !ok {
		return JUMP_NULL, &UnknownJumpError{token.Position, token.Value}
	}

	if err := p.expectLineEnd(); err != nil {
		return JUMP_NULL, err
	}

	return jump, nil
}
