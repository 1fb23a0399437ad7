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
	"errors"
	"fmt"
	"strings"
)

type TokenType uint
type Destination uint
type Jump uint

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

type Token struct {
	Type     TokenType
	Position Cursor
	Value    string
	Number   uint16
}

func (t TokenType) String() string {
	switch t {
	case TOKEN_ERROR:
		return "<invalid>"
	case TOKEN_EOF:
		return "End of input"
	case TOKEN_EOL:
		return "End of line"
	case TOKEN_AT:
		return "'@'"
	case TOKEN_MINUS:
		return "'-'"
	case TOKEN_PLUS:
		return "'+'"
	case TOKEN_AND:
		return "'&'"
	case TOKEN_OR:
		return "'|'"
	case TOKEN_NOT:
		return "'!'"
	case TOKEN_EQUAL:
		return "'='"
	case TOKEN_SEMI:
		return "';'"
	case TOKEN_LPAREN:
		return "'('"
	case TOKEN_RPAREN:
		return "')'"
	case TOKEN_NUMBER:
		return "Number"
	case TOKEN_IDENT:
		return "Identifier"
	}

	return "<unknown>"
}

func (d Destination) String() string {
	switch d {
	case DEST_NULL:
		return "null"
	case DEST_M:
		return "M"
	case DEST_D:
		return "D"
	case DEST_DM:
		return "DM"
	case DEST_A:
		return "A"
	case DEST_AM:
		return "AM"
	case DEST_AD:
		return "AD"
	case DEST_ADM:
		return "ADM"
	}

	return "<invalid>"
}

func (j Jump) String() string {
	switch j {
	case JUMP_NULL:
		return "null"
	case JUMP_JGT:
		return "JGT"
	case JUMP_JEQ:
		return "JEQ"
	case JUMP_JGE:
		return "JGE"
	case JUMP_JLT:
		return "JLT"
	case JUMP_JNE:
		return "JNE"
	case JUMP_JLE:
		return "JLE"
	case JUMP_JMP:
		return "JMP"
	}

	return "<invalid>"
}

// Instruction is implemented by AddressInstruction and ComputeInstruction
// only.
type Instruction interface {
	GetPosition() Cursor
	instruction()
}

// @value, where Symbol is empty for literal addresses
type AddressInstruction struct {
	Position Cursor
	Literal  uint16
	Symbol   string
}

// dest=comp;jump
type ComputeInstruction struct {
	Position     Cursor
	Dest         Destination
	Comp         string
	CompPosition Cursor
	Jump         Jump
}

func (instr *AddressInstruction) GetPosition() Cursor { return instr.Position }
func (instr *ComputeInstruction) GetPosition() Cursor { return instr.Position }

func (*AddressInstruction) instruction() {}
func (*ComputeInstruction) instruction() {}

type Program struct {
	Instructions []Instruction
	Symbols      *SymbolTable
}

// Debugging information emitted alongside a binary. Lines maps an
// instruction address to the byte offset of the source line it came from.
type DebugTable struct {
	Source    string
	Lines     map[uint16]int64
	Labels    map[string]uint16
	Variables map[string]uint16
}

func NewDebugTable(source string) *DebugTable {
	return &DebugTable{
		Source:    source,
		Lines:     make(map[uint16]int64),
		Labels:    make(map[string]uint16),
		Variables: make(map[string]uint16),
	}
}

var ErrParserConsumed = errors.New("Parser input already consumed")

type TokenError interface {
	GetPosition() Cursor
}

type UnexpectedTokenError struct {
	Position Cursor
	Required []TokenType
	Received Token
}

func (err *UnexpectedTokenError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedTokenError) Error() string {
	var requiredString string

	requiredStrings := make([]string, 0, len(err.Required))

	for _, tokenType := range err.Required {
		requiredStrings = append(requiredStrings, tokenType.String())
	}

	if count := len(requiredStrings); count == 1 {
		requiredString = requiredStrings[0]
	} else if count == 2 {
		requiredString = requiredStrings[0] + " or " + requiredStrings[1]
	} else if count > 2 {
		requiredString = strings.Join(
			requiredStrings[:len(requiredStrings)-1], ", ",
		) + ", or " + requiredStrings[len(requiredStrings)-1]
	}

	receivedString := err.Received.Type.String()

	if err.Received.Type == TOKEN_IDENT || err.Received.Type == TOKEN_NUMBER {
		receivedString += " '" + err.Received.Value + "'"
	}

	return fmt.Sprintf(
		"%02d:%02d: Unexpected token\n\twant:%s\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		requiredString,
		receivedString,
	)
}

type UnexpectedCharacterError struct {
	Position Cursor
	Received byte
}

func (err *UnexpectedCharacterError) GetPosition() Cursor {
	return err.Position
}

func (err *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected character %q",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedLiteralError struct {
	Position Cursor
	Required uint16
	Received string
}

func (err *OversizedLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:%d\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position Cursor
	Received string
}

func (err *RedeclaredLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownDestinationError struct {
	Position Cursor
	Received string
}

func (err *UnknownDestinationError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownDestinationError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown destination '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownComputationError struct {
	Position Cursor
	Received string
}

func (err *UnknownComputationError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownComputationError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown computation '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownJumpError struct {
	Position Cursor
	Received string
}

func (err *UnknownJumpError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownJumpError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown jump '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedAddressError struct {
	Position Cursor
	Required uint16
	Received uint16
}

func (err *OversizedAddressError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedAddressError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Address exceeds allowed size\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type OversizedBinaryError struct {
	Position Cursor
}

func (err *OversizedBinaryError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedBinaryError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Binary exceeds allowed size",
		err.Position.Line,
		err.Position.Column,
	)
}
