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

const (
	TOKEN_ERROR TokenType = iota
	TOKEN_EOF
	TOKEN_EOL
	TOKEN_AT
	TOKEN_MINUS
	TOKEN_PLUS
	TOKEN_AND
	TOKEN_OR
	TOKEN_NOT
	TOKEN_EQUAL
	TOKEN_SEMI
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_NUMBER
	TOKEN_IDENT
)

const (
	DEST_NULL Destination = iota
	DEST_M
	DEST_D
	DEST_DM
	DEST_A
	DEST_AM
	DEST_AD
	DEST_ADM
)

const (
	JUMP_NULL Jump = iota
	JUMP_JGT
	JUMP_JEQ
	JUMP_JGE
	JUMP_JLT
	JUMP_JNE
	JUMP_JLE
	JUMP_JMP
)

const (
	// Largest value an address instruction can carry (15 bits)
	ADDRESS_MAX uint16 = 1<<15 - 1

	// First RAM word handed out to variables
	VARIABLE_BASE uint16 = 16
)

//        |111|a c1 c2 c3 c4 c5 c6|d1 d2 d3|j1 j2 j3|
// -------[ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
var computations = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,

	// a = 1, M replaces A
	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

var predefined = map[string]uint16{
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 16384,
	"KBD":    24576,
}
