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
	"fmt"
	"io"

	"github.com/lassandro/gohack/pkg/encoding"
)

// Generator writes a parsed Program as one 16 character binary line per
// instruction. Variables are allocated as they are first encoded.
type Generator struct {
	writer  *bufio.Writer
	program *Program
}

func NewGenerator(output io.Writer, program *Program) *Generator {
	return &Generator{writer: bufio.NewWriter(output), program: program}
}

// Encode assembles a single instruction into its machine word
func (gen *Generator) Encode(instr Instruction) (uint16, error) {
	switch instr := instr.(type) {
	// A    |0|value                        |
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case *AddressInstruction:
		addr := instr.Literal

		if instr.Symbol != "" {
			addr = gen.program.Symbols.Resolve(instr.Symbol)
		}

		if addr > ADDRESS_MAX {
			return 0, &OversizedAddressError{instr.Position, ADDRESS_MAX, addr}
		}

		return addr, nil

	// C    |1 1 1|a|c1..c6     |d1..3|j1..3|
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case *ComputeInstruction:
		comp, exists := computations[instr.Comp]

		if !exists {
			return 0, &UnknownComputationError{instr.CompPosition, instr.Comp}
		}

		var scratch uint16 = 0b111

		scratch <<= 7
		scratch |= comp & 0x7F
		scratch <<= 3
		scratch |= uint16(instr.Dest) & 0x7
		scratch <<= 3
		scratch |= uint16(instr.Jump) & 0x7

		return scratch, nil
	}

	return 0, fmt.Errorf("Unknown instruction type %T", instr)
}

// Generate encodes every instruction in order and flushes the output
func (gen *Generator) Generate() error {
	for _, instr := range gen.program.Instructions {
		word, err := gen.Encode(instr)

		if err != nil {
			return err
		}

		if _, err := gen.writer.WriteString(
			encoding.FormatBinary(word, 16),
		); err != nil {
			return err
		}

		if err := gen.writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	return gen.writer.Flush()
}
