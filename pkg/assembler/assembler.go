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
	"io"
)

// AssembleHackSource translates Hack assembly read from input into
// newline-separated binary words written to output. Translation stops at
// the first error. When debug is non-nil it receives the line map and the
// final label and variable bindings.
func AssembleHackSource(input io.Reader, output io.Writer, debug *DebugTable) error {
	program, err := NewParser(NewTokenizer(input)).Parse()

	if err != nil {
		return err
	}

	if err := NewGenerator(output, program).Generate(); err != nil {
		return err
	}

	if debug != nil {
		for addr, instr := range program.Instructions {
			debug.Lines[uint16(addr)] = instr.GetPosition().LineByte
		}

		for name, addr := range program.Symbols.Labels() {
			debug.Labels[name] = addr
		}

		for _, name := range program.Symbols.Variables() {
			debug.Variables[name], _ = program.Symbols.Lookup(name)
		}
	}

	return nil
}
