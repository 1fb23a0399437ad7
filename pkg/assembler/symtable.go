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

// SymbolTable binds names to addresses. Unknown names are handed RAM
// addresses from VARIABLE_BASE upward the first time they are resolved.
type SymbolTable struct {
	symbols   map[string]uint16
	labels    map[string]bool
	variables []string
	next      uint16
}

func NewSymbolTable() *SymbolTable {
	table := &SymbolTable{
		symbols: make(map[string]uint16, len(predefined)),
		labels:  make(map[string]bool),
		next:    VARIABLE_BASE,
	}

	for name, addr := range predefined {
		table.symbols[name] = addr
	}

	return table
}

// Insert binds name to addr, overwriting any previous binding. Reports
// whether name was unbound beforehand.
func (table *SymbolTable) Insert(name string, addr uint16) bool {
	_, exists := table.symbols[name]
	table.symbols[name] = addr
	table.labels[name] = true

	return !exists
}

func (table *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, exists := table.symbols[name]
	return addr, exists
}

func (table *SymbolTable) Resolve(name string) uint16 {
	if addr, exists := table.symbols[name]; exists {
		return addr
	}

	addr := table.next
	table.symbols[name] = addr
	table.variables = append(table.variables, name)
	table.next++

	return addr
}

// Labels returns every inserted name with its current address
func (table *SymbolTable) Labels() map[string]uint16 {
	result := make(map[string]uint16, len(table.labels))

	for name := range table.labels {
		result[name] = table.symbols[name]
	}

	return result
}

// Variables returns allocated variable names in allocation order
func (table *SymbolTable) Variables() []string {
	result := make([]string, len(table.variables))
	copy(result, table.variables)
	return result
}
