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
	"reflect"
	"testing"

	"github.com/lassandro/gohack/pkg/assembler"
)

func TestSymbolTablePredefined(t *testing.T) {
	table := assembler.NewSymbolTable()

	want := map[string]uint16{
		"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5, "R6": 6,
		"R7": 7, "R8": 8, "R9": 9, "R10": 10, "R11": 11, "R12": 12,
		"R13": 13, "R14": 14, "R15": 15,
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}

	for name, addr := range want {
		if have := table.Resolve(name); have != addr {
			t.Fatalf("Predefined mismatch for %s\nwant:%d\nhave:%d", name, addr, have)
		}
	}

	if variables := table.Variables(); len(variables) != 0 {
		t.Fatalf("Predefined symbols allocated variables: %v", variables)
	}
}

func TestSymbolTableResolve(t *testing.T) {
	table := assembler.NewSymbolTable()

	for i, name := range []string{"a", "b", "a", "c", "b"} {
		want := map[string]uint16{"a": 16, "b": 17, "c": 18}[name]

		if have := table.Resolve(name); have != want {
			t.Fatalf(
				"Allocation mismatch at %d for %s\nwant:%d\nhave:%d",
				i,
				name,
				want,
				have,
			)
		}
	}

	if have := table.Variables(); !reflect.DeepEqual(have, []string{"a", "b", "c"}) {
		t.Fatalf("Allocation order mismatch\nwant:[a b c]\nhave:%v", have)
	}
}

func TestSymbolTableInsert(t *testing.T) {
	table := assembler.NewSymbolTable()

	if !table.Insert("LOOP", 4) {
		t.Fatal("Insert of a new name reported it as present")
	}

	if table.Insert("LOOP", 9) {
		t.Fatal("Insert of an existing name reported it as absent")
	}

	if addr, _ := table.Lookup("LOOP"); addr != 9 {
		t.Fatalf("Insert did not overwrite\nwant:9\nhave:%d", addr)
	}

	// Labels never consume variable addresses
	if have := table.Resolve("x"); have != 16 {
		t.Fatalf("Variable allocation mismatch\nwant:16\nhave:%d", have)
	}

	if have := table.Labels(); !reflect.DeepEqual(have, map[string]uint16{"LOOP": 9}) {
		t.Fatalf("Label listing mismatch\nwant:map[LOOP:9]\nhave:%v", have)
	}

	if _, exists := table.Lookup("y"); exists {
		t.Fatal("Lookup allocated a variable")
	}
}
