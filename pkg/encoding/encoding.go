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

package encoding

import (
	"errors"
	"strconv"
	"strings"
)

// Encodes the low `bits` bits of value as a zero-padded string of '0' and '1'
func FormatBinary(value uint16, bits int) string {
	var builder strings.Builder
	builder.Grow(bits)

	for i := bits - 1; i >= 0; i-- {
		if (value>>uint(i))&0x1 == 1 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}

// Decodes a 16 character binary word as found in .hack files
func DecodeBinary(s string) (uint16, error) {
	if len(s) != 16 {
		return 0, errors.New("Invalid binary word length")
	}

	result, err := strconv.ParseUint(s, 2, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Decodes an unsigned base-10 string no greater than limit
func DecodeInt(s string, limit uint16) (uint16, error) {
	if len(s) == 0 || strings.IndexFunc(s, func(c rune) bool {
		return c < '0' || c > '9'
	}) != -1 {
		return 0, errors.New("Invalid decimal string")
	}

	result, err := strconv.ParseUint(s, 10, 16)

	if err != nil || result > uint64(limit) {
		return 0, errors.New("Decimal value out of range")
	}

	return uint16(result), nil
}
