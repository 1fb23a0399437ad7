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

package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/lassandro/gohack/pkg/assembler"
)

var helpvar bool
var debugvar bool
var dumpvar bool
var outvar string

var colorvar = isTerminal(os.Stderr)

const usage = "gohack-asm [-debug] [-dump] [-out outfile] filename"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.hackdb'",
	)
	flag.BoolVar(
		&dumpvar, "dump", false,
		"Prints the resolved labels, variables and line map to stdout",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Parse()
}

func style(code string, s string) string {
	if !colorvar {
		return s
	}

	return "\033[" + code + "m" + s + "\033[0m"
}

func reportError(err error, input io.ReadSeeker, seekable bool) {
	tokenErr, ok := err.(assembler.TokenError)

	if !ok || !seekable {
		log.Println(err)
		return
	}

	cursor := tokenErr.GetPosition()

	if _, err := input.Seek(cursor.LineByte, io.SeekStart); err != nil {
		log.Println(err)
		return
	}

	line, _ := bufio.NewReader(input).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	size := int(cursor.Size)

	if size < 1 {
		size = 1
	}

	underlinefmt := fmt.Sprintf(
		"%% %ds%s",
		int(cursor.Byte-cursor.LineByte)+1,
		strings.Repeat("~", size-1),
	)

	log.Printf(
		"%s\n%s\n%s",
		err,
		line,
		style("31", fmt.Sprintf(underlinefmt, "^")),
	)
}

func gohack_asm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var input io.ReadSeeker
	var seekable bool
	var debug *assembler.DebugTable

	if stat, _ := os.Stdin.Stat(); stat.Mode()&os.ModeCharDevice == 0 {
		input = os.Stdin
		log.SetPrefix(style("1", "<stdin>:"))

		if outvar == "" {
			outvar = "out.hack"
		}

		if debugvar || dumpvar {
			debug = assembler.NewDebugTable("")
		}
	} else {
		if len(args) != 1 {
			log.Println(usage)
			return 1
		}

		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return 1
		}

		defer file.Close()

		filename := filepath.Base(file.Name())

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid Hack assembly file", filename)
			return 1
		}

		input = file
		seekable = true
		log.SetPrefix(style("1", filename+":"))

		if outvar == "" {
			outvar = filepath.Join(
				filepath.Dir(file.Name()),
				strings.TrimSuffix(filename, filepath.Ext(filename))+".hack",
			)
		}

		if debugvar || dumpvar {
			source, err := filepath.Abs(file.Name())

			if err != nil {
				log.Println(err)
				source = ""
			}

			debug = assembler.NewDebugTable(source)
		}
	}

	output, err := os.Create(outvar)

	if err != nil {
		log.Println("Error creating output file")
		log.Println(err)
		return 1
	}

	if err := assembler.AssembleHackSource(input, output, debug); err != nil {
		output.Close()
		os.Remove(outvar)
		reportError(err, input, seekable)
		return 1
	}

	if err := output.Close(); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	if dumpvar {
		printer := pp.New()
		printer.SetColoringEnabled(isTerminal(os.Stdout))
		printer.Println(debug)
	}

	if debugvar {
		filename := strings.TrimSuffix(outvar, filepath.Ext(outvar)) + ".hackdb"

		if file, err := os.Create(filename); err == nil {
			if err := gob.NewEncoder(file).Encode(debug); err != nil {
				file.Close()
				log.Println("Error writing symbol table")
				log.Println(err)
				return 1
			}

			file.Close()
		} else {
			log.Println("Error creating symbol table")
			log.Println(err)
			return 1
		}
	}

	return 0
}

func main() {
	os.Exit(gohack_asm())
}
