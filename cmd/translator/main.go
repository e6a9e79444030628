// Command translator compiles stack-language source into the newline
// delimited JSON instruction stream the machine command runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/forthlab/stackvm/internal/codec"
	"github.com/forthlab/stackvm/isa"
	"github.com/forthlab/stackvm/translator"
)

func main() {
	disasm := flag.Bool("disasm", false, "print a disassembly of the compiled program to stderr")
	flag.Parse()

	if err := run(flag.Args(), *disasm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, disasm bool) error {
	if len(args) != 2 {
		return errors.New("usage: translator [-disasm] <source-file> <target-file>")
	}
	sourcePath, targetPath := args[0], args[1]

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", sourcePath)
	}

	prog, err := translator.Translate(string(source))
	if err != nil {
		return errors.Wrapf(err, "translate %s", sourcePath)
	}

	out, err := os.Create(targetPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", targetPath)
	}
	defer out.Close()

	if err := codec.Write(out, prog); err != nil {
		return errors.Wrapf(err, "write %s", targetPath)
	}

	if disasm {
		for _, line := range isa.DisassembleAll(prog) {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	loc := strings.Count(strings.TrimRight(string(source), "\n"), "\n") + 1
	fmt.Printf("source LoC: %d code instr: %d\n", loc, len(prog))
	return nil
}
