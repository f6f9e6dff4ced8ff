// Intcode CLI - loads a program image, runs it, prints what it emits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/intcode"
	"github.com/chazu/intcode/pkg/program"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	trace := flag.Bool("t", false, "Trace each instruction as it executes")
	disasmOnly := flag.Bool("d", false, "Disassemble the program instead of running it")
	inputs := flag.String("i", "", "Comma-separated input values")
	inline := flag.String("e", "", "Inline program text instead of a file")
	dump := flag.String("dump", "", "Memory range to print after the run, e.g. 0:16")
	noManifest := flag.Bool("no-manifest", false, "Skip loading intcode.toml")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: icrun [options] [program.ic]\n\n")
		fmt.Fprintf(os.Stderr, "Runs an Intcode program and prints its output, one value per line.\n")
		fmt.Fprintf(os.Stderr, "Defaults are read from intcode.toml if one is found in the current\n")
		fmt.Fprintf(os.Stderr, "directory or an ancestor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  icrun diagnostics.ic -i 1       # Run with input 1\n")
		fmt.Fprintf(os.Stderr, "  icrun -e 3,0,4,0,99 -i 42       # Run an inline program\n")
		fmt.Fprintf(os.Stderr, "  icrun -d quine.ic               # Show a disassembly listing\n")
		fmt.Fprintf(os.Stderr, "  icrun -t -dump 0:5 add.ic       # Trace, then dump memory 0..4\n")
	}
	flag.Parse()

	var mf *manifest.Manifest
	if !*noManifest {
		var err error
		mf, err = manifest.FindAndLoad(".")
		if err != nil {
			fatalf("manifest: %v", err)
		}
	}

	image, err := loadImage(*inline, flag.Arg(0), mf)
	if err != nil {
		fatalf("%v", err)
	}

	doTrace := *trace
	doDisasm := *disasmOnly
	dumpRange := *dump
	inputText := *inputs
	if mf != nil {
		doTrace = doTrace || mf.Run.Trace
		doDisasm = doDisasm || mf.Run.Disassemble
		if dumpRange == "" {
			dumpRange = mf.Run.DumpRange
		}
	}

	if doDisasm {
		fmt.Print(intcode.Disassemble(image))
		return
	}

	if doTrace {
		// Per-step trace logs at debug level.
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	feed, err := parseInputs(inputText, mf)
	if err != nil {
		fatalf("inputs: %v", err)
	}

	m := intcode.New(image, feed)
	m.Trace = doTrace
	if err := m.Run(); err != nil {
		fatalf("run: %v", err)
	}

	for _, v := range m.Output() {
		fmt.Println(v)
	}

	if dumpRange != "" {
		start, end, err := parseRange(dumpRange)
		if err != nil {
			fatalf("dump: %v", err)
		}
		fmt.Printf("memory[%d:%d] = %v\n", start, end, m.ReadRange(start, end))
	}
}

// loadImage resolves the program image from, in order of preference: the
// inline text, the path argument, the manifest's configured path.
func loadImage(inline, pathArg string, mf *manifest.Manifest) ([]int64, error) {
	if inline != "" {
		return program.Parse(inline)
	}
	if pathArg != "" {
		return program.LoadFile(pathArg)
	}
	if mf != nil && mf.ProgramPath() != "" {
		return program.LoadFile(mf.ProgramPath())
	}
	return nil, fmt.Errorf("no program given: pass a file, -e, or configure intcode.toml")
}

// parseInputs builds the input feed from the -i flag, falling back to the
// manifest's canned inputs.
func parseInputs(text string, mf *manifest.Manifest) ([]int64, error) {
	if text == "" {
		if mf != nil {
			return mf.Run.Inputs, nil
		}
		return nil, nil
	}
	return program.Parse(text)
}

// parseRange parses a "start:end" memory range.
func parseRange(s string) (int64, int64, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q is not start:end", s)
	}
	start, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("range start: %w", err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("range end: %w", err)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("range %q is not a valid span", s)
	}
	return start, end, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "icrun: "+format+"\n", args...)
	os.Exit(1)
}
