// Package main is the entry point for the cstr command line tool, which
// applies byte-string operations to standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/dshills/cstr"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	op       string
	sep      string
	needle   string
	cutset   string
	maxsplit int
	asJSON   bool
	strip    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("cstr %s (%s)\n", version, commit)
		return 0
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
		return 1
	}
	input := cstr.FromBytes(data)
	if opts.strip {
		input = input.RStripChars("\n")
	}

	out, err := apply(input, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func apply(input *cstr.Value, opts options) (string, error) {
	switch opts.op {
	case "split":
		var sep any
		if opts.sep != "" {
			sep = opts.sep
		}
		fields, err := input.Split(sep, opts.maxsplit)
		if err != nil {
			return "", err
		}
		return renderFields(fields, opts.asJSON)

	case "strip":
		if opts.cutset != "" {
			return renderValue(input.StripChars(opts.cutset), opts.asJSON)
		}
		return renderValue(input.Strip(), opts.asJSON)

	case "lower":
		return renderValue(input.Lower(), opts.asJSON)

	case "upper":
		return renderValue(input.Upper(), opts.asJSON)

	case "swapcase":
		return renderValue(input.SwapCase(), opts.asJSON)

	case "find":
		p, err := input.Find(opts.needle, 0, cstr.End)
		if err != nil {
			return "", err
		}
		return renderNumber(p, opts.asJSON)

	case "rfind":
		p, err := input.RFind(opts.needle, 0, cstr.End)
		if err != nil {
			return "", err
		}
		return renderNumber(p, opts.asJSON)

	case "count":
		n, err := input.Count(opts.needle, 0, cstr.End)
		if err != nil {
			return "", err
		}
		return renderNumber(n, opts.asJSON)

	case "partition":
		before, match, after, err := input.Partition(opts.sep)
		if err != nil {
			return "", err
		}
		return renderFields([]*cstr.Value{before, match, after}, opts.asJSON)

	default:
		return "", fmt.Errorf("unknown operation %q", opts.op)
	}
}

func renderValue(v *cstr.Value, asJSON bool) (string, error) {
	if !asJSON {
		return v.String(), nil
	}
	return sjson.Set("{}", "result", v.String())
}

func renderNumber(n int, asJSON bool) (string, error) {
	if !asJSON {
		return fmt.Sprintf("%d", n), nil
	}
	return sjson.Set("{}", "result", n)
}

func renderFields(fields []*cstr.Value, asJSON bool) (string, error) {
	if !asJSON {
		lines := make([]string, len(fields))
		for i, f := range fields {
			lines[i] = f.String()
		}
		return strings.Join(lines, "\n"), nil
	}

	out := `{"fields":[]}`
	var err error
	for _, f := range fields {
		out, err = sjson.Set(out, "fields.-1", f.String())
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.op, "op", "split", "Operation: split, strip, lower, upper, swapcase, find, rfind, count, partition")
	flag.StringVar(&opts.sep, "sep", "", "Separator for split/partition (empty means whitespace runs for split)")
	flag.StringVar(&opts.needle, "needle", "", "Substring for find/rfind/count")
	flag.StringVar(&opts.cutset, "cutset", "", "Byte set for strip (default whitespace)")
	flag.IntVar(&opts.maxsplit, "max", -1, "Maximum number of split points (-1 for no limit)")
	flag.BoolVar(&opts.asJSON, "json", false, "Emit JSON output")
	flag.BoolVar(&opts.strip, "trim-newline", true, "Trim the trailing newline from stdin before applying the operation")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	return opts, showVersion
}
