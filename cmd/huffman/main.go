/*
Command huffman reads one line of text, builds a Huffman code for it, and
prints the code table, the encoded message and the decoded message.

Usage:

	huffman [-debug] [-packed] [-compare]

  -debug    trace code construction
  -packed   print the encoded message in octet form, together with statistics
  -compare  print the size of the line compressed with zstd as a baseline
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/huffman"
	"github.com/npillmayer/huffman/textinput"
	"github.com/npillmayer/schuko/tracing"
	"github.com/op/go-logging"
)

const progName = "huffman"

var log = logging.MustGetLogger("huffman/cmd")

var leveledLogBackend logging.Leveled

const usageMessage = `Usage: huffman [-debug] [-packed] [-compare]

Reads one line from standard input and prints its Huffman code table,
the encoded message and the decoded message.

  -debug, -d    trace code construction
  -packed, -p   print the encoded message in octet form
  -compare, -c  print a zstd baseline for the line
`

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-12s} | %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

type options struct {
	debug   bool
	packed  bool
	compare bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	flags.BoolVar(&opts.debug, "debug", false, "")
	flags.BoolVar(&opts.debug, "d", false, "")
	flags.BoolVar(&opts.packed, "packed", false, "")
	flags.BoolVar(&opts.packed, "p", false, "")
	flags.BoolVar(&opts.compare, "compare", false, "")
	flags.BoolVar(&opts.compare, "c", false, "")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}
	return opts, nil
}

func main() {
	startLogging()
	opts, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage)
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n\n%s", progName, err, usageMessage)
		os.Exit(2)
	}
	if opts.debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
		tracing.Select("huffman").SetTraceLevel(tracing.LevelDebug)
	}
	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, opts options) error {
	fmt.Fprint(out, "Please enter a string you would like to encode: ")
	reader := textinput.NewReader(in)
	line, err := reader.Line()
	if err != nil {
		return err
	}
	log.Debugf("read line of %d bytes", len(line))
	hc, err := huffman.BuildFrom(reader)
	if err != nil {
		return err
	}
	printCodeTable(out, hc.CodeTable())
	fmt.Fprintf(out, "The encoded message is: %s\n", hc.EncodedMessage())
	decoded, err := hc.DecodeString(hc.EncodedMessage())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "The decoded message is: %s\n", decoded)
	if opts.packed {
		st := hc.Stats()
		fmt.Fprintf(out, "The packed message is: %s\n", hc.PackedMessage())
		fmt.Fprintf(out, "Symbols: %d, distinct: %d, bits: %d of %d (%.1f%%)\n",
			st.Symbols, st.DistinctSymbols, st.EncodedBits, st.FixedWidthBits, 100*st.Ratio())
	}
	if opts.compare {
		n, err := zstdSize([]byte(line))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Huffman: %d octets, zstd: %d octets, plain: %d octets\n",
			hc.Stats().PackedOctets, n, len(line))
	}
	return nil
}

func printCodeTable(out io.Writer, table *huffman.CodeTable) {
	fmt.Fprintln(out, "\nCode table:")
	fmt.Fprintln(out, "*****************")
	for _, e := range table.Entries() {
		fmt.Fprintf(out, "Character: %c has a value of: %s\n", e.Symbol, e.Code)
	}
	fmt.Fprint(out, "*****************\n\n")
}
