// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/mipsasm/asm"
	"github.com/ezrec/mipsasm/disasm"
	"github.com/ezrec/mipsasm/isa"
	"github.com/ezrec/mipsasm/memfile"
	"github.com/ezrec/mipsasm/optable"
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

type options struct {
	source      string
	destination string
	table       string
	disassemble bool
	binary      bool
	addresses   bool
	depth       int
	lang        string
	verbose     bool
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.source, "in", "i", "", "The location of the source file to assemble or disassemble")
	flags.StringVarP(&opts.destination, "out", "o", "output.txt", "The location for the processed file")
	flags.BoolVarP(&opts.disassemble, "disassemble", "d", false, "Disassemble the file")
	flags.StringVarP(&opts.table, "table", "t", "", "Opcode table file (.star, .yaml, .xml)")
	flags.BoolVarP(&opts.binary, "binary", "b", false, "Raw big-endian words instead of MIF")
	flags.BoolVarP(&opts.addresses, "addresses", "a", false, "Prefix disassembled lines with their address")
	flags.IntVar(&opts.depth, "depth", 0, "Minimum MIF DEPTH")
	flags.StringVar(&opts.lang, "lang", "", "Message language, ie en-US")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
}

func newCommand() (cmd *cobra.Command) {
	opts := &options{}

	cmd = &cobra.Command{
		Use:           "mipsasm -i SOURCE [-o DESTINATION]",
		Short:         "A basic MIPS assembler and disassembler",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			logrus.SetLevel(logrus.WarnLevel)
			if opts.verbose {
				logrus.SetLevel(logrus.InfoLevel)
			}

			if len(opts.lang) != 0 {
				err = translate.SetLanguage(opts.lang)
			}
			return
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	addFlags(cmd.Flags(), opts)
	_ = cmd.MarkFlagRequired("in")

	return
}

// loadTable loads the opcode table file, or the built-in table.
func loadTable(path string) (table *isa.Table, err error) {
	if len(path) == 0 {
		return optable.Default()
	}

	return optable.Load(path)
}

func run(stdout io.Writer, opts *options) (err error) {
	table, err := loadTable(opts.table)
	if err != nil {
		return
	}

	inf, err := os.Open(opts.source)
	if err != nil {
		return
	}
	defer inf.Close()

	// Output is only written once the whole input translated.
	buff := &bytes.Buffer{}

	var count int
	if opts.disassemble {
		count, err = disassemble(buff, inf, table, opts)
	} else {
		count, err = assemble(buff, inf, table, opts)
	}
	if err != nil {
		err = errors.Wrapf(err, "%v", opts.source)
		return
	}

	err = os.WriteFile(opts.destination, buff.Bytes(), 0o644)
	if err != nil {
		return
	}

	if opts.disassemble {
		fmt.Fprintln(stdout, f("Disassembled %v words to %v", strconv.Itoa(count), opts.destination))
	} else {
		fmt.Fprintln(stdout, f("Assembled %v instructions to %v", strconv.Itoa(count), opts.destination))
	}

	return
}

func assemble(output io.Writer, input io.Reader, table *isa.Table, opts *options) (count int, err error) {
	assembler := &asm.Assembler{Table: table, Verbose: opts.verbose}

	prog, err := assembler.Parse(input)
	if err != nil {
		return
	}

	entries := memfile.Collect(prog.Words())
	count = len(entries)

	if opts.binary {
		err = memfile.WriteRaw(output, entries)
	} else {
		err = memfile.WriteMIF(output, entries, opts.depth)
	}

	return
}

func disassemble(output io.Writer, input io.Reader, table *isa.Table, opts *options) (count int, err error) {
	var entries []memfile.Entry
	if opts.binary {
		entries, err = memfile.ReadRaw(input)
	} else {
		entries, err = memfile.ReadMIF(input)
	}
	if err != nil {
		return
	}

	dis := &disasm.Disassembler{
		Table:     table,
		Verbose:   opts.verbose,
		Addresses: opts.addresses,
	}

	err = dis.Write(output, memfile.All(entries))
	if err != nil {
		return
	}

	count = len(entries)
	return
}

func main() {
	err := newCommand().Execute()
	if err != nil {
		logrus.Fatalf("%v: %v", os.Args[0], err)
	}
}
