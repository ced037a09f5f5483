package main

import (
	"flag"
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/positional/digitio"
	"github.com/calebcase/positional/radix"
)

// Error is the error class for the command.
var Error = errs.Class("limbdecode")

type config struct {
	bits       uint
	radix      string
	format     string
	outputBase int
	workers    int
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (cfg config, inputs []string, err error) {
	fs := flag.NewFlagSet("limbdecode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.UintVar(&cfg.bits, "bits", radix.DefaultBits, "digit width in bits; the base is 2^bits")
	fs.StringVar(&cfg.radix, "radix", "", "explicit decimal base, overrides -bits")
	fs.StringVar(&cfg.format, "format", string(digitio.Text), "input format: text, msgp or bsv")
	fs.IntVar(&cfg.outputBase, "output-base", 10, "base of the printed integers (2 to 62)")
	fs.IntVar(&cfg.workers, "workers", 4, "inputs decoded concurrently")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level")

	err = fs.Parse(args)
	if err != nil {
		return cfg, nil, Error.Wrap(err)
	}

	inputs = fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	stdin := 0
	for _, name := range inputs {
		if name == "-" {
			stdin++
		}
	}

	if stdin > 1 {
		return cfg, nil, Error.New("stdin (-) given %d times", stdin)
	}

	return cfg, inputs, nil
}

// schemas returns the decoder and reader configuration.
func (c config) schemas() (rs radix.Schema, ds digitio.Schema, err error) {
	if c.bits == 0 {
		return rs, ds, Error.New("invalid -bits: 0")
	}

	if c.outputBase < 2 || c.outputBase > big.MaxBase {
		return rs, ds, Error.New("invalid -output-base: %d", c.outputBase)
	}

	if c.workers < 1 {
		return rs, ds, Error.New("invalid -workers: %d", c.workers)
	}

	format, err := digitio.ParseFormat(c.format)
	if err != nil {
		return rs, ds, err
	}

	rs.Bits = c.bits
	ds.Format = format
	ds.Bits = min(c.bits, 64)

	if c.radix != "" {
		n, ok := new(big.Int).SetString(c.radix, 10)
		if !ok {
			return rs, ds, Error.New("invalid -radix: %q", c.radix)
		}

		rs.Radix = n
		ds.Bits = 64
	}

	return rs, ds, nil
}
