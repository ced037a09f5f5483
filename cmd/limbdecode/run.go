package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/calebcase/oops"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/positional/digitio"
	"github.com/calebcase/positional/radix"
)

// run decodes every input and writes the results in input order. Inputs are
// decoded concurrently; the first failure cancels the remaining inputs and
// nothing is written.
func run(ctx context.Context, cfg config, inputs []string, sio stdio, logger *log.Logger) (err error) {
	rs, ds, err := cfg.schemas()
	if err != nil {
		return err
	}

	dec, err := radix.NewDecoder(rs)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"base":    dec.Base().String(),
		"format":  ds.Format,
		"inputs":  len(inputs),
		"workers": cfg.workers,
	}).Debug("starting")

	outputs := make([]bytes.Buffer, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, name := range inputs {
		i, name := i, name
		g.Go(func() error {
			return decodeInput(ctx, name, sio.in, ds, dec, cfg.outputBase, &outputs[i], logger)
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}

	for i := range outputs {
		_, err = outputs[i].WriteTo(sio.out)
		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}
	}

	return nil
}

func decodeInput(
	ctx context.Context,
	name string,
	stdin io.Reader,
	schema digitio.Schema,
	dec *radix.Decoder,
	outputBase int,
	out *bytes.Buffer,
	logger *log.Logger,
) (err error) {
	var r io.Reader

	if name == "-" {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}
		defer f.Close()

		r = f
	}

	dr, err := digitio.NewReader(r, schema)
	if err != nil {
		return err
	}

	var sequences, limbs int

	for dr.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		digits := dr.Digits()

		value, err := dec.Decode(digits)
		if err != nil {
			return Error.Wrap(fmt.Errorf("%s:%d: %w", name, dr.Line(), err))
		}

		out.WriteString(value.Text(outputBase))
		out.WriteByte('\n')

		sequences++
		limbs += len(digits)
	}

	err = dr.Err()
	if err != nil {
		return Error.Wrap(fmt.Errorf("%s: %w", name, err))
	}

	logger.WithFields(log.Fields{
		"input":     name,
		"sequences": sequences,
		"limbs":     limbs,
	}).Info("decoded")

	return nil
}
