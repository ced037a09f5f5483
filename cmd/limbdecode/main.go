// Command limbdecode decodes digit sequences into integers.
//
// Usage:
//
//  limbdecode [flags] [file ...]
//
// Every input holds digit sequences (see package digitio), most significant
// digit first. Each sequence is decoded with the configured base and written
// to stdout as one integer per line, inputs in argument order. With no files,
// or the file "-", stdin is read.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg, inputs, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.WithError(err).Error("invalid arguments")
		os.Exit(2)
	}

	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		logger.WithError(err).Error("invalid log level")
		os.Exit(2)
	}
	logger.SetLevel(level)

	err = run(context.Background(), cfg, inputs, stdio{
		in:  os.Stdin,
		out: os.Stdout,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("decode failed")
		os.Exit(1)
	}
}

type stdio struct {
	in  io.Reader
	out io.Writer
}
