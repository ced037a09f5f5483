package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/positional/digitio"
	"github.com/calebcase/positional/radix"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return logger
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func execute(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()

	cfg, inputs, err := parseFlags(args, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(context.Background(), cfg, inputs, stdio{
		in:  strings.NewReader(stdin),
		out: &out,
	}, quietLogger())

	return out.String(), err
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, nil, "1,0,\n18446744073709551615,\n-\n2,1,0,\n")
	require.NoError(t, err)
	require.Equal(t,
		"18446744073709551616\n"+
			"18446744073709551615\n"+
			"0\n"+
			"680564733841876926945195958937245974528\n",
		out,
	)
}

func TestRunFilesInOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i, body := range []string{"1,\n2,\n", "3,\n", "", "4,5,\n"} {
		paths = append(paths, writeFile(t, dir, string(rune('a'+i))+".txt", []byte(body)))
	}

	out, err := execute(t, append([]string{"-workers", "2", "-bits", "8"}, paths...), "")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n1029\n", out)
}

func TestRunMsgp(t *testing.T) {
	dir := t.TempDir()

	var b []byte
	b = digitio.AppendMsg(b, []uint64{1, 0})
	b = digitio.AppendMsg(b, []uint64{255})
	path := writeFile(t, dir, "in.msgp", b)

	out, err := execute(t, []string{"-format", "msgp", "-output-base", "16", path}, "")
	require.NoError(t, err)
	require.Equal(t, "10000000000000000\nff\n", out)
}

func TestRunBSV(t *testing.T) {
	dir := t.TempDir()

	var b []byte
	var err error
	for _, ds := range [][]uint64{{1, 0}, nil, {255}} {
		b, err = digitio.AppendBSV(b, ds)
		require.NoError(t, err)
	}
	path := writeFile(t, dir, "in.bsv", b)

	out, err := execute(t, []string{"-format", "bsv", "-output-base", "16", path}, "")
	require.NoError(t, err)
	require.Equal(t, "10000000000000000\n0\nff\n", out)
}

func TestRunRadix(t *testing.T) {
	out, err := execute(t, []string{"-radix", "10"}, "1,2,3,\n9,9,\n")
	require.NoError(t, err)
	require.Equal(t, "123\n99\n", out)

	out, err = execute(t, []string{"-bits", "128"}, "1,0,\n")
	require.NoError(t, err)
	require.Equal(t, "340282366920938463463374607431768211456\n", out)
}

func TestRunErrors(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		out, err := execute(t, []string{"-radix", "10"}, "1,\n1,10,\n")
		require.ErrorIs(t, err, radix.ErrOutOfRangeDigit)
		require.True(t, Error.Has(err))
		require.Contains(t, err.Error(), "-:2")
		require.Empty(t, out)
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := execute(t, nil, "1,a,\n")
		require.ErrorIs(t, err, digitio.ErrSyntax)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, []string{filepath.Join(t.TempDir(), "nope")}, "")
		require.True(t, Error.Has(err))
		require.Contains(t, err.Error(), "nope")
	})

	t.Run("invalid radix", func(t *testing.T) {
		_, err := execute(t, []string{"-radix", "1"}, "")
		require.ErrorIs(t, err, radix.ErrInvalidBase)

		_, err = execute(t, []string{"-radix", "ten"}, "")
		require.True(t, Error.Has(err))
	})

	t.Run("invalid config", func(t *testing.T) {
		for _, args := range [][]string{
			{"-bits", "0"},
			{"-output-base", "1"},
			{"-output-base", "63"},
			{"-workers", "0"},
			{"-format", "csv"},
		} {
			_, err := execute(t, args, "")
			require.Error(t, err, "%v", args)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		_, _, err := parseFlags([]string{"-nope"}, io.Discard)
		require.True(t, Error.Has(err))
	})

	t.Run("stdin twice", func(t *testing.T) {
		_, _, err := parseFlags([]string{"-", "-"}, io.Discard)
		require.True(t, Error.Has(err))

		_, inputs, err := parseFlags([]string{"-"}, io.Discard)
		require.NoError(t, err)
		require.Equal(t, []string{"-"}, inputs)
	})
}
