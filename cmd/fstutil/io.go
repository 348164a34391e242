package main

import (
	"io"
	"os"

	"github.com/kho/gofst"
)

// openInput opens path for reading, or returns stdin when path is
// "" or "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput opens path for writing, or returns stdout when path is
// "" or "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// readFst reads the text FST at path (or stdin).
func readFst(path string) (*gofst.VectorFst[gofst.TropicalWeight], error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return gofst.ReadTropicalText(in)
}

// writeFst writes fst as text to path (or stdout).
func writeFst(path string, fst *gofst.VectorFst[gofst.TropicalWeight]) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return gofst.WriteTropicalText(out, fst)
}
