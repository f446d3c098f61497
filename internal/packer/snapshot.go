package packer

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// WriteSnapshot writes the packed payload to path as a gzip-compressed dump
// so a summarization request can be reproduced offline.
func WriteSnapshot(path string, result PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(result.Payload)); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadSnapshot reads a payload dump written by WriteSnapshot.
func ReadSnapshot(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return "", err
	}
	defer func() { _ = zr.Close() }()

	b, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
