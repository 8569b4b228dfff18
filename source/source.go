// Package source loads input files fully into memory.
package source

import (
	"bytes"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// ZstdMagic starts every zstd frame.
var ZstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func IsZstd(bs []byte) bool {
	return bytes.HasPrefix(bs, ZstdMagic)
}

// Decompress returns bs unchanged unless it is a zstd stream.
func Decompress(bs []byte) ([]byte, error) {
	if !IsZstd(bs) {
		return bs, nil
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		err := errors.Wrap(err, "source.Decompress error creating zstd decoder")
		return nil, err
	}
	defer decoder.Close()

	decoded, err := decoder.DecodeAll(bs, nil)
	if err != nil {
		err := errors.Wrap(err, "source.Decompress error")
		return nil, err
	}
	return decoded, nil
}

func ReadFile(path string) ([]byte, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrapf(err, `source.ReadFile error reading "%s"`, path)
		return nil, err
	}
	bs, err = Decompress(bs)
	if err != nil {
		err := errors.Wrapf(err, `source.ReadFile error decompressing "%s"`, path)
		return nil, err
	}
	return bs, nil
}
