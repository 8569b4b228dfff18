package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Fits reports whether n bytes starting at offset lie inside the buffer.
func (b *Reader) Fits(offset int64, n int64) bool {
	if offset < 0 || n < 0 {
		return false
	}
	return offset+n <= b.Size()
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs := make([]byte, 4)
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	// ReadFull turns a short read into io.ErrUnexpectedEOF
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// BytesAt reads n bytes at offset without moving the reader's cursor.
func (b *Reader) BytesAt(offset int64, n int) ([]byte, error) {
	if !b.Fits(offset, int64(n)) {
		return nil, ErrOutOfBounds{Offset: offset, Length: int64(n), Size: b.Size()}
	}
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	if _, err := b.ReadAt(bs, offset); err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) Uint32At(offset int64) (uint32, error) {
	bs, err := b.BytesAt(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) Uint64At(offset int64) (uint64, error) {
	bs, err := b.BytesAt(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bs), nil
}
