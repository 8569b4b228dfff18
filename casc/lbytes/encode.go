package lbytes

import (
	"encoding/binary"
)

func EncodeValueUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeValueUint64(value uint64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, value)
	return bs
}

// EncodeValueCString lays out s followed by a terminating zero byte.
func EncodeValueCString(s string) []byte {
	bs := make([]byte, 0, len(s)+1)
	bs = append(bs, s...)
	bs = append(bs, '\u0000')
	return bs
}
