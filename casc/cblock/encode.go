package cblock

import (
	"list-root/casc/lbytes"
)

func EncodeHeader(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, lbytes.EncodeValueUint32(header.NumFiles)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.Flags)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.Locales)...)
	return bs
}

// EncodeBlock lays out a complete locale block. NumFiles is taken from the
// header as given, so callers can produce inconsistent blocks on purpose.
func EncodeBlock(header Header, deltas []uint32, entries []RawEntry) []byte {
	bs := make([]byte, 0, CalculateBlockSize(len(entries)))
	bs = append(bs, EncodeHeader(header)...)
	for _, delta := range deltas {
		bs = append(bs, lbytes.EncodeValueUint32(delta)...)
	}
	for _, entry := range entries {
		bs = append(bs, entry.EncodingKey[:]...)
		bs = append(bs, lbytes.EncodeValueUint64(entry.NameHash)...)
	}
	return bs
}

func CalculateBlockSize(numFiles int) int {
	return DefaultHeaderSize + numFiles*(DefaultDeltaSize+DefaultEntrySize)
}
