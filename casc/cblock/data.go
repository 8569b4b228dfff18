package cblock

import (
	"fmt"

	"list-root/casc/ckey"
)

type (
	// Header is the on-disk start of a locale block.
	Header struct {
		NumFiles uint32 `json:"num_files"`
		Flags    uint32 `json:"flags"`
		Locales  uint32 `json:"locales"`
	}
	// Block locates one locale block inside the root file buffer. It owns no
	// bytes; every offset is relative to the start of the buffer.
	Block struct {
		Header        Header `json:"header"`
		Offset        int64  `json:"offset"`
		DeltasOffset  int64  `json:"deltas_offset"`
		EntriesOffset int64  `json:"entries_offset"`
		End           int64  `json:"end"`
	}
	// RawEntry is one record of the block's entry array.
	RawEntry struct {
		EncodingKey ckey.EncodingKey `json:"encoding_key"`
		NameHash    uint64           `json:"name_hash"`
	}
	// ErrTruncated reports the first section of a block that does not fit
	// into the buffer.
	ErrTruncated struct {
		Offset  int64
		Section string
		End     int64
		Size    int64
	}
)

const (
	DefaultHeaderSize = 12
	DefaultDeltaSize  = 4
	DefaultEntrySize  = ckey.Size + 8
)

const (
	// FlagLowViolence marks blocks the client only loads in low violence mode.
	FlagLowViolence = 0x80
	// FlagDoNotLoad marks blocks the client never loads.
	FlagDoNotLoad = 0x100
)

const (
	SectionHeader  = "header"
	SectionDeltas  = "deltas"
	SectionEntries = "entries"
)

func (r ErrTruncated) Error() string {
	return fmt.Sprintf(
		"locale block at offset %d: %s section ends at %d, past buffer size %d",
		r.Offset, r.Section, r.End, r.Size,
	)
}
