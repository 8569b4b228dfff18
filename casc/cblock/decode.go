package cblock

import (
	"github.com/pkg/errors"

	"list-root/casc/ckey"
	"list-root/casc/lbytes"
)

func decodeHeader(reader *lbytes.Reader, offset int64) (*Header, error) {
	headerInstructions := []lbytes.Instruction{
		{Key: "num_files", ReadFunction: lbytes.CreateUint32AtReadFunction(reader, offset)},
		{Key: "flags", ReadFunction: lbytes.CreateUint32AtReadFunction(reader, offset+4)},
		{Key: "locales", ReadFunction: lbytes.CreateUint32AtReadFunction(reader, offset+8)},
	}
	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "cblock.decodeHeader error")
		return nil, err
	}
	return header, nil
}

// Verify locates the block starting at offset. The three section ends are
// computed from NumFiles alone and each one is checked against the end of
// the buffer before anything behind it is trusted.
func Verify(reader *lbytes.Reader, offset int64) (*Block, error) {
	size := reader.Size()
	block := Block{Offset: offset}

	block.DeltasOffset = offset + DefaultHeaderSize
	if !reader.Fits(offset, DefaultHeaderSize) {
		return nil, ErrTruncated{Offset: offset, Section: SectionHeader, End: block.DeltasOffset, Size: size}
	}
	header, err := decodeHeader(reader, offset)
	if err != nil {
		return nil, err
	}
	block.Header = *header

	numFiles := int64(header.NumFiles)
	block.EntriesOffset = block.DeltasOffset + numFiles*DefaultDeltaSize
	if block.EntriesOffset > size {
		return nil, ErrTruncated{Offset: offset, Section: SectionDeltas, End: block.EntriesOffset, Size: size}
	}

	block.End = block.EntriesOffset + numFiles*DefaultEntrySize
	if block.End > size {
		return nil, ErrTruncated{Offset: offset, Section: SectionEntries, End: block.End, Size: size}
	}

	return &block, nil
}

// ShouldSkip tells whether the client would ignore the block. Blocks flagged
// FlagDoNotLoad are always skipped, FlagLowViolence ones unless asked for.
func (r Block) ShouldSkip(includeLowViolence bool) bool {
	if r.Header.Flags&FlagDoNotLoad != 0 {
		return true
	}
	if r.Header.Flags&FlagLowViolence != 0 && !includeLowViolence {
		return true
	}
	return false
}

func (r Block) Delta(reader *lbytes.Reader, i int) (uint32, error) {
	delta, err := reader.Uint32At(r.DeltasOffset + int64(i)*DefaultDeltaSize)
	if err != nil {
		err := errors.Wrapf(err, "cblock.Delta error: entry %d", i)
		return 0, err
	}
	return delta, nil
}

func (r Block) Entry(reader *lbytes.Reader, i int) (*RawEntry, error) {
	offset := r.EntriesOffset + int64(i)*DefaultEntrySize
	keyBytes, err := reader.BytesAt(offset, ckey.Size)
	if err != nil {
		err := errors.Wrapf(err, "cblock.Entry error: encoding key of entry %d", i)
		return nil, err
	}
	nameHash, err := reader.Uint64At(offset + ckey.Size)
	if err != nil {
		err := errors.Wrapf(err, "cblock.Entry error: name hash of entry %d", i)
		return nil, err
	}
	return &RawEntry{
		EncodingKey: ckey.FromBytes(keyBytes),
		NameHash:    nameHash,
	}, nil
}
