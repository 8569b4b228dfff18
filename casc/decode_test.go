package casc

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-root/casc/cblock"
	"list-root/casc/centry"
	"list-root/casc/ckey"
	"list-root/casc/clist"
)

func createBlock(flags uint32, locales uint32, deltas []uint32, nameHashes []uint64) []byte {
	entries := lo.Map(
		nameHashes,
		func(nameHash uint64, i int) cblock.RawEntry {
			return cblock.RawEntry{
				EncodingKey: ckey.FromBytes([]byte{byte(i), 0xee}),
				NameHash:    nameHash,
			}
		},
	)
	header := cblock.Header{
		NumFiles: uint32(len(deltas)),
		Flags:    flags,
		Locales:  locales,
	}
	return cblock.EncodeBlock(header, deltas, entries)
}

func concat(blocks ...[]byte) []byte {
	return lo.Flatten(blocks)
}

func fileDataIDs(entries []centry.Entry) []uint32 {
	return lo.Map(
		entries,
		func(entry centry.Entry, _ int) uint32 {
			return entry.FileDataID
		},
	)
}

func TestDecode_Deltas(t *testing.T) {
	bs := createBlock(0, 0x2, []uint32{0, 0, 5}, []uint64{1, 2, 3})

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 7}, fileDataIDs(entries))
	assert.Equal(t, ckey.FromBytes([]byte{2, 0xee}), entries[2].EncodingKey)
	assert.Equal(t, uint64(3), entries[2].NameHash)
	assert.Equal(t, uint32(0x2), entries[2].Locales)
}

func TestDecode_CounterResetsPerBlock(t *testing.T) {
	bs := concat(
		createBlock(0, 0x2, []uint32{10, 0}, []uint64{1, 2}),
		createBlock(0, 0x4, []uint32{0, 10}, []uint64{3, 4}),
	)

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 10, 11, 11}, fileDataIDs(entries))
	// same id, lower locale mask first
	assert.Equal(t, uint32(0x2), entries[2].Locales)
	assert.Equal(t, uint32(0x4), entries[3].Locales)
}

func TestDecode_StableTies(t *testing.T) {
	bs := concat(
		createBlock(0, 0x2, []uint32{4}, []uint64{0xb}),
		createBlock(0, 0x2, []uint32{4}, []uint64{0xa}),
	)

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(0xb), entries[0].NameHash)
	assert.Equal(t, uint64(0xa), entries[1].NameHash)
}

func TestDecode_Names(t *testing.T) {
	index := clist.Build([]string{"Interface/Glue.xml"})
	knownHash := lo.Keys(index)[0]
	bs := createBlock(0, 0x2, []uint32{0, 0}, []uint64{knownHash, 0x1234})

	entries, err := Decode(index, bs, DecodeOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].IsKnown)
	assert.Equal(t, "interface/glue.xml", entries[0].Name)
	assert.Equal(t, "interface/glue.xml __KNOWN__"+centry.FormatNameHash(knownHash), entries[0].DisplayName)
	assert.False(t, entries[1].IsKnown)
	assert.Equal(t, "__UNKNOWN__0000000000001234", entries[1].DisplayName)
}

func TestDecode_SkippedBlocks(t *testing.T) {
	bs := concat(
		createBlock(cblock.FlagDoNotLoad, 0x2, []uint32{1}, []uint64{1}),
		createBlock(cblock.FlagLowViolence, 0x2, []uint32{2}, []uint64{2}),
		createBlock(0, 0x2, []uint32{3}, []uint64{3}),
	)

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, fileDataIDs(entries))

	entries, err = Decode(clist.Index{}, bs, DecodeOptions{IncludeLowViolence: true})
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, fileDataIDs(entries))
}

func TestDecode_EmptyBlocks(t *testing.T) {
	bs := concat(
		createBlock(0, 0x2, nil, nil),
		createBlock(0, 0x2, []uint32{6}, []uint64{1}),
		createBlock(0, 0x2, nil, nil),
	)

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{6}, fileDataIDs(entries))
}

func TestDecode_TruncatedHeader(t *testing.T) {
	first := createBlock(0, 0x2, []uint32{0, 1}, []uint64{1, 2})
	second := createBlock(0, 0x4, []uint32{0}, []uint64{3})
	bs := concat(first, second[:7])

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2}, fileDataIDs(entries))
}

func TestDecode_OversizedFileCount(t *testing.T) {
	first := createBlock(0, 0x2, []uint32{5}, []uint64{1})
	second := createBlock(0, 0x4, []uint32{0, 0}, []uint64{2, 3})
	// claim more files than the rest of the buffer can hold
	copy(second[0:4], []byte{0xff, 0xff, 0x00, 0x00})
	third := createBlock(0, 0x8, []uint32{9}, []uint64{4})
	bs := concat(first, second, third)

	entries, err := Decode(clist.Index{}, bs, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{5}, fileDataIDs(entries))
}

func TestDecode_TruncatedFirstBlock(t *testing.T) {
	bs := createBlock(0, 0x2, []uint32{0, 1}, []uint64{1, 2})

	entries, err := Decode(clist.Index{}, bs[:len(bs)-1], DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_TooSmall(t *testing.T) {
	for _, size := range []int{0, 1, cblock.DefaultHeaderSize - 1} {
		_, err := Decode(clist.Index{}, make([]byte, size), DecodeOptions{})
		var formatErr ErrFormat
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, ErrFormat{Size: size, MinSize: cblock.DefaultHeaderSize}, formatErr)
	}

	entries, err := Decode(clist.Index{}, make([]byte, cblock.DefaultHeaderSize), DecodeOptions{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
