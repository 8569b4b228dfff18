package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-root/casc/centry"
	"list-root/casc/ckey"
)

func createEntries() []centry.Entry {
	names := map[uint64]string{0x1: "interface/glue.xml"}
	lookup := lookupFunc(
		func(hash uint64) (string, bool) {
			name, ok := names[hash]
			return name, ok
		},
	)
	key := ckey.FromBytes([]byte{0x01, 0x02, 0x03})
	return []centry.Entry{
		centry.Resolve(lookup, 7, 0x2, key, 0x1),
		centry.Resolve(lookup, 1234567, 0x1f3f6, key, 0x2),
	}
}

type lookupFunc func(hash uint64) (string, bool)

func (r lookupFunc) Lookup(hash uint64) (string, bool) {
	return r(hash)
}

func TestFormatLine(t *testing.T) {
	entries := createEntries()
	assert.Equal(
		t,
		"0000000007.enUS 00000000000000000000000000030201 interface/glue.xml __KNOWN__0000000000000001",
		FormatLine(entries[0]),
	)
	assert.Equal(
		t,
		"0001234567.all 00000000000000000000000000030201 __UNKNOWN__0000000000000002",
		FormatLine(entries[1]),
	)
}

func TestWrite(t *testing.T) {
	entries := createEntries()
	expectedValues := map[Mode]string{
		ModeAll:        FormatLine(entries[0]) + "\n" + FormatLine(entries[1]) + "\n",
		ModeKnown:      FormatLine(entries[0]) + "\n",
		ModeUnknown:    FormatLine(entries[1]) + "\n",
		ModeKnownNames: "interface/glue.xml __KNOWN__0000000000000001\n",
	}
	for mode, expected := range expectedValues {
		buf := bytes.Buffer{}
		require.NoError(t, Write(&buf, entries, mode))
		assert.Equal(t, expected, buf.String(), string(mode))
	}
}

func TestWrite_JSON(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, Write(&buf, createEntries(), ModeJSON))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(7), decoded[0]["file_data_id"])
	assert.Equal(t, "enUS", decoded[0]["locale"])
	assert.Equal(t, "00000000000000000000000000030201", decoded[0]["encoding_key"])
	assert.Equal(t, "0000000000000001", decoded[0]["name_hash"])
	assert.Equal(t, true, decoded[0]["known"])
	assert.Equal(t, "", decoded[1]["name"])

	// keys keep their declared order
	assert.Regexp(t, `(?s)"file_data_id".*"locale".*"locale_mask".*"encoding_key".*"name_hash".*"name".*"known"`, buf.String())
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("unknown")
	require.NoError(t, err)
	assert.Equal(t, ModeUnknown, mode)

	_, err = ParseMode("dump_everything")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestSummary(t *testing.T) {
	summary := Summary(createEntries())
	assert.Equal(t, []string{"enUS", "all"}, summary.Keys())
	count, ok := summary.Get("all")
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}
