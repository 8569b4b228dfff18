// Package cdbc writes the decoded file table as a FileData DBC.
package cdbc

type (
	Header struct {
		Magic           uint32 `json:"magic"`
		NumRecords      uint32 `json:"num_records"`
		NumFields       uint32 `json:"num_fields"`
		RecordSize      uint32 `json:"record_size"`
		StringBlockSize uint32 `json:"string_block_size"`
	}
	// Record points into the string block for both of its names.
	Record struct {
		ID       uint32 `json:"id"`
		FileName uint32 `json:"file_name"`
		FilePath uint32 `json:"file_path"`
	}
	File struct {
		Header      Header   `json:"header"`
		Records     []Record `json:"records"`
		StringBlock []byte   `json:"string_block"`
	}
)

const (
	// Magic is "WDBC" read as a little-endian uint32.
	Magic             = 0x43424457
	DefaultNumFields  = 3
	DefaultRecordSize = 12
	DefaultHeaderSize = 20
	DefaultFileName   = "filedata.dbc"
)
