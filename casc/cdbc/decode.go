package cdbc

import (
	"fmt"

	"github.com/pkg/errors"

	"list-root/casc/lbytes"
)

func DecodeHeader(reader *lbytes.Reader) (*Header, error) {
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	headerInstructions := []lbytes.Instruction{
		{Key: "magic", ReadFunction: readUint32},
		{Key: "num_records", ReadFunction: readUint32},
		{Key: "num_fields", ReadFunction: readUint32},
		{Key: "record_size", ReadFunction: readUint32},
		{Key: "string_block_size", ReadFunction: readUint32},
	}
	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "cdbc.DecodeHeader error")
		return nil, err
	}
	if header.Magic != Magic {
		return nil, fmt.Errorf(`cdbc.DecodeHeader error: invalid magic number %#x`, header.Magic)
	}
	if header.NumFields != DefaultNumFields || header.RecordSize != DefaultRecordSize {
		return nil, fmt.Errorf(
			`cdbc.DecodeHeader error: unsupported layout of %d fields in %d bytes`,
			header.NumFields, header.RecordSize,
		)
	}
	return header, nil
}

// Decode reads back a FileData DBC as produced by Encode.
func Decode(bs []byte) (*File, error) {
	reader := lbytes.NewBytesReader(bs)
	header, err := DecodeHeader(reader)
	if err != nil {
		return nil, err
	}
	// every count comes from the file, so check it against the buffer first
	expectedSize := int64(DefaultHeaderSize) +
		int64(header.NumRecords)*DefaultRecordSize +
		int64(header.StringBlockSize)
	if expectedSize > int64(len(bs)) {
		return nil, fmt.Errorf(
			`cdbc.Decode error: %d records and a %d byte string block need %d bytes, got %d`,
			header.NumRecords, header.StringBlockSize, expectedSize, len(bs),
		)
	}
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	file := File{
		Header:  *header,
		Records: make([]Record, 0, header.NumRecords),
	}
	for i := uint32(0); i < header.NumRecords; i++ {
		record, err := lbytes.ExecuteInstructions[Record](
			[]lbytes.Instruction{
				{Key: "id", ReadFunction: readUint32},
				{Key: "file_name", ReadFunction: readUint32},
				{Key: "file_path", ReadFunction: readUint32},
			},
		)
		if err != nil {
			err := errors.Wrapf(err, "cdbc.Decode error: record %d", i)
			return nil, err
		}
		file.Records = append(file.Records, *record)
	}
	readStringBlock := lbytes.CreateNBytesReadFunction(reader, int(header.StringBlockSize))
	stringBlock, err := readStringBlock()
	if err != nil {
		err := errors.Wrap(err, "cdbc.Decode error: string block")
		return nil, err
	}
	file.StringBlock = stringBlock.([]byte)
	return &file, nil
}

// String returns the zero terminated string starting at offset.
func (r File) String(offset uint32) (string, error) {
	if int(offset) >= len(r.StringBlock) {
		return "", fmt.Errorf("cdbc.File.String error: offset %d outside string block of %d bytes", offset, len(r.StringBlock))
	}
	rest := r.StringBlock[offset:]
	for i, b := range rest {
		if b == 0 {
			return string(rest[:i]), nil
		}
	}
	return "", fmt.Errorf("cdbc.File.String error: string at offset %d is not terminated", offset)
}
