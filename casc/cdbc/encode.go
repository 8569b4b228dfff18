package cdbc

import (
	"strings"

	"github.com/samber/lo"

	"list-root/casc/centry"
	"list-root/casc/lbytes"
)

// SplitPath turns a display name into the upper case, backslash separated
// directory (always ending in a backslash) and file name stored in the DBC.
func SplitPath(name string) (string, string) {
	parent := ""
	fileName := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		parent = name[:i]
		fileName = name[i+1:]
	}
	dir := strings.ReplaceAll(strings.ToUpper(parent+"/"), "/", `\`)
	return dir, strings.ToUpper(fileName)
}

// FromEntries keeps the known entries only. The directory of each entry is
// added to the string block before its file name.
func FromEntries(entries []centry.Entry) File {
	stringBlock := NewStringBlock()
	knownEntries := lo.Filter(
		entries,
		func(entry centry.Entry, _ int) bool {
			return entry.IsKnown
		},
	)
	records := lo.Map(
		knownEntries,
		func(entry centry.Entry, _ int) Record {
			dir, fileName := SplitPath(entry.Name)
			dirOffset := stringBlock.Add(dir)
			fileNameOffset := stringBlock.Add(fileName)
			return Record{
				ID:       entry.FileDataID,
				FileName: fileNameOffset,
				FilePath: dirOffset,
			}
		},
	)

	return File{
		Header: Header{
			Magic:           Magic,
			NumRecords:      uint32(len(records)),
			NumFields:       DefaultNumFields,
			RecordSize:      DefaultRecordSize,
			StringBlockSize: uint32(len(stringBlock.Bytes())),
		},
		Records:     records,
		StringBlock: stringBlock.Bytes(),
	}
}

func EncodeHeader(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, lbytes.EncodeValueUint32(header.Magic)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.NumRecords)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.NumFields)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.RecordSize)...)
	bs = append(bs, lbytes.EncodeValueUint32(header.StringBlockSize)...)
	return bs
}

func EncodeRecord(record Record) []byte {
	bs := make([]byte, 0, DefaultRecordSize)
	bs = append(bs, lbytes.EncodeValueUint32(record.ID)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.FileName)...)
	bs = append(bs, lbytes.EncodeValueUint32(record.FilePath)...)
	return bs
}

func Encode(file File) []byte {
	size := DefaultHeaderSize + len(file.Records)*DefaultRecordSize + len(file.StringBlock)
	bs := make([]byte, 0, size)
	bs = append(bs, EncodeHeader(file.Header)...)
	for _, record := range file.Records {
		bs = append(bs, EncodeRecord(record)...)
	}
	bs = append(bs, file.StringBlock...)
	return bs
}
