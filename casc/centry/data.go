package centry

import (
	"list-root/casc/ckey"
)

type (
	// Entry is one decoded root file record.
	Entry struct {
		FileDataID  uint32           `json:"file_data_id"`
		Locales     uint32           `json:"locales"`
		EncodingKey ckey.EncodingKey `json:"encoding_key"`
		NameHash    uint64           `json:"name_hash"`
		// Name is the recovered listfile name, empty when the hash is unknown.
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
		IsKnown     bool   `json:"is_known"`
	}
)

const (
	KnownMarker   = "__KNOWN__"
	UnknownMarker = "__UNKNOWN__"
)
