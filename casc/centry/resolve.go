package centry

import (
	"fmt"

	"list-root/casc/ckey"
)

// NameLookup is satisfied by clist.Index.
type NameLookup interface {
	Lookup(hash uint64) (string, bool)
}

func FormatNameHash(hash uint64) string {
	return fmt.Sprintf("%016x", hash)
}

// Resolve builds the entry for a name hash, filling in the display name from
// names when the hash is known there.
func Resolve(
	names NameLookup,
	fileDataID uint32,
	locales uint32,
	encodingKey ckey.EncodingKey,
	nameHash uint64,
) Entry {
	entry := Entry{
		FileDataID:  fileDataID,
		Locales:     locales,
		EncodingKey: encodingKey,
		NameHash:    nameHash,
	}
	name, ok := names.Lookup(nameHash)
	if ok {
		entry.Name = name
		entry.DisplayName = name + " " + KnownMarker + FormatNameHash(nameHash)
		entry.IsKnown = true
	} else {
		entry.DisplayName = UnknownMarker + FormatNameHash(nameHash)
	}
	return entry
}
