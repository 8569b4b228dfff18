// Package ckey holds the encoding key that identifies file content in the archive.
package ckey

import (
	"encoding/hex"

	"github.com/samber/lo"
)

const Size = 16

// EncodingKey is opaque: it is only ever compared and displayed.
type EncodingKey [Size]byte

// String renders the key as lower case hex with the stored byte order reversed,
// which is how the listing tools have always printed it.
func (r EncodingKey) String() string {
	return hex.EncodeToString(lo.Reverse(r[:]))
}

func (r EncodingKey) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func FromBytes(bs []byte) EncodingKey {
	key := EncodingKey{}
	copy(key[:], bs)
	return key
}
