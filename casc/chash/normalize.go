package chash

import (
	"github.com/samber/lo"
)

// Both normalizations work byte by byte on ASCII only, so multi-byte UTF-8
// sequences pass through untouched and the hashed bytes stay stable.

func toUpperASCII(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// NormalizeForHash turns a listfile name into the form the archive hashes:
// backslash separated and upper case.
func NormalizeForHash(name string) string {
	return string(
		lo.Map(
			[]byte(name),
			func(b byte, _ int) byte {
				if b == '/' {
					return '\\'
				}
				return toUpperASCII(b)
			},
		),
	)
}

// NormalizeForDisplay turns a listfile name into a slash separated, lower case path.
func NormalizeForDisplay(name string) string {
	return string(
		lo.Map(
			[]byte(name),
			func(b byte, _ int) byte {
				if b == '\\' {
					return '/'
				}
				return toLowerASCII(b)
			},
		),
	)
}

// HashName normalizes name for hashing and returns its 64-bit hash together
// with the display form of the same name.
func HashName(name string) (uint64, string) {
	return Hash64([]byte(NormalizeForHash(name))), NormalizeForDisplay(name)
}
