// Package clist builds the reverse index from name hashes to listfile names.
package clist

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"list-root/casc/chash"
)

// Index maps the 64-bit name hash stored in a root file to the display form
// of the listfile name it was computed from.
type Index map[uint64]string

// SplitLines splits a listfile into names, accepting both LF and CRLF line
// endings and dropping blank lines.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	lines = lo.Map(
		lines,
		func(line string, _ int) string {
			return strings.TrimSuffix(line, "\r")
		},
	)
	return lo.Filter(
		lines,
		func(line string, _ int) bool {
			return len(line) > 0
		},
	)
}

// Build hashes every name. When two names end up with the same hash, the
// later one wins.
func Build(lines []string) Index {
	return lo.SliceToMap[string, uint64, string](
		lines,
		func(line string) (uint64, string) {
			return chash.HashName(line)
		},
	)
}

func Read(reader io.Reader) (Index, error) {
	bs, err := io.ReadAll(reader)
	if err != nil {
		err := errors.Wrap(err, "clist.Read error")
		return nil, err
	}
	return Build(SplitLines(string(bs))), nil
}

func (r Index) Lookup(hash uint64) (string, bool) {
	name, ok := r[hash]
	return name, ok
}
