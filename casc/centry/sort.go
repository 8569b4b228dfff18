package centry

import (
	"sort"

	"list-root/ds"
)

// Sort orders entries by file data id, then locale mask. Entries equal in
// both keep their decode order.
func Sort(entries []Entry) []Entry {
	entriesCopy := ds.ShallowCopy(entries)
	sort.SliceStable(
		entriesCopy,
		func(i, j int) bool {
			return ds.CompareTuple(
				entriesCopy[i].FileDataID, entriesCopy[i].Locales,
				entriesCopy[j].FileDataID, entriesCopy[j].Locales,
			) < 0
		},
	)
	return entriesCopy
}
