// Package clocale turns locale masks into short readable tags.
package clocale

import (
	"strings"
)

type (
	Group struct {
		Mask  uint32
		Label string
	}
)

const (
	LabelAll  = "all"
	LabelNone = "none"
	// LabelNew stands for bits no known group covers.
	LabelNew = "new!"
)

// AllMasks are the masks meaning "every locale".
var AllMasks = []uint32{0x1f3f6, 0xffffffff}

// Groups are tried in order, composite regions before single locales. Each
// match removes its bits, so the order decides how overlapping masks render.
var Groups = []Group{
	{0x182b0, "eu"},
	{0x1a2b0, "eur"},
	{0x00144, "asia"},
	{0x05002, "amer"},
	{0x00140, "zhXX"},
	{0x01080, "esXX"},
	{0x14000, "ptXX"},
	{0x00202, "enXX"},

	{0x00001, "0001"},
	{0x00002, "enUS"},
	{0x00004, "koKR"},
	{0x00008, "0008"},
	{0x00010, "frFR"},
	{0x00020, "deDE"},
	{0x00040, "zhCN"},
	{0x00080, "esES"},
	{0x00100, "zhTW"},
	{0x00200, "enGB"},
	{0x00400, "0400"},
	{0x00800, "0800"},
	{0x01000, "esMX"},
	{0x02000, "ruRU"},
	{0x04000, "ptBR"},
	{0x08000, "itIT"},
	{0x10000, "ptPT"},
	{0xfffe0000, LabelNew},
}

// Decompose greedily strips Groups from mask and returns the matched labels
// along with the bits left over.
func Decompose(mask uint32) ([]string, uint32) {
	labels := make([]string, 0)
	for _, group := range Groups {
		if mask == 0 {
			break
		}
		if mask&group.Mask == group.Mask {
			labels = append(labels, group.Label)
			mask &^= group.Mask
		}
	}
	return labels, mask
}

func Render(mask uint32) string {
	for _, all := range AllMasks {
		if mask == all {
			return LabelAll
		}
	}
	if mask == 0 {
		return LabelNone
	}

	labels, rest := Decompose(mask)
	if rest != 0 {
		labels = append(labels, LabelNew)
	}
	return strings.Join(labels, "+")
}
