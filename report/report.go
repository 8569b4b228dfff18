// Package report prints the decoded file table.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"list-root/casc/centry"
	"list-root/casc/clocale"
	"list-root/ds"
)

type Mode string

const (
	ModeAll        = Mode("all")
	ModeKnown      = Mode("known")
	ModeUnknown    = Mode("unknown")
	ModeKnownNames = Mode("names")
	ModeJSON       = Mode("json")
)

var Modes = []Mode{ModeAll, ModeKnown, ModeUnknown, ModeKnownNames, ModeJSON}

func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if !lo.Contains(Modes, mode) {
		return "", fmt.Errorf(`report.ParseMode error: unknown mode "%s", expected one of %v`, s, Modes)
	}
	return mode, nil
}

// FormatLine renders an entry as "<id>.<locale> <encoding key> <display name>"
// with the id zero padded to ten digits.
func FormatLine(entry centry.Entry) string {
	return fmt.Sprintf(
		"%010d.%s %s %s",
		entry.FileDataID,
		clocale.Render(entry.Locales),
		entry.EncodingKey,
		entry.DisplayName,
	)
}

func Filter(entries []centry.Entry, mode Mode) []centry.Entry {
	switch mode {
	case ModeKnown, ModeKnownNames:
		return lo.Filter(
			entries,
			func(entry centry.Entry, _ int) bool {
				return entry.IsKnown
			},
		)
	case ModeUnknown:
		return lo.Filter(
			entries,
			func(entry centry.Entry, _ int) bool {
				return !entry.IsKnown
			},
		)
	}
	return entries
}

func ToOrderedMap(entry centry.Entry) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("file_data_id", entry.FileDataID)
	lhm.Set("locale", clocale.Render(entry.Locales))
	lhm.Set("locale_mask", entry.Locales)
	lhm.Set("encoding_key", entry.EncodingKey.String())
	lhm.Set("name_hash", centry.FormatNameHash(entry.NameHash))
	lhm.Set("name", entry.Name)
	lhm.Set("known", entry.IsKnown)
	return lhm
}

func Write(writer io.Writer, entries []centry.Entry, mode Mode) error {
	if mode == ModeJSON {
		return WriteJSON(writer, entries)
	}

	buffered := bufio.NewWriter(writer)
	for _, entry := range Filter(entries, mode) {
		line := FormatLine(entry)
		if mode == ModeKnownNames {
			line = entry.DisplayName
		}
		if _, err := fmt.Fprintln(buffered, line); err != nil {
			err := errors.Wrap(err, "report.Write error")
			return err
		}
	}
	if err := buffered.Flush(); err != nil {
		err := errors.Wrap(err, "report.Write error flushing output")
		return err
	}
	return nil
}

func WriteJSON(writer io.Writer, entries []centry.Entry) error {
	lhms := lo.Map(
		entries,
		func(entry centry.Entry, _ int) *orderedmap.OrderedMap {
			return ToOrderedMap(entry)
		},
	)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(lhms); err != nil {
		err := errors.Wrap(err, "report.WriteJSON error")
		return err
	}
	return nil
}

// Summary counts entries per locale tag, in order of first appearance.
func Summary(entries []centry.Entry) *ds.LinkedHashMap[string, int] {
	counts := ds.NewLinkedHashMap[string, int]()
	for _, entry := range entries {
		locale := clocale.Render(entry.Locales)
		count, _ := counts.Get(locale)
		counts.Put(locale, count+1)
	}
	return counts
}
