package casc

import (
	"log/slog"

	"github.com/pkg/errors"

	"list-root/casc/cblock"
	"list-root/casc/centry"
	"list-root/casc/lbytes"
)

type decoder struct {
	reader  *lbytes.Reader
	names   centry.NameLookup
	options DecodeOptions
	logger  *slog.Logger
	entries []centry.Entry
}

// Decode walks the locale blocks of a root file and returns its entries
// sorted by file data id and locale mask.
//
// Decoding stops quietly at the first block that does not fit into bs; the
// entries of all blocks before it are still returned. The only error for
// malformed input is ErrFormat.
func Decode(names centry.NameLookup, bs []byte, options DecodeOptions) ([]centry.Entry, error) {
	if len(bs) < cblock.DefaultHeaderSize {
		return nil, ErrFormat{Size: len(bs), MinSize: cblock.DefaultHeaderSize}
	}

	d := decoder{
		reader:  lbytes.NewBytesReader(bs),
		names:   names,
		options: options,
		logger:  options.logger(),
		entries: make([]centry.Entry, 0),
	}
	if err := d.decodeBlocks(); err != nil {
		err := errors.Wrap(err, "casc.Decode error")
		return nil, err
	}

	return centry.Sort(d.entries), nil
}

func (r *decoder) decodeBlocks() error {
	offset := int64(0)
	numBlocks := 0
	for offset < r.reader.Size() {
		block, err := cblock.Verify(r.reader, offset)
		if err != nil {
			var truncated cblock.ErrTruncated
			if errors.As(err, &truncated) {
				r.logger.Debug(
					"root file truncated",
					"offset", truncated.Offset,
					"section", truncated.Section,
					"blocks", numBlocks,
				)
				return nil
			}
			return err
		}
		numBlocks++
		offset = block.End

		if block.ShouldSkip(r.options.IncludeLowViolence) {
			r.logger.Debug(
				"skipping locale block",
				"offset", block.Offset,
				"flags", block.Header.Flags,
				"files", block.Header.NumFiles,
			)
			continue
		}
		if err := r.expandBlock(*block); err != nil {
			return err
		}
	}
	r.logger.Debug("root file decoded", "blocks", numBlocks, "entries", len(r.entries))
	return nil
}

// expandBlock restores file data ids from their deltas. Each id is the
// previous id plus one plus its delta, starting over at zero in every block.
func (r *decoder) expandBlock(block cblock.Block) error {
	fileDataIndex := uint32(0)
	for i := 0; i < int(block.Header.NumFiles); i++ {
		delta, err := block.Delta(r.reader, i)
		if err != nil {
			return err
		}
		rawEntry, err := block.Entry(r.reader, i)
		if err != nil {
			return err
		}
		fileDataID := fileDataIndex + delta
		entry := centry.Resolve(
			r.names,
			fileDataID,
			block.Header.Locales,
			rawEntry.EncodingKey,
			rawEntry.NameHash,
		)
		r.entries = append(r.entries, entry)
		fileDataIndex = fileDataID + 1
	}
	return nil
}
