// Package casc decodes the root file of a CASC archive into a file table.
package casc

import (
	"fmt"
	"io"
	"log/slog"
)

type (
	DecodeOptions struct {
		// IncludeLowViolence keeps blocks flagged cblock.FlagLowViolence,
		// which are skipped by default.
		IncludeLowViolence bool
		Logger             *slog.Logger
	}
	// ErrFormat is returned when the root file cannot hold a single block header.
	ErrFormat struct {
		Size    int
		MinSize int
	}
)

func (r ErrFormat) Error() string {
	return fmt.Sprintf("root file of %d bytes is smaller than a locale block header (%d bytes)", r.Size, r.MinSize)
}

func (r DecodeOptions) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
