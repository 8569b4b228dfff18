package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"list-root/casc"
	"list-root/casc/cdbc"
	"list-root/casc/centry"
	"list-root/casc/clist"
	"list-root/report"
	"list-root/source"
	"list-root/ui"
)

type (
	Args struct {
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"print the file table"`
		DBC         *DBCCmd         `arg:"subcommand:dbc" help:"write the known files as a FileData DBC"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the file table"`
		Verbose     bool            `arg:"-v" help:"log decoding details"`
	}
	InputArgs struct {
		Listfile           string `arg:"required,env:CASC_LISTFILE" help:"names to recover, one per line" placeholder:"listfile.txt"`
		Root               string `arg:"required,env:CASC_ROOT" help:"path to the root file" placeholder:"root"`
		IncludeLowViolence bool   `arg:"--include-low-violence" help:"keep locale blocks flagged 0x80"`
	}
	DumpCmd struct {
		InputArgs
		Mode string `default:"all" help:"one of all, known, unknown, names, json"`
	}
	DBCCmd struct {
		InputArgs
		Out   string `default:"filedata.dbc" help:"path to destination file" placeholder:"filedata.dbc"`
		Force bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct {
		InputArgs
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Lists the files of a CASC root file.\n",
			"File names are recovered by hashing every line of a listfile;",
			"inputs may be zstd compressed.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func NewLogger(writer io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
}

// Load reads both inputs concurrently, then builds the name index and
// decodes the root file.
func Load(input InputArgs, logger *slog.Logger) ([]centry.Entry, error) {
	listfileBytes := []byte(nil)
	rootBytes := []byte(nil)
	group := errgroup.Group{}
	group.Go(
		func() error {
			bs, err := source.ReadFile(input.Listfile)
			listfileBytes = bs
			return err
		},
	)
	group.Go(
		func() error {
			bs, err := source.ReadFile(input.Root)
			rootBytes = bs
			return err
		},
	)
	if err := group.Wait(); err != nil {
		err := errors.Wrap(err, "cli.Load error")
		return nil, err
	}

	index, err := clist.Read(bytes.NewReader(listfileBytes))
	if err != nil {
		err := errors.Wrap(err, "cli.Load error")
		return nil, err
	}
	logger.Info("listfile loaded", "path", input.Listfile, "names", len(index))

	entries, err := casc.Decode(
		index,
		rootBytes,
		casc.DecodeOptions{
			IncludeLowViolence: input.IncludeLowViolence,
			Logger:             logger,
		},
	)
	if err != nil {
		err := errors.Wrapf(err, `cli.Load error decoding "%s"`, input.Root)
		return nil, err
	}
	logger.Info("root file decoded", "path", input.Root, "entries", len(entries))
	return entries, nil
}

func RunDump(cmd DumpCmd, stdout io.Writer, logger *slog.Logger) error {
	mode, err := report.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}
	entries, err := Load(cmd.InputArgs, logger)
	if err != nil {
		return err
	}
	return report.Write(stdout, entries, mode)
}

func RunDBC(cmd DBCCmd, logger *slog.Logger) error {
	if CheckExistence(cmd.Out) && !cmd.Force {
		return fmt.Errorf(`destination file "%s" exists, run again with --force to overwrite it`, cmd.Out)
	}
	entries, err := Load(cmd.InputArgs, logger)
	if err != nil {
		return err
	}
	file := cdbc.FromEntries(entries)
	if err := os.WriteFile(cmd.Out, cdbc.Encode(file), 0644); err != nil {
		err := errors.Wrapf(err, `cli.RunDBC error writing "%s"`, cmd.Out)
		return err
	}
	logger.Info(
		"dbc written",
		"path", cmd.Out,
		"records", file.Header.NumRecords,
		"string_block_size", file.Header.StringBlockSize,
	)
	return nil
}

func RunInteractive(cmd InteractiveCmd, logger *slog.Logger) error {
	entries, err := Load(cmd.InputArgs, logger)
	if err != nil {
		return err
	}
	summary := report.Summary(entries)
	for _, locale := range summary.Keys() {
		count, _ := summary.Get(locale)
		logger.Debug("locale", "tag", locale, "entries", count)
	}
	return ui.Start(entries)
}

func Run(args Args, stdout io.Writer, logger *slog.Logger) error {
	switch {
	case args.Dump != nil:
		return RunDump(*args.Dump, stdout, logger)
	case args.DBC != nil:
		return RunDBC(*args.DBC, logger)
	case args.Interactive != nil:
		return RunInteractive(*args.Interactive, logger)
	}
	return errors.New("missing subcommand")
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing subcommand: dump, dbc or interactive")
	}

	logger := NewLogger(os.Stderr, args.Verbose)
	if err := Run(args, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
