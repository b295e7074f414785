// Command spancat prints the lines of its input grouped into contiguous spans.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"spans/seqs"
)

func main() {
	cfg := defaultConfig()

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] [file]...\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.StringVarP(&cfg.Key, "key", "k", cfg.Key, "span key: line, len, first, field or int")
	pflag.IntVarP(&cfg.Field, "field", "f", cfg.Field, "1-based whitespace field used by --key=field")
	pflag.BoolVar(&cfg.Succ, "succ", cfg.Succ, "join lines whose key is one more than the previous key")
	pflag.BoolVarP(&cfg.Count, "count", "c", cfg.Count, "print the size and first line of every span")
	pflag.BoolVarP(&cfg.Number, "number", "n", cfg.Number, "prefix every span with its number")
	pflag.StringVarP(&cfg.Separator, "separator", "s", cfg.Separator, "line printed between spans")
	pflag.CountVarP(&cfg.Verbosity, "verbose", "v", "verbosity level: warn (0), info, debug")
	pflag.BoolVarP(&cfg.JSONLog, "json-log", "j", cfg.JSONLog, "log output as JSON to stderr")
	pflag.Parse()
	cfg.Files = pflag.Args()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.validate(); err != nil {
		logger.Error("invalid flags", tint.Err(err))
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("spancat finished with errors", tint.Err(err))
		os.Exit(1)
	}
}

func newLogger(cfg config) *slog.Logger {
	level := slog.LevelWarn - slog.Level(4*cfg.Verbosity)

	var handler slog.Handler
	if cfg.JSONLog {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:   level,
			NoColor: os.Getenv("NO_COLOR") != "",
		})
	}

	return slog.New(handler)
}

// run segments the lines of cfg.Files (or stdin) and writes the spans to out.
func run(cfg config, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	src := newLineSource(cfg.Files, stdin, logger)
	defer src.Close()

	k := &keyer{mode: cfg.Key, field: cfg.Field}
	spans := seqs.SpansByKey[line, lineKey](src, k.key, connectedKeys(cfg.Succ))

	w := bufio.NewWriter(out)
	var nspans int
	for span := range spans.All() {
		nspans++
		size, err := writeSpan(w, cfg, nspans, span)
		if err != nil {
			return errors.Wrap(err, "failed to write output")
		}
		logger.Debug("wrote span", "span", nspans, "lines", size)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	logger.Info("segmented input", "spans", nspans, "lines", src.lines)

	var errs *multierror.Error
	errs = multierror.Append(errs, src.Err())
	if k.errs != nil {
		errs = multierror.Append(errs, errors.Wrap(k.errs, "lines without a key"))
	}
	return errs.ErrorOrNil()
}

// writeSpan drains span into w and returns the number of lines it held.
func writeSpan(w *bufio.Writer, cfg config, n int, span *seqs.Span[line, lineKey]) (int, error) {
	if cfg.Count {
		// spans are never empty
		items := span.Collect()
		if cfg.Number {
			fmt.Fprintf(w, "%d\t", n)
		}
		_, err := fmt.Fprintf(w, "%d\t%s\n", len(items), items[0].Text)
		return len(items), err
	}

	if n > 1 {
		fmt.Fprintln(w, cfg.Separator)
	}
	if cfg.Number {
		fmt.Fprintf(w, "#%d\n", n)
	}
	size := 0
	for l := range span.All() {
		if _, err := fmt.Fprintln(w, l.Text); err != nil {
			return size, err
		}
		size++
	}
	return size, nil
}
