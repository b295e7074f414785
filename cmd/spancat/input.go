package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

type line struct {
	Text string
	File string
	Num  int
}

// lineSource reads lines from a list of files in order, or from stdin when
// the list is empty. Files are opened lazily; a file that cannot be read is
// logged, recorded and skipped.
type lineSource struct {
	names  []string
	stdin  io.Reader
	logger *slog.Logger

	scanner *bufio.Scanner
	closer  io.Closer
	name    string
	num     int

	// lines counts every line read across all inputs.
	lines int

	errs *multierror.Error
}

func newLineSource(names []string, stdin io.Reader, logger *slog.Logger) *lineSource {
	if len(names) == 0 {
		names = []string{"-"}
	}
	return &lineSource{names: names, stdin: stdin, logger: logger}
}

func (s *lineSource) Next() (line, bool) {
	for {
		if s.scanner == nil && !s.open() {
			return line{}, false
		}
		if s.scanner.Scan() {
			s.num++
			s.lines++
			return line{Text: s.scanner.Text(), File: s.name, Num: s.num}, true
		}
		if err := s.scanner.Err(); err != nil {
			s.fail(errors.Wrapf(err, "failed to read %s", s.name))
		}
		s.closeCurrent()
	}
}

// open advances to the next readable file. It returns false when no files are left.
func (s *lineSource) open() bool {
	for len(s.names) > 0 {
		name := s.names[0]
		s.names = s.names[1:]

		var r io.Reader
		if name == "-" {
			r = s.stdin
		} else {
			f, err := os.Open(name)
			if err != nil {
				s.fail(errors.Wrap(err, "failed to open input"))
				continue
			}
			r, s.closer = f, f
		}

		s.logger.Debug("reading input", "file", name)
		s.scanner = bufio.NewScanner(r)
		s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		s.name = name
		s.num = 0
		return true
	}
	return false
}

func (s *lineSource) closeCurrent() {
	if s.closer != nil {
		s.closer.Close()
		s.closer = nil
	}
	s.scanner = nil
}

func (s *lineSource) fail(err error) {
	s.logger.Warn("skipping input", tint.Err(err))
	s.errs = multierror.Append(s.errs, err)
}

// Close releases the file being read, if any.
func (s *lineSource) Close() {
	s.closeCurrent()
	s.names = nil
}

func (s *lineSource) Err() error {
	return s.errs.ErrorOrNil()
}
