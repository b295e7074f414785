package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// lineKey is the comparison key derived from a line. Invalid keys are never
// connected to anything.
type lineKey struct {
	str   string
	num   int64
	valid bool
}

func equalKeys(prev, next lineKey) bool {
	return prev.valid && next.valid && prev == next
}

func successiveKeys(prev, next lineKey) bool {
	return prev.valid && next.valid && prev.num+1 == next.num
}

// keyer derives keys from lines and records lines it cannot key.
type keyer struct {
	mode  string
	field int
	errs  *multierror.Error
}

func (k *keyer) key(l line) lineKey {
	switch k.mode {
	case keyLen:
		return lineKey{num: int64(utf8.RuneCountInString(l.Text)), valid: true}
	case keyFirst:
		r, size := utf8.DecodeRuneInString(l.Text)
		if size == 0 {
			return lineKey{valid: true}
		}
		return lineKey{str: string(r), valid: true}
	case keyField:
		fields := strings.Fields(l.Text)
		if k.field > len(fields) {
			return lineKey{valid: true}
		}
		return lineKey{str: fields[k.field-1], valid: true}
	case keyInt:
		n, err := strconv.ParseInt(strings.TrimSpace(l.Text), 10, 64)
		if err != nil {
			k.errs = multierror.Append(k.errs, errors.Wrapf(err, "%s:%d", l.File, l.Num))
			return lineKey{}
		}
		return lineKey{num: n, valid: true}
	default:
		return lineKey{str: l.Text, valid: true}
	}
}

func connectedKeys(succ bool) func(prev, next lineKey) bool {
	if succ {
		return successiveKeys
	}
	return equalKeys
}
