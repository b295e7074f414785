package main

import (
	"github.com/pkg/errors"
)

// Key modes accepted by --key.
const (
	keyLine  = "line"
	keyLen   = "len"
	keyFirst = "first"
	keyField = "field"
	keyInt   = "int"
)

type config struct {
	Key       string
	Field     int
	Succ      bool
	Count     bool
	Number    bool
	Separator string
	Verbosity int
	JSONLog   bool
	Files     []string
}

func defaultConfig() config {
	return config{
		Key:   keyLine,
		Field: 1,
	}
}

func (c *config) validate() error {
	switch c.Key {
	case keyLine, keyLen, keyFirst, keyInt:
	case keyField:
		if c.Field < 1 {
			return errors.Errorf("--field must be at least 1, got %d", c.Field)
		}
	default:
		return errors.Errorf("unknown key mode %q", c.Key)
	}
	if c.Succ && c.Key != keyInt && c.Key != keyLen {
		return errors.Errorf("--succ needs a numeric key (int or len), got %q", c.Key)
	}
	return nil
}
