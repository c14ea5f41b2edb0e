package kcmp

import (
	"github.com/go-logr/logr"
)

// Mode determines how a dispatching comparator handles input it has no
// comparator for.
type Mode int

const (
	// Strict fails with an error for unrecognized input.
	Strict Mode = iota
	// Permissive falls back to Unchanged for unrecognized input.
	Permissive
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "Strict"
	case Permissive:
		return "Permissive"
	default:
		return "Unknown"
	}
}

// Option is a function that configures a comparator builder
type Option func(*Config)

// Config holds the settings shared by the builders in this module.
// Obtain it with NewConfig; the zero value is not ready for use.
type Config struct {
	Mode Mode
	Log  logr.Logger
}

// NewConfig applies opts on top of the defaults: Strict mode and a
// discarding logger.
func NewConfig(opts ...Option) Config {
	c := Config{
		Mode: Strict,
		Log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMode sets how unrecognized input is handled
var WithMode = func(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithLogr sets the logger used while building comparators
var WithLogr = func(log logr.Logger) Option {
	return func(c *Config) {
		c.Log = log
	}
}
