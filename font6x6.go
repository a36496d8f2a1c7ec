/*
Package font6x6 is a library for converting the 6 by 6 pixel bitmap font
into the byte array compiled into the display firmware.

A conversion is a single pass: the font table is loaded from its source,
every printable glyph is encoded and the result is written out in one go so
a failure never leaves a partially written file behind.
*/
package font6x6

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Converter encodes font tables.
type Converter struct {
	config Config
	logger logrus.FieldLogger
}

// New returns a Converter for the given configuration. Progress is logged to
// logger at debug level; pass nil to discard it.
func New(config Config, logger logrus.FieldLogger) (*Converter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("font6x6: %w", err)
	}

	if logger == nil {
		l := logrus.New()
		l.SetOutput(ioutil.Discard)
		logger = l
	}

	return &Converter{
		config: config,
		logger: logger,
	}, nil
}

// Config returns the configuration of the converter.
func (c *Converter) Config() Config {
	return c.config
}
