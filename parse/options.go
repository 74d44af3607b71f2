// Package parse implements the ISO/IEC 15434 message parser (spec §4.3):
// it locates the message envelope, locates any format envelopes nested
// inside it, and splits each format's payload into field strings.
package parse

import "github.com/max-scw/dmc-service/message"

// Default parser configuration values.
const (
	defaultMaxFields      = 10000 // DoS protection: maximum fields per format payload
	defaultMaxFieldLength = 65536 // DoS protection: maximum field length in bytes
)

// parserConfig holds the parser configuration.
type parserConfig struct {
	defaultFormat  message.FormatName // used when no format envelope is found
	maxFields      int                // DoS protection
	maxFieldLength int                // DoS protection
}

// defaultConfig returns a parser configuration with default values.
func defaultConfig() parserConfig {
	return parserConfig{
		defaultFormat:  message.DefaultFormat,
		maxFields:      defaultMaxFields,
		maxFieldLength: defaultMaxFieldLength,
	}
}

// Option is a functional option for configuring the parser.
type Option func(*parserConfig)

// WithDefaultFormat overrides the format used when no format envelope is
// found in the message payload (spec §4.3, step 3). The default is
// message.DefaultFormat ("ANSI-MH-10").
func WithDefaultFormat(name message.FormatName) Option {
	return func(c *parserConfig) {
		c.defaultFormat = name
	}
}

// WithMaxFields sets the maximum number of fields allowed in a single
// format payload. This is a DoS protection mechanism to prevent processing
// of maliciously large messages. Default is 10000.
func WithMaxFields(limit int) Option {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxFields = limit
		}
	}
}

// WithMaxFieldLength sets the maximum field length allowed, in bytes.
// Default is 65536.
func WithMaxFieldLength(limit int) Option {
	return func(c *parserConfig) {
		if limit > 0 {
			c.maxFieldLength = limit
		}
	}
}
