// Package marshal provides struct marshaling and unmarshaling for Data
// Identifier fields. It enables bidirectional conversion between Go structs
// and []message.Field using struct tags to name which Data Identifier a
// field maps to.
package marshal

import "time"

// Option configures the marshaler/unmarshaler behavior.
type Option func(*marshalConfig)

// marshalConfig holds configuration for marshaling/unmarshaling operations.
type marshalConfig struct {
	tagName      string         // struct tag name, default "dmc"
	omitEmpty    bool           // skip zero-value fields when marshaling
	timeFormat   string         // for time.Time fields, default "060102"
	timeLocation *time.Location // timezone for time parsing, default UTC
}

// defaultConfig returns the default marshal configuration.
func defaultConfig() *marshalConfig {
	return &marshalConfig{
		tagName:      "dmc",
		omitEmpty:    false,
		timeFormat:   "060102",
		timeLocation: time.UTC,
	}
}

// applyOptions applies the given options to the configuration.
func (c *marshalConfig) applyOptions(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithTagName sets the struct tag name to use for Data Identifier mapping.
// Default is "dmc".
//
// Example:
//
//	type Item struct {
//	    Serial string `custom:"S"`
//	}
//	m := NewMarshaler(WithTagName("custom"))
func WithTagName(name string) Option {
	return func(c *marshalConfig) {
		if name != "" {
			c.tagName = name
		}
	}
}

// WithOmitEmpty controls whether zero-value fields are omitted when
// marshaling. When true, fields holding a zero value produce no
// message.Field. Default is false.
func WithOmitEmpty(omit bool) Option {
	return func(c *marshalConfig) {
		c.omitEmpty = omit
	}
}

// WithTimeFormat sets the time layout used for parsing and formatting
// time.Time fields. Default is "060102" (the ANSI MH10.8.2 date format,
// YYMMDD).
func WithTimeFormat(format string) Option {
	return func(c *marshalConfig) {
		if format != "" {
			c.timeFormat = format
		}
	}
}

// WithTimeLocation sets the timezone used when parsing time values that
// don't carry their own offset. Default is UTC.
func WithTimeLocation(loc *time.Location) Option {
	return func(c *marshalConfig) {
		if loc != nil {
			c.timeLocation = loc
		}
	}
}
