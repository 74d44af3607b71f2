// Package build implements the message builder (spec component C4): it
// renders an ordered Data Identifier to value mapping into a properly
// framed ISO/IEC 15434 message string.
package build

// Default builder settings, matching spec §6's recognized option defaults.
const (
	// DefaultUseMessageEnvelope wraps the result in the mandatory message envelope.
	DefaultUseMessageEnvelope = true
	// DefaultUseFormatEnvelope wraps each format's fields in its format envelope.
	DefaultUseFormatEnvelope = true
)

// builderConfig holds the configuration options for building a message.
type builderConfig struct {
	useMessageEnvelope bool
	useFormatEnvelope  bool
}

// defaultConfig returns a builderConfig with spec-default settings.
func defaultConfig() builderConfig {
	return builderConfig{
		useMessageEnvelope: DefaultUseMessageEnvelope,
		useFormatEnvelope:  DefaultUseFormatEnvelope,
	}
}

// Option is a functional option for configuring a Builder.
type Option func(*builderConfig)

// WithMessageEnvelope controls whether the mandatory ISO/IEC 15434 message
// envelope is emitted around the result. Default true.
func WithMessageEnvelope(enable bool) Option {
	return func(c *builderConfig) { c.useMessageEnvelope = enable }
}

// WithFormatEnvelope controls whether each format's fields are wrapped in
// that format's own envelope. Default true. Forced on regardless of this
// setting whenever more than one format is present in a single build
// (spec §4.4: "When multiple format envelopes are emitted in one message,
// use_format_envelope is forced on").
func WithFormatEnvelope(enable bool) Option {
	return func(c *builderConfig) { c.useFormatEnvelope = enable }
}
