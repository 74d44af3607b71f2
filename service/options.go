// Package service is the façade (C9) tying together the catalogue, parser,
// builder, validator, and Data Matrix encoder behind the three entry points
// a UI or HTTP adapter needs: BuildMessage, Generate, and Parse.
package service

// Options collects the settings recognized across the façade (spec §6).
// Title/Header/Subheader/Text are UI-only strings the core never
// interprets; they ride along so config.Settings converts to and from
// Options field for field.
type Options struct {
	UseMessageEnvelope      bool
	UseFormatEnvelope       bool
	RectangularDMC          bool
	NumberQuietZoneModules  int
	ExplainDataIdentifiers  bool
	RequiredDataIdentifiers []string
	AppStrict               bool
	Title                   string
	Header                  string
	Subheader               string
	Text                    string
}

// DefaultOptions returns the recognized defaults from spec §6.
func DefaultOptions() Options {
	return Options{
		UseMessageEnvelope:     true,
		UseFormatEnvelope:      true,
		RectangularDMC:         false,
		NumberQuietZoneModules: 2,
		ExplainDataIdentifiers: true,
		AppStrict:              false,
	}
}
