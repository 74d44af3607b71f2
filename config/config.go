// Package config resolves the settings table of spec §6 from a TOML file
// and the environment, environment taking precedence. Grounded on
// original_source/utils/config.py, which reads a config file once and lets
// environment variables of the same name override it.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/max-scw/dmc-service/service"
)

// DefaultPrefix is the environment/TOML-section prefix used when none is
// given (spec §6: "a configurable prefix (default DMC)").
const DefaultPrefix = "DMC"

// Settings mirrors service.Options with struct tags describing its TOML
// section key and its environment variable suffix.
type Settings struct {
	UseMessageEnvelope      bool     `toml:"UseMessageEnvelope" env:"USE_MESSAGE_ENVELOPE"`
	UseFormatEnvelope       bool     `toml:"UseFormatEnvelope" env:"USE_FORMAT_ENVELOPE"`
	RectangularDMC          bool     `toml:"RectangularDMC" env:"RECTANGULAR_DMC"`
	NumberQuietZoneModules  int      `toml:"NumberQuietZoneModules" env:"NUMBER_QUIET_ZONE_MODULES"`
	ExplainDataIdentifiers  bool     `toml:"ExplainDataIdentifiers" env:"EXPLAIN_DATA_IDENTIFIERS"`
	RequiredDataIdentifiers []string `toml:"requiredDataIdentifiers" env:"REQUIRED_DATA_IDENTIFIERS"`
	AppStrict               bool     `toml:"AppStrict" env:"APP_STRICT"`
	Title                   string   `toml:"Title" env:"TITLE"`
	Header                  string   `toml:"Header" env:"HEADER"`
	Subheader               string   `toml:"Subheader" env:"SUBHEADER"`
	Text                    string   `toml:"Text" env:"TEXT"`
}

// Default returns Settings populated with spec §6's recognized defaults.
func Default() Settings {
	opts := service.DefaultOptions()
	return fromOptions(opts)
}

// Options converts Settings to the service.Options type the façade expects.
func (s Settings) Options() service.Options {
	return service.Options{
		UseMessageEnvelope:      s.UseMessageEnvelope,
		UseFormatEnvelope:       s.UseFormatEnvelope,
		RectangularDMC:          s.RectangularDMC,
		NumberQuietZoneModules:  s.NumberQuietZoneModules,
		ExplainDataIdentifiers:  s.ExplainDataIdentifiers,
		RequiredDataIdentifiers: s.RequiredDataIdentifiers,
		AppStrict:               s.AppStrict,
		Title:                   s.Title,
		Header:                  s.Header,
		Subheader:               s.Subheader,
		Text:                    s.Text,
	}
}

func fromOptions(o service.Options) Settings {
	return Settings{
		UseMessageEnvelope:      o.UseMessageEnvelope,
		UseFormatEnvelope:       o.UseFormatEnvelope,
		RectangularDMC:          o.RectangularDMC,
		NumberQuietZoneModules:  o.NumberQuietZoneModules,
		ExplainDataIdentifiers:  o.ExplainDataIdentifiers,
		RequiredDataIdentifiers: o.RequiredDataIdentifiers,
		AppStrict:               o.AppStrict,
		Title:                   o.Title,
		Header:                  o.Header,
		Subheader:               o.Subheader,
		Text:                    o.Text,
	}
}

// Load resolves Settings starting from Default, then a TOML file's
// [<prefix>] section (if path is non-empty), then environment variables
// named <prefix>_<KEY> (if set). An empty prefix uses DefaultPrefix.
func Load(path string, prefix string) (Settings, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	settings := Default()

	if path != "" {
		var sections map[string]toml.Primitive
		md, err := toml.DecodeFile(path, &sections)
		if err != nil {
			return Settings{}, fmt.Errorf("config: decoding %s: %w", path, err)
		}
		if section, ok := sections[prefix]; ok {
			if err := md.PrimitiveDecode(section, &settings); err != nil {
				return Settings{}, fmt.Errorf("config: decoding %s section [%s]: %w", path, prefix, err)
			}
		}
	}

	applyEnv(&settings, prefix, os.LookupEnv)
	return settings, nil
}
