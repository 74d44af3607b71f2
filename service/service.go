package service

import (
	"sort"
	"strings"

	"github.com/max-scw/dmc-service/build"
	"github.com/max-scw/dmc-service/catalog"
	"github.com/max-scw/dmc-service/diagnostic"
	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
	"github.com/max-scw/dmc-service/parse"
	"github.com/max-scw/dmc-service/symbol"
	"github.com/max-scw/dmc-service/validate"
)

// Facade exposes the three entry points spec §4.9 requires of a UI/HTTP
// caller: building a wire message, rendering a Data Matrix bitmap, and
// parsing a wire message back into fields.
type Facade interface {
	BuildMessage(fields map[message.FormatName][]message.Field, opts Options) (string, error)
	Generate(fields map[message.FormatName][]message.Field, opts Options) (symbol.Bitmap, []diagnostic.Diagnostic, error)
	Parse(data string, opts Options) (map[message.FormatName][]message.Field, error)
}

type facade struct {
	catalogue *catalog.Catalogue
}

// New builds a Facade backed by the given catalogue. Callers that don't
// need a custom dictionary should pass the result of DefaultCatalogue.
func New(cat *catalog.Catalogue) Facade {
	return &facade{catalogue: cat}
}

// BuildMessage renders fields into the framed wire message text described
// by spec §4.4, after checking for duplicate Data Identifiers across the
// whole message and, if opts.RequiredDataIdentifiers is set, that every
// required OR-group has a representative among the combined fields.
func (f *facade) BuildMessage(fields map[message.FormatName][]message.Field, opts Options) (string, error) {
	if err := checkDuplicates(fields); err != nil {
		return "", err
	}
	if groups := ParseRequiredGroups(opts.RequiredDataIdentifiers); len(groups) > 0 {
		if missing := CheckRequired(allDIs(fields), groups); len(missing) > 0 {
			return "", message.New(message.KindMissingRequired, formatMissingGroups(missing))
		}
	}

	builder := build.New(f.catalogue,
		build.WithMessageEnvelope(opts.UseMessageEnvelope),
		build.WithFormatEnvelope(opts.UseFormatEnvelope),
	)
	return builder.Build(fields)
}

// Generate builds the wire message from fields, then encodes it into a
// Data Matrix bitmap per opts' shape and quiet-zone settings.
func (f *facade) Generate(fields map[message.FormatName][]message.Field, opts Options) (symbol.Bitmap, []diagnostic.Diagnostic, error) {
	text, err := f.BuildMessage(fields, opts)
	if err != nil {
		return symbol.Bitmap{}, nil, err
	}

	shape := symbol.ShapeSquare
	if opts.RectangularDMC {
		shape = symbol.ShapeRectangular
	}
	quietZone := opts.NumberQuietZoneModules
	if quietZone == 0 {
		quietZone = DefaultOptions().NumberQuietZoneModules
	}

	enc := symbol.New(symbol.WithShape(shape), symbol.WithQuietZone(quietZone))
	return enc.Encode(text)
}

// Parse locates the message and format envelopes in data, splits each
// format's payload into field strings, and validates every field against
// the catalogue, returning the resulting message.Field values keyed by
// format name. In strict mode (opts.AppStrict) the first violation aborts
// and is returned as an error; in lenient mode every field is processed
// and invalid ones are marked Valid=false on the returned Field.
func (f *facade) Parse(data string, opts Options) (map[message.FormatName][]message.Field, error) {
	parser := parse.New()
	raw, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	validator := validate.New(f.catalogue, validate.WithStrict(opts.AppStrict), validate.WithCast(true))

	out := make(map[message.FormatName][]message.Field, len(raw))
	for name, fields := range raw {
		result, err := validator.Validate(fields)
		if err != nil {
			return nil, err
		}
		out[name] = result.Fields()
	}
	return out, nil
}

func checkDuplicates(fields map[message.FormatName][]message.Field) error {
	seen := make(map[identifier.DI]bool)
	for _, group := range fields {
		for _, f := range group {
			if seen[f.DI] {
				return message.New(message.KindDuplicateDataIdentifier, "duplicate Data Identifier "+f.DI.String()+" in message")
			}
			seen[f.DI] = true
		}
	}
	return nil
}

func allDIs(fields map[message.FormatName][]message.Field) []identifier.DI {
	var dis []identifier.DI
	for _, group := range fields {
		for _, f := range group {
			dis = append(dis, f.DI)
		}
	}
	return dis
}

func formatMissingGroups(missing [][]identifier.DI) string {
	names := make([]string, 0, len(missing))
	for _, group := range missing {
		parts := make([]string, 0, len(group))
		for _, di := range group {
			parts = append(parts, di.String())
		}
		names = append(names, strings.Join(parts, "|"))
	}
	sort.Strings(names)
	return "missing required Data Identifier group(s): " + strings.Join(names, ", ")
}
