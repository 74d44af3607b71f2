package build

import (
	"sort"
	"strings"

	"github.com/max-scw/dmc-service/catalog"
	"github.com/max-scw/dmc-service/datefmt"
	"github.com/max-scw/dmc-service/message"
)

// Builder assembles field values into a framed ISO/IEC 15434 message string.
type Builder interface {
	// Build renders groups, an ordered mapping of FormatName to the list of
	// fields carried in that format, into the final message string.
	Build(groups map[message.FormatName][]message.Field) (string, error)
}

type builder struct {
	catalogue *catalog.Catalogue
	config    builderConfig
}

// New creates a Builder backed by the given catalogue, used to look up a
// DI's declared date pattern when rendering timestamp values.
func New(cat *catalog.Catalogue, opts ...Option) Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &builder{catalogue: cat, config: cfg}
}

// Build implements Builder.
func (b *builder) Build(groups map[message.FormatName][]message.Field) (string, error) {
	names := make([]message.FormatName, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	useFormatEnvelope := b.config.useFormatEnvelope || len(names) > 1

	var payload strings.Builder
	for _, name := range names {
		env, ok := message.FormatEnvelopes[name]
		if !ok {
			return "", message.New(message.KindNoFormatEnvelope, "unregistered format "+string(name))
		}

		rendered, err := b.renderFields(groups[name], env.Sep)
		if err != nil {
			return "", err
		}

		if useFormatEnvelope {
			payload.WriteString(env.Head)
			payload.WriteString(rendered)
			payload.WriteString(env.Tail)
		} else {
			payload.WriteString(rendered)
		}
	}

	result := payload.String()
	if b.config.useMessageEnvelope {
		result = message.MessageEnvelope.Head + result + message.MessageEnvelope.Tail
	}

	if err := checkASCII(result); err != nil {
		return "", err
	}
	return result, nil
}

// renderFields renders each field as "DI+value" (spec §4.4 step 1) and
// joins them with sep.
func (b *builder) renderFields(fields []message.Field, sep string) (string, error) {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		valueStr, err := b.renderValue(f)
		if err != nil {
			return "", err
		}
		parts = append(parts, f.DI.String()+valueStr)
	}
	return strings.Join(parts, sep), nil
}

// renderValue stringifies a field's typed value. A timestamp whose DI has a
// declared date pattern in the catalogue is formatted according to that
// pattern; anything else falls back to its natural string form.
func (b *builder) renderValue(f message.Field) (string, error) {
	t, ok := f.Typed.Timestamp()
	if !ok {
		if f.Typed.Kind() == message.KindString && f.Typed.AsString() == "" {
			return f.Raw, nil
		}
		return f.Typed.AsString(), nil
	}

	if b.catalogue != nil {
		if entry, found := b.catalogue.Lookup(f.DI); found {
			if pattern, ok := datefmt.Discover(entry.Explain); ok {
				return datefmt.Format(pattern, t)
			}
		}
	}
	return t.Format("2006-01-02T15:04:05Z07:00"), nil
}

// checkASCII fails with KindNonAscii if s contains any codepoint above 0x7E.
func checkASCII(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7E {
			return message.New(message.KindNonAscii, "message contains a non-ASCII byte")
		}
	}
	return nil
}
