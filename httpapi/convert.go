package httpapi

import (
	"sort"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
	"github.com/max-scw/dmc-service/service"
)

// toFields converts a MessageData body into the façade's field grouping,
// sorting each group's DIs for deterministic output since a JSON object's
// key order is not preserved by Go's decoder.
func toFields(md MessageData) map[message.FormatName][]message.Field {
	out := make(map[message.FormatName][]message.Field, len(md.Messages))
	for _, group := range md.Messages {
		dis := make([]string, 0, len(group.Fields))
		for di := range group.Fields {
			dis = append(dis, di)
		}
		sort.Strings(dis)

		fields := make([]message.Field, 0, len(dis))
		for _, di := range dis {
			fields = append(fields, message.Field{
				DI:    identifier.DI(di),
				Raw:   group.Fields[di],
				Valid: true,
			})
		}
		out[message.FormatName(group.Format)] = fields
	}
	return out
}

// toOptions converts a MessageData body's option fields into service.Options.
func toOptions(md MessageData) service.Options {
	opts := service.DefaultOptions()
	opts.RectangularDMC = md.RectangularDMC
	opts.UseFormatEnvelope = md.UseFormatEnvelope
	opts.UseMessageEnvelope = md.UseMessageEnvelope
	opts.RequiredDataIdentifiers = md.RequiredDataIdentifiers
	if md.NumberQuietZoneModules > 0 {
		opts.NumberQuietZoneModules = md.NumberQuietZoneModules
	}
	return opts
}
