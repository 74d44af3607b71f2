// Package marshal provides struct marshaling and unmarshaling for Data
// Identifier fields.
//
// The marshal package enables bidirectional conversion between Go structs
// and []message.Field using struct tags to specify which Data Identifier a
// field maps to. It lets callers describe the shape of a message as a typed
// Go struct instead of assembling message.Field slices by hand.
//
// # Struct Tags
//
// Use the "dmc" struct tag to map struct fields to Data Identifiers:
//
//	type Item struct {
//	    Serial   string    `dmc:"S"`
//	    Quantity int       `dmc:"Q"`
//	    BestBy   time.Time `dmc:"16D,format=060102"`
//	}
//
// # Marshaling (Struct to Fields)
//
// Produce a []message.Field from a Go struct for service.BuildMessage:
//
//	item := Item{Serial: "12345", Quantity: 10, BestBy: time.Now()}
//	fields, err := marshal.NewMarshaler().Marshal(item)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := svc.BuildMessage(map[message.FormatName][]message.Field{
//	    message.ANSIMH10: fields,
//	}, service.DefaultOptions())
//
// # Unmarshaling (Fields to Struct)
//
// Populate a Go struct from fields returned by service.Parse:
//
//	groups, _ := svc.Parse(wireText, service.DefaultOptions())
//	var item Item
//	if err := marshal.NewUnmarshaler().Unmarshal(groups[message.ANSIMH10], &item); err != nil {
//	    log.Fatal(err)
//	}
//
// # Supported Types
//
// The marshaler supports these Go types:
//   - string: direct mapping to wire text
//   - int, int8, int16, int32, int64: numeric values
//   - uint, uint8, uint16, uint32, uint64: unsigned numeric values
//   - float32, float64: floating-point values
//   - bool: boolean values ("1"/"0" on the wire, "true"/"false"/"yes"/"no"/"Y"/"N" on unmarshal)
//   - time.Time: date and time values (configurable format, default YYMMDD)
//   - *T: pointers to any supported type (nil = omitted)
//   - []T: slices for Data Identifiers that repeat across a message
//
// # Marshaler Options
//
// Configure marshaling behavior with functional options:
//
//	m := marshal.NewMarshaler(marshal.WithTagName("custom"))
//	m := marshal.NewMarshaler(marshal.WithOmitEmpty(true))
//	m := marshal.NewMarshaler(marshal.WithTimeFormat("2006-01-02"))
//
// # Nested Structs
//
// An untagged nested struct is flattened: its own tagged fields are
// collected into the same field list as its parent, letting callers group
// related Data Identifiers without inventing a wire-level hierarchy that
// ANSI MH10.8.2 messages don't have.
//
//	type Shipment struct {
//	    Item
//	    TrackingNumber string `dmc:"J"`
//	}
package marshal
