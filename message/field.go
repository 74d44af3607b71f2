package message

import "github.com/max-scw/dmc-service/identifier"

// Field is a single (Data Identifier, content) pair, either produced by the
// parser or supplied directly by a caller building a message.
type Field struct {
	DI    identifier.DI
	Raw   string
	Typed Value
	Valid bool
}

// String renders the field as it would appear on the wire: DI immediately
// followed by its raw content.
func (f Field) String() string {
	return f.DI.String() + f.Raw
}
