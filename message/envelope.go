// Package message defines the core ISO/IEC 15434 framing types shared by
// the parser (parse), builder (build), and validator (validate) packages:
// envelope byte sequences, the Field and Value types, and the error
// taxonomy of spec §7.
package message

// Envelope holds the head/tail byte sequences (and, for format envelopes,
// the inter-field separator) that frame a section of a message.
type Envelope struct {
	Head string
	Tail string
	Sep  string // empty for the message envelope, which has no separator of its own
}

// FormatName identifies a registered field-dictionary format, e.g.
// "ANSI-MH-10".
type FormatName string

// ANSIMH10 is the only bundled format dictionary (spec §1, Non-goals: "only
// one dictionary is bundled").
const ANSIMH10 FormatName = "ANSI-MH-10"

// Control character bytes used by the envelopes below.
const (
	RS  = '\x1E' // Record Separator
	EOT = '\x04' // End Of Transmission
	GS  = '\x1D' // Group Separator
)

// MessageEnvelope is the mandatory outermost envelope required by
// ISO/IEC 15434: head "[)>" + RS, tail EOT.
var MessageEnvelope = Envelope{
	Head: "[)>" + string(rune(RS)),
	Tail: string(rune(EOT)),
}

// FormatEnvelopes maps each known FormatName to its envelope. ANSI-MH-10's
// envelope is head "06" + GS, tail RS, field separator GS.
var FormatEnvelopes = map[FormatName]Envelope{
	ANSIMH10: {
		Head: "06" + string(rune(GS)),
		Tail: string(rune(RS)),
		Sep:  string(rune(GS)),
	},
}

// DefaultFormat is used by the parser when no format envelope is found in
// the message payload (spec §4.3, step 3).
const DefaultFormat = ANSIMH10
