// Package diagnostic carries non-fatal outcomes surfaced alongside a
// successful call — most notably DmreWarning, emitted when the rectangular
// format selector (§4.7) picks a DMRE-only size. Diagnostics are never
// returned as errors: they ride alongside the success value and it is up to
// the caller (the service façade, an HTTP handler, a CLI command) to decide
// whether to surface, log, or ignore them.
package diagnostic

// Code identifies the kind of diagnostic raised.
type Code string

// Known diagnostic codes.
const (
	// DmreWarning indicates a Data Matrix Rectangular Extension size was
	// selected (rows > 16); not all readers support DMRE symbols.
	DmreWarning Code = "DMRE_WARNING"
)

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsWarning reports whether c represents a warning-level diagnostic, as
// opposed to purely informational output. Currently every known Code is a
// warning; the method exists so additional informational codes can be added
// later without changing call sites that branch on severity.
func (c Code) IsWarning() bool {
	switch c {
	case DmreWarning:
		return true
	default:
		return false
	}
}

// Diagnostic is a single non-fatal notice.
type Diagnostic struct {
	Code    Code
	Message string
}

// New creates a Diagnostic with the given code and message.
func New(code Code, message string) Diagnostic {
	return Diagnostic{Code: code, Message: message}
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	if d.Message == "" {
		return string(d.Code)
	}
	return string(d.Code) + ": " + d.Message
}
