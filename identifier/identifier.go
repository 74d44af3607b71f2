// Package identifier provides the ANSI MH10.8.2 Data Identifier (DI) type
// and the regular expression that recognizes a DI prefix at the start of a
// field string.
package identifier

import (
	"errors"
	"regexp"
)

// ErrNoDataIdentifier is returned when a field string does not begin with a
// recognizable Data Identifier prefix.
var ErrNoDataIdentifier = errors.New("no data identifier found")

// diPattern matches a Data Identifier: zero to two leading digits followed by
// a single uppercase letter in the range B-Z (A is reserved and never used as
// a terminal DI character in the ANSI MH10.8.2 dictionary).
var diPattern = regexp.MustCompile(`^[0-9]{0,2}[B-Z]`)

// DI is a Data Identifier: a short alphanumeric prefix, at most three
// characters, that identifies the semantic meaning of the field that follows
// it (e.g. "S" for serial number, "18D" for a date-time stamp).
type DI string

// String returns the identifier as a plain string.
func (d DI) String() string {
	return string(d)
}

// Extract finds the Data Identifier prefix at the start of s and returns it
// along with the remaining content. It fails with ErrNoDataIdentifier if s
// does not begin with a valid DI.
func Extract(s string) (di DI, rest string, err error) {
	loc := diPattern.FindString(s)
	if loc == "" {
		return "", "", ErrNoDataIdentifier
	}
	return DI(loc), s[len(loc):], nil
}
