// Package catalog loads and exposes the ANSI MH10.8.2 Data Identifier
// dictionary: a read-only table mapping a Data Identifier to its declared
// FormatSpec (if any) and a human-readable explanation.
//
// A Catalogue is immutable once returned from Load/MustLoad; it holds no
// mutable state and is safe for concurrent use from multiple goroutines
// without further synchronization (see spec §5).
package catalog

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/max-scw/dmc-service/identifier"
)

// Entry describes one Data Identifier's declared format and meaning.
type Entry struct {
	DI      identifier.DI
	Format  string // FormatSpec text; empty means "any printable ASCII 0x20-0x7E"
	Explain string
}

// Catalogue is an immutable, ordered table of Entry values keyed by Data
// Identifier. Iteration order matches the order entries appeared in the
// source file, so UI dropdowns built from All() stay stable.
type Catalogue struct {
	order   []identifier.DI
	entries map[identifier.DI]Entry
}

// Lookup returns the Entry for di and whether it was found.
func (c *Catalogue) Lookup(di identifier.DI) (Entry, bool) {
	e, ok := c.entries[di]
	return e, ok
}

// All returns every Entry in file order.
func (c *Catalogue) All() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, di := range c.order {
		out = append(out, c.entries[di])
	}
	return out
}

// Len returns the number of entries in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.order)
}

// Load reads a semicolon-delimited identifier dictionary from r.
//
// The file format (see spec §6): the first line is a header and is
// discarded; each subsequent non-blank line with at least 6 bytes must
// contain exactly three ';'-delimited fields: meta (the FormatSpec, may be
// empty), the Data Identifier, and its explanation. Any other line shape is
// a hard load error (CatalogueFormat).
func Load(r io.Reader) (*Catalogue, error) {
	cat := &Catalogue{entries: make(map[identifier.DI]Entry)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	headerSkipped := false
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !headerSkipped {
			headerSkipped = true
			continue
		}
		if len(line) < 6 {
			continue // too short to be meaningful; also absorbs blank lines
		}

		fields := strings.Split(line, ";")
		if len(fields) != 3 {
			return nil, formatError(lineNo, "expected exactly 3 fields (meta;di;explanation), got "+strconv.Itoa(len(fields)))
		}

		di := identifier.DI(strings.TrimSpace(fields[1]))
		if di == "" {
			return nil, formatError(lineNo, "empty data identifier")
		}

		entry := Entry{
			DI:      di,
			Format:  strings.TrimSpace(fields[0]),
			Explain: fields[2],
		}
		if _, exists := cat.entries[di]; !exists {
			cat.order = append(cat.order, di)
		}
		cat.entries[di] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cat, nil
}

// MustLoad is like Load but panics on error. It is meant for package
// initialization of an embedded, known-good dictionary file only.
func MustLoad(r io.Reader) *Catalogue {
	cat, err := Load(r)
	if err != nil {
		panic(err)
	}
	return cat
}
