package catalog

import (
	"bytes"
	"embed"
)

//go:embed ANSI-MH-10_DataIdentifiers.txt
var defaultDictionary embed.FS

// DefaultDictionaryFile is the name of the embedded ANSI MH10.8.2 table.
const DefaultDictionaryFile = "ANSI-MH-10_DataIdentifiers.txt"

// Default returns the bundled ANSI MH10.8.2 Catalogue. It is parsed fresh on
// every call; callers that need a single shared, immutable instance should
// load it once at startup (see service.DefaultCatalogue for the
// once-initialized package-level handle).
func Default() (*Catalogue, error) {
	data, err := defaultDictionary.ReadFile(DefaultDictionaryFile)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}
