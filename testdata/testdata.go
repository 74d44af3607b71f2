// Package testdata provides embedded ISO/IEC 15434 test messages for
// exercising the dmc-service packages.
package testdata

import (
	"embed"
	"fmt"
	"path"
)

//go:embed *.dmc malformed/*.dmc
var FS embed.FS

// Message file names.
const (
	FileBasic                  = "basic.dmc"
	FilePurchaseOrder          = "purchase_order.dmc"
	FileMissingMessageEnvelope = "malformed/missing_message_envelope.dmc"
	FileMissingFormatEnvelope  = "malformed/missing_format_envelope.dmc"
	FileEmpty                  = "malformed/empty.dmc"
	FileTruncated              = "malformed/truncated.dmc"
	FileUnknownDataIdentifier  = "malformed/unknown_data_identifier.dmc"
)

// LoadBasic loads a well-formed message carrying a serial number, a
// supplier identification, and a ship date.
func LoadBasic() ([]byte, error) {
	return FS.ReadFile(FileBasic)
}

// LoadPurchaseOrder loads a well-formed message carrying a customer
// purchase order number and a serial number.
func LoadPurchaseOrder() ([]byte, error) {
	return FS.ReadFile(FilePurchaseOrder)
}

// LoadMissingMessageEnvelope loads a message lacking the mandatory
// "[)>"+RS ... EOT message envelope.
func LoadMissingMessageEnvelope() ([]byte, error) {
	return FS.ReadFile(FileMissingMessageEnvelope)
}

// LoadMissingFormatEnvelope loads a message whose payload has no "06"+GS
// format envelope, exercising the parser's default-format fallback.
func LoadMissingFormatEnvelope() ([]byte, error) {
	return FS.ReadFile(FileMissingFormatEnvelope)
}

// LoadEmpty loads an empty file for testing empty input handling.
func LoadEmpty() ([]byte, error) {
	return FS.ReadFile(FileEmpty)
}

// LoadTruncated loads a message missing its closing RS/EOT envelope tails.
func LoadTruncated() ([]byte, error) {
	return FS.ReadFile(FileTruncated)
}

// LoadUnknownDataIdentifier loads a message whose only field carries a
// Data Identifier absent from the bundled catalogue.
func LoadUnknownDataIdentifier() ([]byte, error) {
	return FS.ReadFile(FileUnknownDataIdentifier)
}

// LoadFile loads any test file by name from the embedded filesystem.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("loading test file %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads a test file and panics on error.
// Useful for test setup where failure should halt the test.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// ListFiles returns a list of all embedded test file names.
func ListFiles() ([]string, error) {
	var files []string

	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			subEntries, err := FS.ReadDir(entry.Name())
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", entry.Name(), err)
			}
			for _, subEntry := range subEntries {
				if !subEntry.IsDir() {
					files = append(files, path.Join(entry.Name(), subEntry.Name()))
				}
			}
		} else {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// ListMalformedFiles returns a list of malformed test file names.
func ListMalformedFiles() ([]string, error) {
	entries, err := FS.ReadDir("malformed")
	if err != nil {
		return nil, fmt.Errorf("reading malformed directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, path.Join("malformed", entry.Name()))
		}
	}

	return files, nil
}

// ListValidFiles returns a list of valid (non-malformed) test file names.
func ListValidFiles() ([]string, error) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
