package testdata_test

import (
	"bytes"
	"testing"

	"github.com/max-scw/dmc-service/parse"
	"github.com/max-scw/dmc-service/testdata"
)

func TestLoadBasic(t *testing.T) {
	data, err := testdata.LoadBasic()
	if err != nil {
		t.Fatalf("LoadBasic() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("LoadBasic() returned empty data")
	}
	if !bytes.HasPrefix(data, []byte("[)>\x1E")) {
		t.Error("LoadBasic() message does not start with the ISO/IEC 15434 message envelope")
	}
	if !bytes.Contains(data, []byte("S123456")) {
		t.Error("LoadBasic() message does not contain the expected serial number field")
	}
}

func TestLoadPurchaseOrder(t *testing.T) {
	data, err := testdata.LoadPurchaseOrder()
	if err != nil {
		t.Fatalf("LoadPurchaseOrder() error = %v", err)
	}
	if !bytes.Contains(data, []byte("P0001234")) {
		t.Error("LoadPurchaseOrder() message does not contain the expected purchase order field")
	}
}

func TestLoadMalformedFixtures(t *testing.T) {
	loaders := map[string]func() ([]byte, error){
		"missing message envelope": testdata.LoadMissingMessageEnvelope,
		"missing format envelope":  testdata.LoadMissingFormatEnvelope,
		"empty":                    testdata.LoadEmpty,
		"truncated":                testdata.LoadTruncated,
		"unknown data identifier":  testdata.LoadUnknownDataIdentifier,
	}

	for name, load := range loaders {
		t.Run(name, func(t *testing.T) {
			if _, err := load(); err != nil {
				t.Fatalf("load() error = %v", err)
			}
		})
	}
}

func TestLoadFileAndMustLoad(t *testing.T) {
	data, err := testdata.LoadFile(testdata.FileBasic)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("LoadFile() returned empty data")
	}

	mustData := testdata.MustLoad(testdata.FileBasic)
	if !bytes.Equal(data, mustData) {
		t.Error("MustLoad() returned data different from LoadFile()")
	}
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustLoad to panic for a missing file")
		}
	}()
	testdata.MustLoad("does-not-exist.dmc")
}

func TestListFiles(t *testing.T) {
	files, err := testdata.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) == 0 {
		t.Error("ListFiles() returned no files")
	}
}

func TestListValidAndMalformedFiles(t *testing.T) {
	valid, err := testdata.ListValidFiles()
	if err != nil {
		t.Fatalf("ListValidFiles() error = %v", err)
	}
	if len(valid) == 0 {
		t.Error("ListValidFiles() returned no files")
	}

	malformed, err := testdata.ListMalformedFiles()
	if err != nil {
		t.Fatalf("ListMalformedFiles() error = %v", err)
	}
	if len(malformed) == 0 {
		t.Error("ListMalformedFiles() returned no files")
	}
}

func TestBasicFixtureParsesSuccessfully(t *testing.T) {
	data, err := testdata.LoadBasic()
	if err != nil {
		t.Fatalf("LoadBasic() error = %v", err)
	}

	groups, err := parse.New().Parse(string(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(groups) == 0 {
		t.Error("expected at least one format group from the basic fixture")
	}
}

func TestMissingMessageEnvelopeFixtureFailsToParse(t *testing.T) {
	data, err := testdata.LoadMissingMessageEnvelope()
	if err != nil {
		t.Fatalf("LoadMissingMessageEnvelope() error = %v", err)
	}

	if _, err := parse.New().Parse(string(data)); err == nil {
		t.Error("expected an error parsing a message without its envelope")
	}
}
