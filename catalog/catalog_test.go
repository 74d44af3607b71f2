package catalog

import (
	"strings"
	"testing"

	"github.com/max-scw/dmc-service/identifier"
)

func TestLoadAndLookup(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if cat.Len() == 0 {
		t.Fatal("expected a non-empty catalogue")
	}

	entry, ok := cat.Lookup(identifier.DI("S"))
	if !ok {
		t.Fatal("expected to find DI 'S'")
	}
	if entry.Format != "" {
		t.Errorf("expected empty format for 'S', got %q", entry.Format)
	}

	entry, ok = cat.Lookup(identifier.DI("27D"))
	if !ok {
		t.Fatal("expected to find DI '27D'")
	}
	if entry.Format != "an3+n8" {
		t.Errorf("unexpected format for 27D: %q", entry.Format)
	}

	if _, ok := cat.Lookup(identifier.DI("ZZZ")); ok {
		t.Error("did not expect to find unknown DI 'ZZZ'")
	}
}

func TestLoadPreservesFileOrder(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	all := cat.All()
	if len(all) == 0 {
		t.Fatal("expected entries")
	}
	if all[0].DI != identifier.DI("S") {
		t.Errorf("expected first entry to be 'S', got %q", all[0].DI)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	src := "header line long enough\nan1;S;Serial;extra\n"
	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected a CatalogueFormat error")
	}
	var cerr *Error
	if e, ok := err.(*Error); ok {
		cerr = e
	} else {
		t.Fatalf("expected *catalog.Error, got %T", err)
	}
	if cerr.Line != 2 {
		t.Errorf("expected error at line 2, got %d", cerr.Line)
	}
}

func TestLoadSkipsShortLines(t *testing.T) {
	src := "header line long enough\n\n;S;Serial Number\n"
	cat, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", cat.Len())
	}
}
