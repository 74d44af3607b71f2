package service

import (
	"sync"

	"github.com/max-scw/dmc-service/catalog"
)

var (
	defaultCatalogueOnce sync.Once
	defaultCatalogue     *catalog.Catalogue
	defaultCatalogueErr  error
)

// DefaultCatalogue returns the bundled ANSI MH10.8.2 Catalogue, parsed
// exactly once and shared as an immutable value across every subsequent
// call (spec §5: "Implementations MUST guarantee its initialization
// happens-before any request; safe publication via an immutable shared
// value").
func DefaultCatalogue() (*catalog.Catalogue, error) {
	defaultCatalogueOnce.Do(func() {
		defaultCatalogue, defaultCatalogueErr = catalog.Default()
	})
	return defaultCatalogue, defaultCatalogueErr
}
