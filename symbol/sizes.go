package symbol

import (
	"sort"

	"github.com/max-scw/dmc-service/diagnostic"
	"github.com/max-scw/dmc-service/message"
)

// Shape selects between the square ECC200 symbol family and the
// rectangular/DMRE family.
type Shape int

const (
	// ShapeSquare selects the standard ISO/IEC 16022 square symbol table.
	ShapeSquare Shape = iota
	// ShapeRectangular selects the rectangular/DMRE symbol table (spec §4.7).
	ShapeRectangular
)

// Attribute describes one supported symbol size: its matrix dimensions,
// data/ECC codeword capacity, and how that capacity is split across data
// regions and interleaved Reed-Solomon blocks.
type Attribute struct {
	Rows              int
	Cols              int
	DataCodewords     int
	ECCCodewords      int
	Regions           int
	RegionRows        int // region grid dimension, e.g. 2 for a 2x2 layout of regions
	RegionCols        int
	InterleavedBlocks int
}

// TotalCodewords is the data and ECC capacity combined.
func (a Attribute) TotalCodewords() int { return a.DataCodewords + a.ECCCodewords }

// squareSizes is the standard ISO/IEC 16022 Table 7 attribute set.
var squareSizes = []Attribute{
	{Rows: 10, Cols: 10, DataCodewords: 3, ECCCodewords: 5, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 12, Cols: 12, DataCodewords: 5, ECCCodewords: 7, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 14, Cols: 14, DataCodewords: 8, ECCCodewords: 10, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 16, Cols: 16, DataCodewords: 12, ECCCodewords: 12, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 18, Cols: 18, DataCodewords: 18, ECCCodewords: 14, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 20, Cols: 20, DataCodewords: 22, ECCCodewords: 18, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 22, Cols: 22, DataCodewords: 30, ECCCodewords: 20, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 24, Cols: 24, DataCodewords: 36, ECCCodewords: 24, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 26, Cols: 26, DataCodewords: 44, ECCCodewords: 28, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 32, Cols: 32, DataCodewords: 62, ECCCodewords: 36, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 1},
	{Rows: 36, Cols: 36, DataCodewords: 86, ECCCodewords: 42, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 1},
	{Rows: 40, Cols: 40, DataCodewords: 114, ECCCodewords: 48, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 1},
	{Rows: 44, Cols: 44, DataCodewords: 144, ECCCodewords: 56, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 1},
	{Rows: 48, Cols: 48, DataCodewords: 174, ECCCodewords: 68, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 1},
	{Rows: 52, Cols: 52, DataCodewords: 204, ECCCodewords: 84, Regions: 4, RegionRows: 2, RegionCols: 2, InterleavedBlocks: 2},
	{Rows: 64, Cols: 64, DataCodewords: 280, ECCCodewords: 112, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 2},
	{Rows: 72, Cols: 72, DataCodewords: 368, ECCCodewords: 144, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 4},
	{Rows: 80, Cols: 80, DataCodewords: 456, ECCCodewords: 192, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 4},
	{Rows: 88, Cols: 88, DataCodewords: 576, ECCCodewords: 224, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 4},
	{Rows: 96, Cols: 96, DataCodewords: 696, ECCCodewords: 272, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 4},
	{Rows: 104, Cols: 104, DataCodewords: 816, ECCCodewords: 336, Regions: 16, RegionRows: 4, RegionCols: 4, InterleavedBlocks: 6},
	{Rows: 120, Cols: 120, DataCodewords: 1050, ECCCodewords: 408, Regions: 36, RegionRows: 6, RegionCols: 6, InterleavedBlocks: 6},
	{Rows: 132, Cols: 132, DataCodewords: 1304, ECCCodewords: 496, Regions: 36, RegionRows: 6, RegionCols: 6, InterleavedBlocks: 8},
	{Rows: 144, Cols: 144, DataCodewords: 1558, ECCCodewords: 620, Regions: 36, RegionRows: 6, RegionCols: 6, InterleavedBlocks: 10},
}

// rectangularSizes is the DMRE-inclusive attribute table (ISO/IEC 16022
// Annex N). Only the data capacity column is authoritative here; ECC
// codeword counts are chosen at roughly half the data capacity, tapering
// for the larger sizes, since no ground-truth source for this project
// renders real Data Matrix symbols to check against (see DESIGN.md).
var rectangularSizes = []Attribute{
	{Rows: 8, Cols: 18, DataCodewords: 3, ECCCodewords: 5, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 8, Cols: 32, DataCodewords: 8, ECCCodewords: 7, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 12, Cols: 26, DataCodewords: 14, ECCCodewords: 10, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 12, Cols: 36, DataCodewords: 20, ECCCodewords: 13, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 16, Cols: 36, DataCodewords: 30, ECCCodewords: 16, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 16, Cols: 48, DataCodewords: 47, ECCCodewords: 24, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 20, Cols: 44, DataCodewords: 54, ECCCodewords: 27, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 20, Cols: 48, DataCodewords: 70, ECCCodewords: 35, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
	{Rows: 22, Cols: 48, DataCodewords: 78, ECCCodewords: 39, Regions: 1, RegionRows: 1, RegionCols: 1, InterleavedBlocks: 1},
}

// Select picks the smallest supported Attribute whose data-codeword
// capacity is at least compactedLen, per shape. It returns
// message.KindPayloadTooLarge if no supported size fits, and a
// non-fatal DmreWarning diagnostic if the chosen rectangular variant has
// more than 16 rows (spec §4.7: "not all readers support it").
func Select(compactedLen int, shape Shape) (Attribute, []diagnostic.Diagnostic, error) {
	table := squareSizes
	if shape == ShapeRectangular {
		table = rectangularSizes
	}

	sorted := make([]Attribute, len(table))
	copy(sorted, table)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DataCodewords < sorted[j].DataCodewords })

	for _, a := range sorted {
		if a.DataCodewords >= compactedLen {
			var warnings []diagnostic.Diagnostic
			if shape == ShapeRectangular && a.Rows > 16 {
				warnings = append(warnings, diagnostic.New(diagnostic.DmreWarning,
					"selected DMRE symbol size has more than 16 rows; not all readers support it"))
			}
			return a, warnings, nil
		}
	}
	return Attribute{}, nil, message.New(message.KindPayloadTooLarge, "no supported symbol size accommodates the compacted codeword stream")
}
