package symbol

import "testing"

func TestAssembleDimensionsIncludeQuietZone(t *testing.T) {
	attr, _, err := Select(3, ShapeSquare)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	codewords := make([]byte, attr.TotalCodewords())
	bmp := assemble(attr, codewords, 2)
	if bmp.Width != attr.Cols+4 || bmp.Height != attr.Rows+4 {
		t.Errorf("assemble dimensions = %dx%d, want %dx%d", bmp.Width, bmp.Height, attr.Cols+4, attr.Rows+4)
	}
}

func TestAssembleQuietZoneIsLight(t *testing.T) {
	attr, _, err := Select(3, ShapeSquare)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	codewords := make([]byte, attr.TotalCodewords())
	bmp := assemble(attr, codewords, 2)
	for c := 0; c < bmp.Width; c++ {
		if bmp.At(0, c) {
			t.Fatalf("quiet zone row 0 has a dark module at col %d", c)
		}
	}
}

func TestAssembleSolidBorderIsDark(t *testing.T) {
	attr, _, err := Select(3, ShapeSquare)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	codewords := make([]byte, attr.TotalCodewords())
	bmp := assemble(attr, codewords, 0)
	for r := 0; r < attr.Rows; r++ {
		if !bmp.At(r, 0) {
			t.Errorf("left column row %d should be solid dark", r)
		}
	}
	for c := 0; c < attr.Cols; c++ {
		if !bmp.At(attr.Rows-1, c) {
			t.Errorf("bottom row col %d should be solid dark", c)
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	attr, _, err := Select(3, ShapeSquare)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	codewords := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	a := assemble(attr, codewords, 2)
	b := assemble(attr, codewords, 2)
	if a.String() != b.String() {
		t.Fatalf("assemble is not deterministic")
	}
}
