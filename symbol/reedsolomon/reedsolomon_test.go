package reedsolomon

import (
	"reflect"
	"testing"
)

// TestEncodeGoldenValue cross-checks Encode against the ECC200
// computation (GF(256) over 0x12D, generator roots alpha^1..alpha^6) for
// the ASCII bytes of "HELLO" with 6 ECC codewords.
func TestEncodeGoldenValue(t *testing.T) {
	got := Encode([]byte("HELLO"), 6)
	want := []byte{201, 91, 109, 228, 248, 128}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode(\"HELLO\", 6) = %v, want %v", got, want)
	}
}

// TestGeneratorPolyIsHighDegreeFirst guards against regressing the
// ordering Encode's systematic-division loop depends on: gen[0] must be
// the leading coefficient (always 1), not the constant term.
func TestGeneratorPolyIsHighDegreeFirst(t *testing.T) {
	gen := generatorPoly(6)
	if len(gen) != 7 {
		t.Fatalf("generatorPoly(6) length = %d, want 7", len(gen))
	}
	if gen[0] != 1 {
		t.Fatalf("generatorPoly(6)[0] = %d, want 1 (leading coefficient)", gen[0])
	}
}

func TestEncodeLength(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	ecc := Encode(data, 7)
	if len(ecc) != 7 {
		t.Fatalf("Encode produced %d ECC codewords, want 7", len(ecc))
	}
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte{10, 20, 30}
	a := Encode(data, 5)
	b := Encode(data, 5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Encode is not deterministic at index %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestInterleaveSingleBlockAppendsECC(t *testing.T) {
	data := []byte{1, 2, 3}
	out := Interleave(data, 1, 4)
	if len(out) != len(data)+4 {
		t.Fatalf("Interleave length = %d, want %d", len(out), len(data)+4)
	}
	for i, b := range data {
		if out[i] != b {
			t.Errorf("Interleave data byte %d = %d, want %d", i, out[i], b)
		}
	}
}

func TestInterleaveMultiBlockLength(t *testing.T) {
	data := make([]byte, 12)
	for i := range data {
		data[i] = byte(i)
	}
	out := Interleave(data, 3, 2)
	if len(out) != len(data)+3*2 {
		t.Fatalf("Interleave length = %d, want %d", len(out), len(data)+6)
	}
}
