package ascii

import "testing"

func TestEncodeDigitPairCollapsesToOneCodeword(t *testing.T) {
	got := Encode("12")
	want := []byte{10*1 + 2 + 130}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("Encode(\"12\") = %v, want %v", got, want)
	}
}

func TestEncodeOddDigitRunLeavesTrailingDigitUnpaired(t *testing.T) {
	got := Encode("123")
	want := []byte{10*1 + 2 + 130, '3' + 1}
	if len(got) != len(want) {
		t.Fatalf("Encode(\"123\") length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Encode(\"123\")[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEncodeNonDigitBytesShiftByOne(t *testing.T) {
	got := Encode("AB")
	want := []byte{'A' + 1, 'B' + 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Encode(\"AB\")[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPadSingleSlotAppendsEOMOnly(t *testing.T) {
	got := Pad([]byte{1, 2, 3}, 4)
	want := []byte{1, 2, 3, 129}
	if len(got) != len(want) {
		t.Fatalf("Pad length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pad[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestPadPseudoRandomSequenceUsesPlus130 pins the literal ISO/IEC
// 16022 5.2.3 formula: pad_k = ((149*k) mod 253) + 130.
func TestPadPseudoRandomSequenceUsesPlus130(t *testing.T) {
	got := Pad([]byte{1}, 4)
	if len(got) != 4 {
		t.Fatalf("Pad length = %d, want 4", len(got))
	}
	if got[1] != 129 {
		t.Fatalf("Pad[1] = %d, want 129 (EOM)", got[1])
	}
	for k, i := 1, 2; i < len(got); k, i = k+1, i+1 {
		want := byte((149*k)%253) + 130
		if got[i] != want {
			t.Errorf("Pad[%d] = %d, want %d (k=%d)", i, got[i], want, k)
		}
	}
}

func TestPadNoOpWhenAlreadyAtCapacity(t *testing.T) {
	codewords := []byte{1, 2, 3, 4}
	got := Pad(codewords, 4)
	if len(got) != 4 {
		t.Fatalf("Pad length = %d, want 4", len(got))
	}
	for i := range codewords {
		if got[i] != codewords[i] {
			t.Errorf("Pad[%d] = %d, want %d (unchanged)", i, got[i], codewords[i])
		}
	}
}
