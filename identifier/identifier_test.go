package identifier

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDI  DI
		wantRem string
		wantErr bool
	}{
		{"single letter", "S123456", "S", "123456", false},
		{"two digit prefix", "18D202312011155", "18D", "202312011155", false},
		{"one digit prefix", "9R01", "9R", "01", false},
		{"no digits no letter prefix", "123456", "", "", true},
		{"empty string", "", "", "", true},
		{"lowercase not matched", "s123456", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			di, rest, err := Extract(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if di != tt.wantDI || rest != tt.wantRem {
				t.Errorf("Extract(%q) = (%q, %q), want (%q, %q)", tt.input, di, rest, tt.wantDI, tt.wantRem)
			}
		})
	}
}
