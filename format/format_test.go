package format

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		spec  string
		value string
		want  bool
	}{
		{"an3+n8", "27D20170615", true},
		{"an3+n8", "27D2017061", false},  // too short
		{"an3+n16", "28D2017012320170214", true},
		{`an3+an3...35+"+"+a1...3`, "26HLHHIBC987XY65+LK", true},
		{"an2+n9", "8J211123456", true},
		{"an3+an2...12", "18L37.1.3", true},
		{"an3+an2...12", "18L67", true},
		{"an3+a2+an3...27", "35LIECK0107EC", true},
		{"an3+an3...35", "50PABC+6", true},
		{"an3+an1...20", "27Q1000", true},
		{"an3+an1...20", "27Q1000.5", true},
		{"an3+an1...10", "28Q100.50", true},
		{"an3+n1...6", "29Q10", true},
		{"an3+an1...5", "30Q8.5", true},
		{"an3+an3", "31QUSD", true},
		{"an3+an1...3", "7RMUC", true},
		{"an2+an2", "9R01", true},
		{"an3+a2+an3...18", "23VIE6388047V", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.value, func(t *testing.T) {
			got, err := Validate(tt.spec, tt.value, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.spec, tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateStrictReturnsError(t *testing.T) {
	_, err := Validate("an3+n8", "27D2017061", true)
	if err == nil {
		t.Fatal("expected FormatMismatch error in strict mode")
	}
	var fe *Error
	if !asError(err, &fe) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fe.Kind != KindFormatMismatch {
		t.Errorf("expected KindFormatMismatch, got %v", fe.Kind)
	}
}

func TestCompileBadSpec(t *testing.T) {
	_, err := Compile("xyz5")
	if err == nil {
		t.Fatal("expected BadFormatSpec error")
	}
}

func TestBounds(t *testing.T) {
	s, err := Compile("an3+n1...6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	min, max := s.Bounds()
	if min != 4 || max != 9 {
		t.Errorf("Bounds() = (%d, %d), want (4, 9)", min, max)
	}
}

// asError is a tiny errors.As helper kept local to avoid importing errors
// just for this one call in the test file.
func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
