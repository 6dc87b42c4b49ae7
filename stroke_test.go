package arcscroll

import "testing"

func TestLineCapString(t *testing.T) {
	tests := []struct {
		cap  LineCap
		want string
	}{
		{LineCapRound, "round"},
		{LineCapButt, "butt"},
		{LineCapSquare, "square"},
		{LineCap(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cap.String(); got != tt.want {
			t.Errorf("LineCap(%d).String() = %q, want %q", tt.cap, got, tt.want)
		}
	}
}

func TestLineCapDefaultIsRound(t *testing.T) {
	var s StrokeStyle
	if s.Cap != LineCapRound {
		t.Errorf("zero StrokeStyle cap = %v, want round", s.Cap)
	}
}
