package swatch

import "testing"

func TestOutputSpecs(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		got    string
		q      int
	}{
		{name: "dominant", suffix: "_dominant.jpg", got: DominantOutput().Suffix, q: DominantOutput().Quality},
		{name: "grid", suffix: "_top4.jpg", got: GridOutput().Suffix, q: GridOutput().Quality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.suffix {
				t.Errorf("Suffix = %q, want %q", tt.got, tt.suffix)
			}
			if tt.q != 95 {
				t.Errorf("Quality = %d, want 95", tt.q)
			}
		})
	}
}
