package utils

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{"$1,500.00", 1500, true},
		{"1 234.50", 1234.50, true},
		{" 2,345.60", 2345.60, true},
		{"-42.10", -42.10, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
