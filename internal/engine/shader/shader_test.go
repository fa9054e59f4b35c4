package shader

import "testing"

func TestTrimLog(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nul terminated", []byte("0:3: syntax error\x00\x00"), "0:3: syntax error"},
		{"no terminator", []byte("link failed"), "link failed"},
		{"empty", []byte{0}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimLog(tt.in); got != tt.want {
				t.Errorf("trimLog(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
