package usecases

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code Language
		want string
	}{
		{English, "English"},
		{Turkish, "Turkish"},
		{Japanese, "Japanese"},
		{Language("xx"), "xx"},
	}
	for _, tt := range tests {
		if got := tt.code.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
