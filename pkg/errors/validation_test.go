package errors

import (
	"strings"
	"testing"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"single letter", "n", false},
		{"word", "node_", false},
		{"with dash", "edge-", false},
		{"max length", strings.Repeat("x", 32), false},

		{"too long", strings.Repeat("x", 33), true},
		{"comma", "n,", true},
		{"semicolon", "n;", true},
		{"double quote", `n"`, true},
		{"single quote", "n'", true},
		{"newline", "n\n", true},
		{"tab", "n\t", true},
		{"null byte", "n\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid csv", "nodes.csv", false},
		{"valid json", "graph.json", false},
		{"no extension", "manifest", false},

		{"empty", "", true},
		{"with path /", "out/nodes.csv", true},
		{"with path \\", "out\\nodes.csv", true},
		{"hidden file", ".nodes.csv", true},
		{"control char", "nodes\x01.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
