package errors

import (
	"strings"
	"testing"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "mick", false},
		{"valid with space", "Mick Jagger", false},
		{"valid unicode", "Zoë", false},
		{"valid max length", strings.Repeat("é", MaxPlayerName), false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", MaxPlayerName+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"escape", "foo\x1b[31m", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayerName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlayerName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPlayers) {
				t.Errorf("ValidatePlayerName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPlayers)
			}
		})
	}
}

func TestValidatePlayers(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"nil", nil, false},
		{"two", []string{"mick", "steve"}, false},
		{"bad entry", []string{"mick", ""}, true},
		{"too many", make([]string, MaxPlayers+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlayers() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"markup", "{{#b}}hi{{/b}} {{player 0}}", false},
		{"whitespace controls", "a\tb\r\nc", false},
		{"unicode", "• ñ", false},

		{"too large", strings.Repeat("a", MaxTemplateBytes+1), true},
		{"invalid utf8", "a\xffb", true},
		{"escape sequence", "\x1b[2J", true},
		{"null byte", "a\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
