package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input limits applied by the CLI and HTTP service.
const (
	MaxTemplateBytes = 1 << 20
	MaxPlayers       = 64
	MaxPlayerName    = 64
)

// ValidatePlayerName validates a single roster entry.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters (names are rendered inline)
//   - Maximum length of MaxPlayerName characters
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPlayers, "player name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxPlayerName {
		return New(ErrCodeInvalidPlayers, "player name too long (max %d characters)", MaxPlayerName)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlayers, "player name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePlayers validates a whole roster.
func ValidatePlayers(players []string) error {
	if len(players) > MaxPlayers {
		return New(ErrCodeInvalidPlayers, "too many players (max %d)", MaxPlayers)
	}

	for i, p := range players {
		if err := ValidatePlayerName(p); err != nil {
			return Wrap(ErrCodeInvalidPlayers, err, "player %d", i)
		}
	}

	return nil
}

// ValidateTemplate validates markup source before parsing.
//
// Validation rules:
//   - Must be valid UTF-8
//   - Maximum size of MaxTemplateBytes
//   - No control characters other than tab, newline and carriage return
func ValidateTemplate(src string) error {
	if len(src) > MaxTemplateBytes {
		return New(ErrCodeInvalidTemplate, "template too large (max %d bytes)", MaxTemplateBytes)
	}

	if !utf8.ValidString(src) {
		return New(ErrCodeInvalidTemplate, "template is not valid UTF-8")
	}

	for i, r := range src {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTemplate, "template contains control character %U at offset %d", r, i)
		}
	}

	return nil
}
