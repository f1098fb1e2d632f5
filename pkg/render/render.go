package render

import (
	"strings"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/transform"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatANSI, FormatHTML, FormatPlain, FormatJSON}

// ValidateFormat parses s case-insensitively into a Format.
func ValidateFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", s, FormatNames())
}

// FormatNames returns the supported format names joined for messages.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ContentType returns the HTTP media type for output in f.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render transforms nodes for players and renders the result in format.
func Render(format Format, nodes []ast.Node, players []string) ([]byte, error) {
	return Transformed(format, transform.Transform(nodes, players))
}

// Transformed renders an already transformed tree in format.
func Transformed(format Format, flat []ast.Node) ([]byte, error) {
	switch format {
	case FormatANSI:
		return []byte(ANSI(flat)), nil
	case FormatHTML:
		return []byte(HTML(flat)), nil
	case FormatPlain:
		return []byte(Plain(flat)), nil
	case FormatJSON:
		return JSON(flat)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}
