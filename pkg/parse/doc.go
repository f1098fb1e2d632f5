// Package parse reads game markup templates into document trees.
//
// # Syntax
//
// Templates are plain text with tags in double braces:
//
//	Your turn, {{player 0}}. {{b}}Pick a card:{{/b}}
//	{{table}}{{row}}{{cell right}}{{fg red}}7{{/fg}}{{/cell}}{{/row}}{{/table}}
//
// A tag is a name followed by whitespace-separated arguments. Arguments
// containing spaces are double quoted: {{action "draw card"}}. A tag may be
// prefixed with # to mark an explicit block open, or / to close a block.
// A single { not followed by another { is ordinary text.
//
// # Tags
//
//	player N             insert player N's name (no closing tag)
//	b                    bold
//	fg COLOUR, bg COLOUR foreground or background colour
//	action LABEL         mark an actionable region
//	align ALIGN WIDTH    pad each line to WIDTH columns
//	indent WIDTH         prefix each line with WIDTH spaces
//	group                group children without effect
//	table, row, cell [ALIGN]
//	canvas, layer X Y
//
// A COLOUR is "r g b" (0-255), a hex string such as #f44336 or #fff, or a
// palette name such as green or blue_grey. ALIGN is left, center or right.
//
// Rows may only appear in tables, cells in rows and layers in canvases.
// Whitespace between those structural tags is ignored; any other text there
// is an error.
//
// # Errors
//
// Parse errors are [errors.Error] values with a syntax code
// (INVALID_MARKUP, UNKNOWN_TAG, UNCLOSED_TAG, UNEXPECTED_CLOSE or
// INVALID_ARGUMENT) wrapping an [errors.SyntaxError] that records the byte
// offset of the offending tag.
//
// [errors.Error]: github.com/brdgme/markup/pkg/errors.Error
// [errors.SyntaxError]: github.com/brdgme/markup/pkg/errors.SyntaxError
package parse
