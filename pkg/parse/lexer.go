package parse

import (
	"strings"

	"github.com/brdgme/markup/pkg/errors"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenSingle
	tokenOpen
	tokenClose
)

type token struct {
	kind   tokenKind
	offset int    // byte offset in the template
	raw    string // source text of the token
	name   string
	args   []string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// lex splits src into text and tag tokens.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		j := strings.Index(src[i:], "{{")
		if j < 0 {
			toks = append(toks, token{kind: tokenText, offset: i, raw: src[i:]})
			break
		}
		if j > 0 {
			toks = append(toks, token{kind: tokenText, offset: i, raw: src[i : i+j]})
		}
		t, err := lexTag(src, i+j)
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		i = t.offset + len(t.raw)
	}
	return toks, nil
}

// lexTag reads the tag starting at the "{{" at src[start].
func lexTag(src string, start int) (token, error) {
	t := token{kind: tokenSingle, offset: start}
	i := start + 2

	fail := func(format string, args ...any) (token, error) {
		end := min(i+1, len(src))
		return token{}, errors.Wrap(errors.ErrCodeInvalidMarkup,
			&errors.SyntaxError{Offset: start, Tag: src[start:end]}, format, args...)
	}

	if i < len(src) {
		switch src[i] {
		case '#':
			t.kind = tokenOpen
			i++
		case '/':
			t.kind = tokenClose
			i++
		}
	}

	word := func() string {
		s := i
		for i < len(src) && !isSpace(src[i]) && src[i] != '}' {
			i++
		}
		return src[s:i]
	}
	skip := func() {
		for i < len(src) && isSpace(src[i]) {
			i++
		}
	}

	skip()
	t.name = word()
	if t.name == "" {
		return fail("tag has no name")
	}

	for {
		skip()
		if i >= len(src) {
			return fail("unterminated tag %q", t.name)
		}
		if src[i] == '}' {
			if i+1 < len(src) && src[i+1] == '}' {
				i += 2
				break
			}
			return fail("expected }} to close tag %q", t.name)
		}
		if src[i] == '"' {
			end := strings.IndexByte(src[i+1:], '"')
			if end < 0 {
				return fail("unterminated quoted argument in tag %q", t.name)
			}
			t.args = append(t.args, src[i+1:i+1+end])
			i += end + 2
			continue
		}
		t.args = append(t.args, word())
	}

	t.raw = src[start:i]
	return t, nil
}
