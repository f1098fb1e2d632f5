package parse_test

import (
	"fmt"

	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/parse"
	"github.com/brdgme/markup/pkg/render"
)

func ExampleParse() {
	nodes, err := parse.Parse("{{player 0}} plays {{b}}{{fg red}}7{{/fg}}{{/b}}")
	if err != nil {
		panic(err)
	}
	out, _ := render.Render(render.FormatPlain, nodes, []string{"mick"})
	fmt.Println(string(out))
	// Output:
	// • mick plays 7
}

func ExampleParse_error() {
	_, err := parse.Parse("Hello {{b}}world")
	off, _ := errors.Offset(err)
	fmt.Println(errors.GetCode(err), off)
	// Output:
	// UNCLOSED_TAG 6
}
