package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"

	"github.com/max-scw/dmc-service/ascii"
)

type countCommand struct {
	Args struct {
		Text string `positional-arg-name:"text" required:"1" description:"text to count ASCII compaction codewords for"`
	} `positional-args:"yes"`
}

func (c *countCommand) Execute(args []string) error {
	fmt.Println(ascii.Count(c.Args.Text))
	return nil
}

func addCountCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("count",
		"Count ASCII compaction codewords for a text payload",
		"Reports how many Data Matrix ASCII codewords the given text compacts into.",
		&countCommand{})
	if err != nil {
		panic(err)
	}
}
