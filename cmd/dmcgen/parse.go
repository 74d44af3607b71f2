package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"

	"github.com/max-scw/dmc-service/service"
)

type parseCommand struct {
	Strict bool `long:"strict" description:"abort on the first invalid field instead of continuing"`
	Args   struct {
		Text string `positional-arg-name:"text" required:"1" description:"framed wire message to parse"`
	} `positional-args:"yes"`
}

func (c *parseCommand) Execute(args []string) error {
	cat, err := service.DefaultCatalogue()
	if err != nil {
		return err
	}

	opts := service.DefaultOptions()
	opts.AppStrict = c.Strict

	groups, err := service.New(cat).Parse(c.Args.Text, opts)
	if err != nil {
		return err
	}

	for format, fields := range groups {
		fmt.Printf("%s:\n", format)
		for _, f := range fields {
			status := "ok"
			if !f.Valid {
				status = "invalid"
			}
			fmt.Printf("  %s = %q (%s)\n", f.DI, f.Raw, status)
		}
	}
	return nil
}

func addParseCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("parse",
		"Parse a wire message into its fields",
		"Locates the message and format envelopes in text and validates every field against the bundled catalogue.",
		&parseCommand{})
	if err != nil {
		panic(err)
	}
}
