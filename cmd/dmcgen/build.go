package main

import (
	"fmt"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
	"github.com/max-scw/dmc-service/service"
)

type buildCommand struct {
	Format             string `long:"format" default:"ANSI-MH-10" description:"format envelope name"`
	NoMessageEnvelope  bool   `long:"no-message-envelope" description:"omit the [)>RS...EOT message envelope"`
	NoFormatEnvelope   bool   `long:"no-format-envelope" description:"omit the 06GS...RS format envelope"`
	Args               struct {
		Fields []string `positional-arg-name:"DI=value" required:"1" description:"Data Identifier and value pairs, e.g. S=123456"`
	} `positional-args:"yes"`
}

func (c *buildCommand) Execute(args []string) error {
	fields := make([]message.Field, 0, len(c.Args.Fields))
	for _, pair := range c.Args.Fields {
		di, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid DI=value pair %q", pair)
		}
		fields = append(fields, message.Field{DI: identifier.DI(di), Raw: value, Valid: true})
	}

	cat, err := service.DefaultCatalogue()
	if err != nil {
		return err
	}

	opts := service.DefaultOptions()
	opts.UseMessageEnvelope = !c.NoMessageEnvelope
	opts.UseFormatEnvelope = !c.NoFormatEnvelope

	text, err := service.New(cat).BuildMessage(map[message.FormatName][]message.Field{
		message.FormatName(c.Format): fields,
	}, opts)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func addBuildCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("build",
		"Build a framed wire message from DI=value pairs",
		"Builds an ISO/IEC 15434 message envelope around the given Data Identifier fields.",
		&buildCommand{})
	if err != nil {
		panic(err)
	}
}
