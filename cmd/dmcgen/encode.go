package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"

	"github.com/max-scw/dmc-service/symbol"
)

type encodeCommand struct {
	Rectangular bool `long:"rectangular" description:"select the rectangular/DMRE symbol family"`
	QuietZone   int  `long:"quiet-zone" default:"2" description:"number of light quiet-zone modules on each side"`
	Args        struct {
		Text string `positional-arg-name:"text" required:"1" description:"payload to render"`
	} `positional-args:"yes"`
}

func (c *encodeCommand) Execute(args []string) error {
	shape := symbol.ShapeSquare
	if c.Rectangular {
		shape = symbol.ShapeRectangular
	}

	enc := symbol.New(symbol.WithShape(shape), symbol.WithQuietZone(c.QuietZone))
	bmp, warnings, err := enc.Encode(c.Args.Text)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Print(bmp.String())
	return nil
}

func addEncodeCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("encode",
		"Render a payload as a Data Matrix bitmap",
		"Encodes the payload text into a Data Matrix ECC200 symbol and prints it as block characters.",
		&encodeCommand{})
	if err != nil {
		panic(err)
	}
}
