// Command dmcgen is a local/offline CLI for the Data Matrix code generator
// service: build a wire message, parse one back into fields, count ASCII
// compaction codewords, or encode a bitmap as quiet-zone-padded text art.
//
// Usage:
//
//	dmcgen <command> [options]
//
// Commands:
//
//	build    Build a framed wire message from DI=value pairs
//	parse    Parse a wire message into its fields
//	count    Count ASCII compaction codewords for a text payload
//	encode   Render a payload as a Data Matrix bitmap
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("dmcgen %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "dmcgen"
	parser.LongDescription = "A toolkit for building, parsing, and rendering ANSI MH10.8.2 Data Matrix messages"

	addBuildCommand(parser)
	addParseCommand(parser)
	addCountCommand(parser)
	addEncodeCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}
