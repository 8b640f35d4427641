/*
Command styled renders attribute bags as HTML.

Usage

	styled render [--config file] [--policy current|legacy] [--element kind]
	              [--tree] [--select selector] [--trace level] [file|-]

The attribute bag is read as a YAML mapping from a file or from stdin.
The order of the mapping's keys is kept, which determines the order of the
derived class names. Example:

	$ echo '{nav: true, hover__underline: true, gridArea: head, id: top}' | styled render
	<nav style="grid-area: head;" id="top" class="nav hover:underline"></nav>

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v3"
)

var tracerKeys = []string{"styled", "styled.classify", "styled.dom", "styled.props"}

func main() {
	if err := app().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "styled: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.Command {
	return &cli.Command{
		Name:  "styled",
		Usage: "render attribute bags as styled HTML elements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trace",
				Value: "error",
				Usage: "trace level (error, info, debug)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupTracing(cmd.String("trace"))
		},
		Commands: []*cli.Command{
			renderCommand(),
		},
	}
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}
