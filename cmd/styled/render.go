package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/styled"
	"github.com/npillmayer/styled/classify"
	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/dom/domdbg"
	"github.com/npillmayer/styled/props"
	"github.com/urfave/cli/v3"
	"golang.org/x/net/html"
)

type renderOptions struct {
	config   string // path of a classifier configuration
	policy   string // overrides the configured policy, if set
	element  string // default element kind
	tree     bool   // print the element tree instead of HTML
	selector string // print only nodes matching this CSS selector
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a YAML attribute bag as HTML",
		ArgsUsage: "[file|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "classifier configuration (YAML)"},
			&cli.StringFlag{Name: "policy", Aliases: []string{"p"}, Usage: "classification policy (current, legacy)"},
			&cli.StringFlag{Name: "element", Aliases: []string{"e"}, Value: "div", Usage: "default element kind"},
			&cli.BoolFlag{Name: "tree", Aliases: []string{"t"}, Usage: "print the element tree instead of HTML"},
			&cli.StringFlag{Name: "select", Aliases: []string{"s"}, Usage: "print only nodes matching a CSS selector"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := renderOptions{
				config:   cmd.String("config"),
				policy:   cmd.String("policy"),
				element:  cmd.String("element"),
				tree:     cmd.Bool("tree"),
				selector: cmd.String("select"),
			}
			in := io.Reader(os.Stdin)
			if name := cmd.Args().First(); name != "" && name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return render(opts, in, os.Stdout)
		},
	}
}

func loadClassifier(opts renderOptions) (*classify.Classifier, error) {
	var conf classify.Config
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if conf, err = classify.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if opts.policy != "" {
		p, err := classify.ParsePolicy(opts.policy)
		if err != nil {
			return nil, err
		}
		conf.Policy = p
	}
	return classify.New(conf)
}

func render(opts renderOptions, in io.Reader, out io.Writer) error {
	c, err := loadClassifier(opts)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	bag, err := props.FromYAML(data)
	if err != nil {
		return err
	}
	element := opts.element
	if element == "" {
		element = "div"
	}
	el := styled.With(c).Element(element, bag)
	if opts.tree {
		_, err = fmt.Fprint(out, domdbg.Print(el))
		return err
	}
	if opts.selector == "" {
		s, err := dom.RenderString(el)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	}
	nodes, err := dom.FindIn(el, opts.selector)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		var b strings.Builder
		if err := html.Render(&b, n); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
