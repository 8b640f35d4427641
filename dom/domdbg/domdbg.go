/*
Package domdbg implements helpers to debug element descriptor trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/dom/style"
	tp "github.com/xlab/treeprint"
)

// Print outputs an element descriptor tree as indented text, e.g.
//
//     <nav> className="nav"
//     ├── <a> className="item"
//     │   └── "one"
//     └── <a> className="item"
//
func Print(n dom.Node) string {
	printer := tp.New()
	printNode(printer, n, true)
	return printer.String()
}

// PrintAll outputs a list of sibling nodes, e.g. as returned from StyleWrap.
func PrintAll(nodes []dom.Node) string {
	printer := tp.New()
	for _, n := range nodes {
		printNode(printer, n, false)
	}
	return printer.String()
}

// Log is a helper for testing. It writes the tree under n to the test log.
func Log(t *testing.T, n dom.Node) {
	t.Helper()
	t.Logf("element tree =\n%s", Print(n))
}

func printNode(printer tp.Tree, n dom.Node, isRoot bool) {
	switch x := n.(type) {
	case dom.Text:
		printer.AddNode(fmt.Sprintf("%q", string(x)))
	case *dom.Element:
		if x == nil {
			return
		}
		var branch tp.Tree
		if isRoot {
			printer.SetValue(label(x))
			branch = printer
		} else if len(x.Children) == 0 {
			printer.AddNode(label(x))
			return
		} else {
			branch = printer.AddBranch(label(x))
		}
		for _, ch := range x.Children {
			printNode(branch, ch, false)
		}
	}
}

func label(el *dom.Element) string {
	var b strings.Builder
	b.WriteString("<" + el.Kind + ">")
	if el.Key != nil {
		fmt.Fprintf(&b, " key=%v", el.Key)
	}
	for _, a := range el.Attrs {
		switch v := a.Value.(type) {
		case string:
			fmt.Fprintf(&b, " %s=%q", a.Key, v)
		case *style.Declarations:
			fmt.Fprintf(&b, " %s=%s", a.Key, v)
		default:
			fmt.Fprintf(&b, " %s=%v", a.Key, v)
		}
	}
	return b.String()
}
