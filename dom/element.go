package dom

import (
	"fmt"

	"github.com/npillmayer/styled/props"
	"golang.org/x/net/html"
)

// Node is a node of an element descriptor tree, either an *Element or Text.
type Node interface {
	HTML() *html.Node // lower to an HTML parse tree node
}

// Text is a text node.
type Text string

// HTML creates an HTML text node.
func (t Text) HTML() *html.Node {
	return &html.Node{Type: html.TextNode, Data: string(t)}
}

// Element is an element descriptor.
type Element struct {
	Kind     string      // element kind, e.g. "div"
	Key      any         // identity among siblings, never rendered
	Attrs    props.Props // attributes, without children and key
	Children []Node      // child nodes
	Custom   bool        // custom element, uses hyphenated naming conventions
}

// Attribute keys with special meaning for CreateElement and CloneElement.
const (
	ChildrenKey = "children"
	KeyKey      = "key"
)

// CreateElement creates an element descriptor of a given kind. Attributes
// "children" and "key" are moved from the attribute bag to the respective
// fields of the element (see ChildrenOf).
func CreateElement(kind string, attrs props.Props) *Element {
	el := &Element{
		Kind:   kind,
		Custom: IsCustomElementName(kind),
		Attrs:  make(props.Props, 0, len(attrs)),
	}
	for _, a := range attrs {
		switch a.Key {
		case ChildrenKey:
			el.Children = ChildrenOf(a.Value)
		case KeyKey:
			el.Key = a.Value
		default:
			el.Attrs.Set(a.Key, a.Value)
		}
	}
	return el
}

// CloneElement creates a shallow copy of el with attributes from overrides
// applied on top of the attributes of el. The children of el are shared with
// the clone, unless overrides contains "children". el remains unchanged.
func CloneElement(el *Element, overrides props.Props) *Element {
	if el == nil {
		return nil
	}
	c := *el
	c.Attrs = el.Attrs.Clone()
	for _, a := range overrides {
		switch a.Key {
		case ChildrenKey:
			c.Children = ChildrenOf(a.Value)
		case KeyKey:
			c.Key = a.Value
		default:
			c.Attrs.Set(a.Key, a.Value)
		}
	}
	return &c
}

// IsCustomElementName is a predicate wether an element kind denotes a custom
// element, i.e. starts with a lowercase ASCII letter and contains a hyphen.
func IsCustomElementName(kind string) bool {
	if kind == "" || kind[0] < 'a' || kind[0] > 'z' {
		return false
	}
	for i := 1; i < len(kind); i++ {
		if kind[i] == '-' {
			return true
		}
	}
	return false
}

// ClassAttr returns the name of the attribute holding the element's class
// names: "class" for custom elements, "className" otherwise.
func (el *Element) ClassAttr() string {
	if el.Custom {
		return "class"
	}
	return "className"
}

// Class returns the class names of el, or "" if not set.
func (el *Element) Class() string {
	return el.Attrs.GetString(el.ClassAttr())
}

func (el *Element) String() string {
	return fmt.Sprintf("<%s %v>", el.Kind, el.Attrs)
}

// ChildrenOf interprets the value of a "children" attribute as a list of
// nodes. Nodes are taken as they are, strings and numbers become text nodes,
// lists are flattened, nil and booleans are skipped.
func ChildrenOf(v any) []Node {
	var nodes []Node
	return appendChildren(nodes, v)
}

func appendChildren(nodes []Node, v any) []Node {
	switch ch := v.(type) {
	case nil, bool:
		return nodes
	case *Element:
		if ch == nil {
			return nodes
		}
		return append(nodes, ch)
	case Node:
		return append(nodes, ch)
	case string:
		return append(nodes, Text(ch))
	case []Node:
		for _, n := range ch {
			nodes = appendChildren(nodes, n)
		}
		return nodes
	case []*Element:
		for _, n := range ch {
			nodes = appendChildren(nodes, n)
		}
		return nodes
	case []any:
		for _, n := range ch {
			nodes = appendChildren(nodes, n)
		}
		return nodes
	}
	if props.IsNumber(v) {
		return append(nodes, Text(fmt.Sprint(v)))
	}
	tracer().Errorf("cannot use value of type %T as a child node; skipping", v)
	return nodes
}
