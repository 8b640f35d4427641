package dom

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/styled/dom/style"
	"github.com/npillmayer/styled/props"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrRender is returned if an element tree cannot be serialized.
var ErrRender = errors.New("cannot render element tree")

// HTML lowers an element descriptor and its children to an HTML parse tree.
//
// Attribute "className" and "class" are merged into the class attribute,
// "style" is serialized as CSS text, "htmlFor" becomes "for". Boolean
// attributes are rendered empty if true and omitted if false. Nil values,
// functions and nested mappings have no HTML form and are omitted.
// Attribute names of standard elements are lowercased.
// A nil element lowers to nil.
func (el *Element) HTML() *html.Node {
	if el == nil {
		return nil
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Kind,
		DataAtom: atom.Lookup([]byte(el.Kind)),
	}
	classAt := -1
	for _, a := range el.Attrs {
		switch a.Key {
		case "className", "class":
			s, ok := attrValue(a.Value)
			if !ok || s == "" {
				continue
			}
			if classAt < 0 {
				classAt = len(n.Attr)
				n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: s})
			} else {
				n.Attr[classAt].Val += " " + s
			}
		case "style":
			d, err := style.Convert(a.Value)
			if err != nil {
				tracer().Errorf("element <%s>: %v", el.Kind, err)
			}
			if css := d.CSS(); css != "" {
				n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
			}
		default:
			if s, ok := attrValue(a.Value); ok {
				n.Attr = append(n.Attr, html.Attribute{Key: attrName(a.Key, el.Custom), Val: s})
			}
		}
	}
	for _, ch := range el.Children {
		if h := ch.HTML(); h != nil {
			n.AppendChild(h)
		}
	}
	return n
}

func attrName(key string, custom bool) string {
	if key == "htmlFor" {
		return "for"
	}
	if custom {
		return key
	}
	return strings.ToLower(key)
}

func attrValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", x
	case string:
		return x, true
	case *style.Declarations:
		return x.CSS(), true
	case fmt.Stringer:
		return x.String(), true
	case props.Props, map[string]any, map[string]string:
		return "", false
	}
	if props.IsNumber(v) {
		return fmt.Sprint(v), true
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return "", false
	}
	return fmt.Sprint(v), true
}

// RenderString serializes a node and its children to HTML text.
func RenderString(n Node) (string, error) {
	if n == nil {
		return "", nil
	}
	h := n.HTML()
	if h == nil {
		return "", nil
	}
	var b strings.Builder
	if err := html.Render(&b, h); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return b.String(), nil
}

// RenderAll serializes a list of sibling nodes, as produced by StyleWrap.
func RenderAll(nodes []Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		s, err := RenderString(n)
		if err != nil {
			return b.String(), err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
