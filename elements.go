package styled

import (
	"github.com/npillmayer/styled/classify"
	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/dom/style"
	"github.com/npillmayer/styled/props"
)

// Kit is a set of element helpers bound to a classifier.
type Kit struct {
	classifier *classify.Classifier
}

// With returns element helpers using classifier c. If c is nil, the
// default classifier is used.
func With(c *classify.Classifier) Kit {
	if c == nil {
		c = classify.Default()
	}
	return Kit{classifier: c}
}

var std = With(nil)

// Element classifies p and creates an element, which is of kind
// defaultKind unless p contains an element-name key.
func (k Kit) Element(defaultKind string, p props.Props) *dom.Element {
	r := k.classifier.Derive(p, defaultKind)
	return dom.CreateElement(r.Element, r.Attrs)
}

// Block creates an element with default kind "div".
func (k Kit) Block(p props.Props) *dom.Element { return k.Element("div", p) }

// Span creates an element with default kind "span".
func (k Kit) Span(p props.Props) *dom.Element { return k.Element("span", p) }

// Button creates an element with default kind "button".
func (k Kit) Button(p props.Props) *dom.Element { return k.Element("button", p) }

// Input creates an element with default kind "input".
func (k Kit) Input(p props.Props) *dom.Element { return k.Element("input", p) }

// Select creates an element with default kind "select".
func (k Kit) Select(p props.Props) *dom.Element { return k.Element("select", p) }

// Form creates an element with default kind "form".
func (k Kit) Form(p props.Props) *dom.Element { return k.Element("form", p) }

// Pre creates an element with default kind "pre".
func (k Kit) Pre(p props.Props) *dom.Element { return k.Element("pre", p) }

// Img creates an <img> element. Attributes width and height are set as
// style properties, src is attached without classification. The element
// kind is always "img".
func (k Kit) Img(p props.Props) *dom.Element {
	src, hasSrc := p.Get("src")
	width, _ := p.Get("width")
	height, _ := p.Get("height")
	rest := p.Without("src", "width", "height")
	if width != nil || height != nil {
		existing, _ := rest.Get(classify.StyleKey)
		d, err := style.Convert(existing)
		if err != nil {
			tracer().Errorf("img: %v", err)
		}
		if width != nil {
			d.Set("width", width)
		}
		if height != nil {
			d.Set("height", height)
		}
		rest.Set(classify.StyleKey, d)
	}
	r := k.classifier.Derive(rest, "img")
	attrs := make(props.Props, 0, len(r.Attrs)+1)
	if hasSrc {
		attrs.Set("src", src)
	}
	attrs.Merge(r.Attrs)
	return dom.CreateElement("img", attrs)
}

// Block creates an element with default kind "div", using the default
// classifier.
func Block(p props.Props) *dom.Element { return std.Block(p) }

// Span creates an element with default kind "span", using the default
// classifier.
func Span(p props.Props) *dom.Element { return std.Span(p) }

// Button creates an element with default kind "button", using the default
// classifier.
func Button(p props.Props) *dom.Element { return std.Button(p) }

// Input creates an element with default kind "input", using the default
// classifier.
func Input(p props.Props) *dom.Element { return std.Input(p) }

// Select creates an element with default kind "select", using the default
// classifier.
func Select(p props.Props) *dom.Element { return std.Select(p) }

// Form creates an element with default kind "form", using the default
// classifier.
func Form(p props.Props) *dom.Element { return std.Form(p) }

// Pre creates an element with default kind "pre", using the default
// classifier.
func Pre(p props.Props) *dom.Element { return std.Pre(p) }

// Img creates an <img> element, using the default classifier.
// See Kit.Img.
func Img(p props.Props) *dom.Element { return std.Img(p) }
