package styled

import (
	"github.com/npillmayer/styled/classify"
	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/dom/style"
	"github.com/npillmayer/styled/props"
)

// StyleWrap decorates the children of p with the class names and attributes
// derived from the other entries of p, using the default classifier.
// See Kit.StyleWrap.
func StyleWrap(p props.Props) []dom.Node { return std.StyleWrap(p) }

// StyleWrap classifies all entries of p except "children" and applies the
// result to every child element, instead of rendering an element of its own.
// The element kind derived from p is discarded.
//
// Class names are appended to a child's existing class names, separated by
// two spaces. Style properties are merged over the child's style, other
// attributes override the child's. Children are cloned, never modified,
// and keep their order. Text children are returned unchanged.
func (k Kit) StyleWrap(p props.Props) []dom.Node {
	v, _ := p.Get(dom.ChildrenKey)
	children := dom.ChildrenOf(v)
	r := k.classifier.Derive(p.Without(dom.ChildrenKey), "div")
	class := r.ClassName()
	st := r.Style()
	overrides := r.Attrs.Without(classify.ClassNameKey, dom.KeyKey, dom.ChildrenKey)
	tracer().Debugf("style-wrap %d children with class %q", len(children), class)
	wrapped := make([]dom.Node, 0, len(children))
	for _, ch := range children {
		el, ok := ch.(*dom.Element)
		if !ok {
			wrapped = append(wrapped, ch)
			continue
		}
		o := overrides.Clone()
		if st != nil {
			existing, _ := el.Attrs.Get(classify.StyleKey)
			merged, err := style.Convert(existing)
			if err != nil {
				tracer().Errorf("style-wrap <%s>: %v", el.Kind, err)
			}
			merged.Merge(st)
			o.Set(classify.StyleKey, merged)
		}
		if class != "" {
			o.Set(el.ClassAttr(), JoinClass(el.Class(), class))
		}
		wrapped = append(wrapped, dom.CloneElement(el, o))
	}
	return wrapped
}

// JoinClass appends class names to existing ones, separated by two spaces.
// If either is empty, the other one is returned.
func JoinClass(existing, class string) string {
	if existing == "" {
		return class
	}
	if class == "" {
		return existing
	}
	return existing + "  " + class
}
