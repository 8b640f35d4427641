package classify

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styled/dom/style"
	"github.com/npillmayer/styled/props"
)

// Attribute keys assembled by the classifier.
const (
	ClassNameKey = "className"
	StyleKey     = "style"
)

// Result is the outcome of a classification.
type Result struct {
	Element string      // element kind to render
	Attrs   props.Props // final attributes
}

// ClassName returns the joined class names, or "" if none were collected.
func (r Result) ClassName() string {
	return r.Attrs.GetString(ClassNameKey)
}

// Style returns the assembled style mapping, or nil if none was assembled.
func (r Result) Style() *style.Declarations {
	v, _ := r.Attrs.Get(StyleKey)
	d, _ := v.(*style.Declarations)
	return d
}

// Classifier routes attribute bag entries according to a policy and a table
// of well-known keys. A Classifier is immutable after creation.
type Classifier struct {
	policy Policy
	table  table
}

// New creates a classifier for a configuration.
func New(conf Config) (*Classifier, error) {
	t, err := conf.table()
	if err != nil {
		return nil, err
	}
	return &Classifier{policy: conf.Policy, table: t}, nil
}

var defaultClassifier = &Classifier{policy: Current, table: currentTable}

// Default returns the classifier for the default configuration.
func Default() *Classifier {
	return defaultClassifier
}

// Derive classifies an attribute bag with the default classifier.
func Derive(bag props.Props, defaultElement string) Result {
	return defaultClassifier.Derive(bag, defaultElement)
}

// Policy returns the policy of c.
func (c *Classifier) Policy() Policy {
	return c.policy
}

// Behavior returns the behavior of c for a key.
func (c *Classifier) Behavior(key string) Behavior {
	return c.table[key]
}

// Derive classifies the entries of bag in order and returns the element kind
// to render, together with the final attributes. The element kind is
// defaultElement unless an element-name key is present.
//
// The final attributes hold the joined class names as "className" (if any
// class names have been collected) and the assembled style mapping of type
// *style.Declarations as "style" (if any style has been set). bag is not
// modified.
func (c *Classifier) Derive(bag props.Props, defaultElement string) Result {
	b := &builder{element: defaultElement}
	for _, p := range bag {
		key, value := p.Key, p.Value
		behavior := c.table[key]
		tracer().P("key", key).Debugf("classify %q as %s", key, behavior)
		switch behavior {
		case Ignore:
		case ClassName:
			b.addClass(classToken(value))
		case Prop:
			b.attrs.Set(key, value)
		case PropAndClassName:
			if props.Truthy(value) {
				b.addClass(key)
			}
			b.attrs.Set(key, value)
		case StyleObject:
			b.mergeStyle(key, value)
		case Passthrough:
			b.spread(key, value)
		case ElementName:
			b.addClass(key)
			b.element = key
		case Grid:
			c.grid(b, value)
		case StyleField:
			c.styleField(b, key, value)
		default:
			c.fallback(b, key, value)
		}
	}
	return b.finish()
}

func (c *Classifier) grid(b *builder, value any) {
	if c.policy == Legacy {
		b.addClass("grid")
		if props.Truthy(value) && !props.LooselyTrue(value) {
			b.setStyle("grid", value)
		}
		return
	}
	if !props.Truthy(value) {
		return
	}
	if props.LooselyTrue(value) {
		b.addClass("grid")
		return
	}
	b.setStyle("grid", value)
	b.setStyle("display", "grid")
}

func (c *Classifier) styleField(b *builder, key string, value any) {
	if c.policy == Legacy {
		if value != nil {
			b.setStyle(key, value)
		}
		return
	}
	if !props.Truthy(value) {
		return
	}
	if props.LooselyTrue(value) {
		b.addClass(key)
		return
	}
	b.setStyle(key, value)
}

// fallback handles keys not found in the table.
func (c *Classifier) fallback(b *builder, key string, value any) {
	if c.policy == Legacy {
		if IsEventHandler(key) || strings.HasPrefix(key, "data-") {
			b.attrs.Set(key, value)
			return
		}
	}
	if strings.HasPrefix(key, "var--") {
		b.setStyle(strings.TrimPrefix(key, "var"), value)
		return
	}
	if c.policy == Legacy {
		if props.Truthy(value) {
			b.addClass(ClassToken(key))
		}
		return
	}
	if flag, ok := value.(bool); ok {
		if flag {
			b.addClass(ClassToken(key))
		}
		return
	}
	if value != nil {
		b.attrs.Set(key, value)
	}
}

// IsEventHandler is a predicate wether key is named like an event handler,
// i.e. "on" followed by an uppercase letter ("onClick").
func IsEventHandler(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z'
}

// ClassToken converts a key to a class name. Every double underscore is
// replaced by a colon, thus "hover__underline" becomes "hover:underline".
func ClassToken(key string) string {
	return strings.ReplaceAll(key, "__", ":")
}

func classToken(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	return fmt.Sprint(v)
}

// --- Builder ---------------------------------------------------------------

// builder accumulates the outcome of a classification.
type builder struct {
	element string
	classes []string
	style   *style.Declarations
	attrs   props.Props
}

func (b *builder) addClass(token string) {
	if token != "" {
		b.classes = append(b.classes, token)
	}
}

// styles returns the style mapping, creating it on first use. The mapping is
// entered into the attributes at this point, which fixes its position.
func (b *builder) styles() *style.Declarations {
	if b.style == nil {
		b.style = style.NewDeclarations()
		b.attrs.Set(StyleKey, b.style)
	}
	return b.style
}

func (b *builder) setStyle(key string, value any) {
	b.styles().Set(key, value)
}

func (b *builder) mergeStyle(key string, value any) {
	if value == nil {
		return
	}
	d, err := style.Convert(value)
	if err != nil {
		tracer().P("key", key).Errorf("cannot merge into style: %v", err)
		if d.Len() == 0 {
			return
		}
	}
	b.styles().Merge(d)
}

func (b *builder) spread(key string, value any) {
	bag, ok := props.AsProps(value)
	if !ok {
		if value != nil {
			tracer().P("key", key).Errorf("cannot spread value of type %T into attributes", value)
		}
		return
	}
	for _, p := range bag {
		if p.Key != StyleKey {
			b.attrs.Set(p.Key, p.Value)
			continue
		}
		if p.Value == nil {
			b.style = nil
			b.attrs.Delete(StyleKey)
			continue
		}
		d, err := style.Convert(p.Value)
		if err != nil {
			tracer().P("key", key).Errorf("cannot spread style: %v", err)
		}
		b.style = d
		b.attrs.Set(StyleKey, d)
	}
}

func (b *builder) finish() Result {
	if len(b.classes) > 0 {
		b.attrs.Set(ClassNameKey, strings.Join(b.classes, " "))
	}
	if b.attrs == nil {
		b.attrs = props.Props{}
	}
	return Result{Element: b.element, Attrs: b.attrs}
}
