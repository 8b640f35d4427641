package classify

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styled/dom/style"
	"github.com/npillmayer/styled/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacy(t *testing.T) *Classifier {
	c, err := New(Config{Policy: Legacy})
	require.NoError(t, err)
	return c
}

func styleOf(t *testing.T, r Result, key string) style.Property {
	t.Helper()
	d := r.Style()
	require.NotNil(t, d, "expected a style mapping in %v", r.Attrs)
	p, ok := d.Get(key)
	require.True(t, ok, "expected style %q to be set in %s", key, d)
	return p
}

func TestTableKeysNeverLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.classify")
	defer teardown()
	//
	bag := props.Of(
		"ref", "r", "class", "a", "className", "b", "grid", "1fr",
		"gridArea", "x", "flex", 1, "nav", true, "style", props.Of("color", "red"),
	)
	r := Derive(bag, "div")
	t.Logf("result = %s", spew.Sdump(r.Attrs.Keys()))
	for _, k := range []string{"ref", "class", "grid", "gridArea", "flex", "nav"} {
		assert.False(t, r.Attrs.Has(k), "key %q must not be passed through", k)
	}
	assert.Equal(t, []string{"style", "className"}, r.Attrs.Keys())
	assert.Equal(t, "nav", r.Element)
}

func TestPassThroughId(t *testing.T) {
	for _, c := range []*Classifier{Default(), legacy(t)} {
		r := c.Derive(props.Of("id", "x"), "div")
		assert.Equal(t, "x", r.Attrs.GetString("id"), "policy %s", c.Policy())
		assert.Equal(t, "", r.ClassName(), "policy %s", c.Policy())
		assert.Equal(t, "div", r.Element)
	}
}

func TestStyleMergeOrder(t *testing.T) {
	r := Derive(props.Of("style", props.Of("a", 1), "gridArea", "x"), "div")
	assert.Equal(t, style.Property("1px"), styleOf(t, r, "a"))
	assert.Equal(t, style.Property("x"), styleOf(t, r, "gridArea"))

	r = Derive(props.Of("gridArea", "x", "style", map[string]any{"gridArea": "y"}), "div")
	assert.Equal(t, style.Property("y"), styleOf(t, r, "gridArea"), "last applied must win")

	r = Derive(props.Of("style", props.Of("gridArea", "y"), "gridArea", "x"), "div")
	assert.Equal(t, style.Property("x"), styleOf(t, r, "gridArea"), "last applied must win")
}

func TestStyleObjectsAreCopied(t *testing.T) {
	own := style.NewDeclarations()
	own.Set("color", "red")
	r := Derive(props.Of("style", own, "gridRow", "2"), "div")
	assert.Equal(t, 2, r.Style().Len())
	assert.Equal(t, 1, own.Len(), "caller's style must not be modified")
}

func TestInlineStyleString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.classify")
	defer teardown()
	//
	r := Derive(props.Of("style", "grid-area: head; color: red", "gridArea", "foot"), "div")
	assert.Equal(t, []string{"gridArea", "color"}, r.Style().Keys())
	assert.Equal(t, style.Property("foot"), styleOf(t, r, "gridArea"))
}

func TestInlineStyleStringKeepsLastDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.classify")
	defer teardown()
	//
	r := Derive(props.Of("style", "--accent: red; color: blue"), "div")
	assert.Equal(t, style.Property("blue"), styleOf(t, r, "color"))
	assert.Equal(t, "--accent: red; color: blue;", r.Style().CSS())
}

func TestLegacyBooleanStyleFieldsRenderNoCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.classify")
	defer teardown()
	//
	r := legacy(t).Derive(props.Of("gridArea", false, "gridRow", true), "div")
	assert.Equal(t, "", r.Style().CSS())
	assert.False(t, r.Attrs.Has("gridArea"))
	assert.False(t, r.Attrs.Has("gridRow"))
}

func TestUnsupportedStyleIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.classify")
	defer teardown()
	//
	r := Derive(props.Of("style", 42, "id", "x"), "div")
	assert.Nil(t, r.Style())
	assert.Equal(t, []string{"id"}, r.Attrs.Keys())
}

func TestClassTokenOrder(t *testing.T) {
	r := Derive(props.Of("nav", true, "className", "foo"), "div")
	assert.Equal(t, "nav foo", r.ClassName())
	assert.Equal(t, "nav", r.Element)

	r = Derive(props.Of("className", "foo", "nav", true), "div")
	assert.Equal(t, "foo nav", r.ClassName())

	r = Derive(props.Of("big", true, "h2", false, "class", "x", "hover__underline", true), "span")
	assert.Equal(t, "big h2 x hover:underline", r.ClassName())
	assert.Equal(t, "h2", r.Element)
}

func TestCSSVariable(t *testing.T) {
	for _, c := range []*Classifier{Default(), legacy(t)} {
		r := c.Derive(props.Of("var--accent-color", "red"), "div")
		assert.Equal(t, style.Property("red"), styleOf(t, r, "--accent-color"))
		assert.False(t, r.Attrs.Has("var--accent-color"))
		assert.Equal(t, "--accent-color: red;", r.Style().CSS())
	}
}

func TestGridCurrent(t *testing.T) {
	r := Derive(props.Of("grid", true), "div")
	assert.Equal(t, "grid", r.ClassName())
	assert.Nil(t, r.Style())

	r = Derive(props.Of("grid", "1fr 1fr"), "div")
	assert.Equal(t, "", r.ClassName())
	assert.Equal(t, style.Property("1fr 1fr"), styleOf(t, r, "grid"))
	assert.Equal(t, style.Property("grid"), styleOf(t, r, "display"))

	r = Derive(props.Of("grid", false), "div")
	assert.Equal(t, 0, r.Attrs.Len())
}

func TestGridLegacy(t *testing.T) {
	c := legacy(t)
	r := c.Derive(props.Of("grid", true), "div")
	assert.Equal(t, "grid", r.ClassName())
	assert.Nil(t, r.Style())

	r = c.Derive(props.Of("grid", "1fr 1fr"), "div")
	assert.Equal(t, "grid", r.ClassName())
	assert.Equal(t, style.Property("1fr 1fr"), styleOf(t, r, "grid"))
	_, hasDisplay := r.Style().Get("display")
	assert.False(t, hasDisplay)

	r = c.Derive(props.Of("grid", false), "div")
	assert.Equal(t, "grid", r.ClassName())
}

func TestStyleFields(t *testing.T) {
	r := Derive(props.Of("flex", true, "gridRow", "2 / 3", "gridColumn", false), "div")
	assert.Equal(t, "flex", r.ClassName())
	assert.Equal(t, []string{"gridRow"}, r.Style().Keys())

	r = legacy(t).Derive(props.Of("gridRow", 2, "flex", true), "div")
	assert.Equal(t, style.Property("2"), styleOf(t, r, "gridRow"))
	assert.Equal(t, "flex", r.ClassName(), "flex is no style field with the legacy table")
}

func TestUnknownKeysCurrent(t *testing.T) {
	onClick := func() {}
	r := Derive(props.Of(
		"hover__underline", true,
		"hidden", false,
		"nothing", nil,
		"title", "hello",
		"onClick", onClick,
		"data-id", "7",
		"tabIndex", 0,
	), "div")
	assert.Equal(t, "hover:underline", r.ClassName())
	assert.Equal(t, []string{"title", "onClick", "data-id", "tabIndex", "className"}, r.Attrs.Keys())
	v, _ := r.Attrs.Get("tabIndex")
	assert.Equal(t, 0, v)
}

func TestUnknownKeysLegacy(t *testing.T) {
	r := legacy(t).Derive(props.Of(
		"hover__underline", true,
		"hidden", false,
		"nothing", nil,
		"title", "hello",
		"onClick", "go()",
		"data-id", "7",
		"data-flag", true,
		"on", true,
	), "div")
	assert.Equal(t, "hover:underline title on", r.ClassName())
	assert.Equal(t, []string{"onClick", "data-id", "data-flag", "className"}, r.Attrs.Keys())
}

func TestDoubleUnderscoreReplacesAll(t *testing.T) {
	assert.Equal(t, "md:hover:underline", ClassToken("md__hover__underline"))
	assert.Equal(t, "plain", ClassToken("plain"))
}

func TestPropAndClassName(t *testing.T) {
	c := legacy(t)
	r := c.Derive(props.Of("disabled", true), "button")
	assert.Equal(t, "disabled", r.ClassName())
	v, _ := r.Attrs.Get("disabled")
	assert.Equal(t, true, v)

	r = c.Derive(props.Of("disabled", false), "button")
	assert.Equal(t, "", r.ClassName())
	assert.True(t, r.Attrs.Has("disabled"))
}

func TestPassthroughSpread(t *testing.T) {
	r := Derive(props.Of(
		"title", "a",
		"passthrough", map[string]any{"title": "b", "role": "nav"},
		"lang", "en",
	), "div")
	assert.Equal(t, []string{"title", "role", "lang"}, r.Attrs.Keys())
	assert.Equal(t, "b", r.Attrs.GetString("title"))

	r = Derive(props.Of(
		"gridArea", "x",
		"passthrough", props.Of("style", props.Of("color", "red")),
		"gridRow", "1",
	), "div")
	assert.Equal(t, []string{"color", "gridRow"}, r.Style().Keys(), "spread style replaces accumulated style")

	r = Derive(props.Of("passthrough", props.Of("className", "raw"), "big", true), "div")
	assert.Equal(t, "big", r.ClassName(), "collected class names override a spread className")
}

func TestKeyAndChildrenPassThrough(t *testing.T) {
	r := Derive(props.Of("key", 3, "children", "text", "ref", "r"), "div")
	assert.Equal(t, []string{"key", "children"}, r.Attrs.Keys())
}

func TestBagNotModified(t *testing.T) {
	bag := props.Of("style", props.Of("a", 1), "var--x", "1", "nav", true)
	before := bag.Clone()
	Derive(bag, "div")
	assert.Equal(t, before, bag)
}

func TestEmptyBag(t *testing.T) {
	r := Derive(nil, "span")
	assert.Equal(t, "span", r.Element)
	assert.NotNil(t, r.Attrs)
	assert.Equal(t, 0, r.Attrs.Len())
}
