package props

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsOfKeepsOrder(t *testing.T) {
	p := Of("nav", true, "className", "foo", "id", "x")
	assert.Equal(t, []string{"nav", "className", "id"}, p.Keys())
	p.Set("nav", false)
	assert.Equal(t, []string{"nav", "className", "id"}, p.Keys(), "re-set key must keep its position")
	v, ok := p.Get("nav")
	require.True(t, ok)
	assert.Equal(t, false, v)
	p.Set("src", "a.png")
	assert.Equal(t, "src", p[len(p)-1].Key)
}

func TestPropsOfPanicsOnOddArgs(t *testing.T) {
	assert.Panics(t, func() { Of("id") })
	assert.Panics(t, func() { Of(1, "x") })
}

func TestPropsWithoutAndDelete(t *testing.T) {
	p := Of("src", "a.png", "width", 10, "height", 20, "id", "img")
	rest := p.Without("src", "width", "height")
	assert.Equal(t, []string{"id"}, rest.Keys())
	assert.Equal(t, 4, p.Len(), "Without must not modify the receiver")
	p.Delete("width")
	assert.Equal(t, []string{"src", "height", "id"}, p.Keys())
	p.Delete("missing")
	assert.Equal(t, 3, p.Len())
}

func TestPropsMerge(t *testing.T) {
	p := Of("id", "a", "title", "t")
	p.Merge(Of("id", "b", "role", "nav"))
	assert.Equal(t, Of("id", "b", "title", "t", "role", "nav"), p)
}

func TestFromMapIsSorted(t *testing.T) {
	p := FromMap(map[string]any{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, p.Keys())
	assert.Nil(t, FromMap(nil))
}

func TestAsProps(t *testing.T) {
	p, ok := AsProps(map[string]string{"b": "2", "a": "1"})
	require.True(t, ok)
	assert.Equal(t, Of("a", "1", "b", "2"), p)
	_, ok = AsProps("color: red")
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	var nilSlice []int
	var nilPtr *Prop
	falsy := []any{nil, false, 0, 0.0, int64(0), "", math.NaN(), nilSlice, nilPtr}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "expected %#v to be falsy", v)
	}
	truthy := []any{true, 1, -1, 0.5, "x", "false", Props{}, &Prop{}, struct{}{}}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "expected %#v to be truthy", v)
	}
}

func TestLooselyTrue(t *testing.T) {
	assert.True(t, LooselyTrue(true))
	assert.True(t, LooselyTrue(1))
	assert.True(t, LooselyTrue(1.0))
	assert.False(t, LooselyTrue(2))
	assert.False(t, LooselyTrue("true"))
	assert.False(t, LooselyTrue("1fr 1fr"))
	assert.False(t, LooselyTrue(nil))
}

func TestYAMLKeepsDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.props")
	defer teardown()
	//
	doc := `
nav: true
className: menu
style:
  color: red
  gridArea: head
hover__underline: true
items: [1, two]
`
	p, err := FromYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"nav", "className", "style", "hover__underline", "items"}, p.Keys())
	st, ok := p.Get("style")
	require.True(t, ok)
	assert.Equal(t, Of("color", "red", "gridArea", "head"), st)
	items, _ := p.Get("items")
	assert.Equal(t, []any{1, "two"}, items)
}

func TestYAMLRejectsNonMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.props")
	defer teardown()
	//
	_, err := FromYAML([]byte("- a\n- b\n"))
	assert.Error(t, err)
}
