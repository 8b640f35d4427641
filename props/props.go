package props

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Prop is a single entry of an attribute bag.
type Prop struct {
	Key   string
	Value any
}

func (p Prop) String() string {
	return fmt.Sprintf("%s=%v", p.Key, p.Value)
}

// Props is an ordered attribute bag. nil is a legal (empty) bag.
type Props []Prop

// Of creates an attribute bag from alternating keys and values:
//
//	props.Of("id", "x", "grid", true)
//
// Of panics if a key is not a string or if a value is missing.
func Of(kv ...any) Props {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("props: odd number of arguments (%d) for key/value pairs", len(kv)))
	}
	p := make(Props, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("props: key at position %d is not a string: %#v", i, kv[i]))
		}
		p.Set(key, kv[i+1])
	}
	return p
}

// FromMap creates an attribute bag from a Go map. As maps are unordered,
// keys are sorted to keep results deterministic.
func FromMap(m map[string]any) Props {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := make(Props, len(keys))
	for i, k := range keys {
		p[i] = Prop{Key: k, Value: m[k]}
	}
	return p
}

// Len returns the number of entries.
func (p Props) Len() int {
	return len(p)
}

func (p Props) index(key string) int {
	for i := range p {
		if p[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key, together with an indicator wether
// the key is present.
func (p Props) Get(key string) (any, bool) {
	if i := p.index(key); i >= 0 {
		return p[i].Value, true
	}
	return nil, false
}

// Has is a predicate wether key is present.
func (p Props) Has(key string) bool {
	return p.index(key) >= 0
}

// GetString returns the value for key if it is present and of type string.
func (p Props) GetString(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

// Set sets a value. An existing key keeps its position.
func (p *Props) Set(key string, value any) {
	if i := p.index(key); i >= 0 {
		(*p)[i].Value = value
		return
	}
	*p = append(*p, Prop{Key: key, Value: value})
}

// Delete removes key, if present.
func (p *Props) Delete(key string) {
	if i := p.index(key); i >= 0 {
		*p = append((*p)[:i], (*p)[i+1:]...)
	}
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	c := make(Props, len(p))
	copy(c, p)
	return c
}

// Without returns a copy of p with the given keys removed.
func (p Props) Without(keys ...string) Props {
	c := make(Props, 0, len(p))
outer:
	for _, prop := range p {
		for _, k := range keys {
			if prop.Key == k {
				continue outer
			}
		}
		c = append(c, prop)
	}
	return c
}

// Merge sets every entry of other on p, in the order of other.
// Entries of other override entries of p.
func (p *Props) Merge(other Props) {
	for _, prop := range other {
		p.Set(prop.Key, prop.Value)
	}
}

// Keys returns the keys of p in order.
func (p Props) Keys() []string {
	keys := make([]string, len(p))
	for i := range p {
		keys[i] = p[i].Key
	}
	return keys
}

// AsProps converts a nested mapping value to an attribute bag.
// Supported are Props, map[string]any and map[string]string.
func AsProps(v any) (Props, bool) {
	switch m := v.(type) {
	case Props:
		return m, true
	case map[string]any:
		return FromMap(m), true
	case map[string]string:
		mm := make(map[string]any, len(m))
		for k, s := range m {
			mm[k] = s
		}
		return FromMap(mm), true
	}
	return nil, false
}

// --- Value coercions -------------------------------------------------------

// Truthy reports wether a value counts as true in a boolean context.
// Falsy are nil, false, numeric zero, NaN, the empty string and nil
// pointers, maps, slices and funcs. Everything else is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// LooselyTrue reports wether v equals true without strict typing, i.e. is
// either boolean true or a number with value 1.
func LooselyTrue(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	f, ok := number(v)
	return ok && f == 1
}

// IsNumber is a predicate wether v is of one of Go's numeric types.
func IsNumber(v any) bool {
	_, ok := number(v)
	return ok
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
