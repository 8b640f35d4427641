package style

import (
	"strings"
)

// Declarations is an ordered set of inline style properties, i.e. what
// ends up in an element's style attribute. nil is a legal (empty) set for
// all read operations.
//
// Keys are kept in the notation they are set with, which for attribute
// bags is camel-case. Setting an existing key overwrites the value but
// keeps the position of the key.
type Declarations struct {
	decls []KeyValue
	index map[string]int
}

// NewDeclarations returns a new empty set of style declarations.
func NewDeclarations() *Declarations {
	return &Declarations{}
}

// Len returns the number of properties set.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.decls)
}

// Get a property's value.
func (d *Declarations) Get(key string) (Property, bool) {
	if d == nil || d.index == nil {
		return NullStyle, false
	}
	i, ok := d.index[key]
	if !ok {
		return NullStyle, false
	}
	return d.decls[i].Value, true
}

// Set converts a value to a property (see ValueOf) and sets it.
func (d *Declarations) Set(key string, value any) {
	d.SetProperty(key, ValueOf(key, value))
}

// SetProperty sets a property's value. Overwrites an existing value, if present.
func (d *Declarations) SetProperty(key string, p Property) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[key]; ok {
		d.decls[i].Value = p
		return
	}
	d.index[key] = len(d.decls)
	d.decls = append(d.decls, KeyValue{Key: key, Value: p})
}

// Merge transfers all properties from other, overwriting existing values.
func (d *Declarations) Merge(other *Declarations) {
	if other == nil {
		return
	}
	for _, kv := range other.decls {
		d.SetProperty(kv.Key, kv.Value)
	}
}

// Keys returns the property keys in order.
func (d *Declarations) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.decls))
	for i, kv := range d.decls {
		keys[i] = kv.Key
	}
	return keys
}

// Clone returns an independent copy.
func (d *Declarations) Clone() *Declarations {
	c := NewDeclarations()
	c.Merge(d)
	return c
}

// CSS renders the declarations as the text of a style attribute, e.g.
//
//     grid-area: head; --accent-color: red;
//
// Empty properties are skipped.
func (d *Declarations) CSS() string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, kv := range d.decls {
		if kv.Value.IsEmpty() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(CSSName(kv.Key))
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteByte(';')
	}
	return b.String()
}

// Stringer for declarations; used for debugging.
func (d *Declarations) String() string {
	return "{" + d.CSS() + "}"
}
