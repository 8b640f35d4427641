package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stoewer/go-strcase"
)

// tracer will return a tracer. We are tracing to 'styled.dom'
func tracer() tracing.Trace {
	return tracing.Select("styled.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Values ---------------------------------------------------------------

// Unitless properties take plain numbers. Every other property receives
// a "px" suffix for numeric values.
var unitless = map[string]bool{
	"animationIterationCount": true,
	"columnCount":             true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"gridArea":                true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnStart":         true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowStart":            true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// IsCustomProperty is a predicate wether key names a CSS custom
// property (a CSS variable), i.e. starts with "--".
func IsCustomProperty(key string) bool {
	return strings.HasPrefix(key, "--")
}

// IsUnitless returns true for properties which take numbers without a unit.
func IsUnitless(key string) bool {
	return unitless[key] || IsCustomProperty(key)
}

// ValueOf converts a Go value into a property value for key.
// Numbers receive a "px" suffix, except for zero and for unitless properties.
// Booleans have no CSS form and result in an empty property.
func ValueOf(key string, v any) Property {
	switch x := v.(type) {
	case nil:
		return NullStyle
	case Property:
		return x
	case string:
		return Property(x)
	case fmt.Stringer:
		return Property(x.String())
	case bool:
		return NullStyle
	}
	if n, ok := numeral(v); ok {
		if n == "0" || IsUnitless(key) {
			return Property(n)
		}
		return Property(n + "px")
	}
	return Property(fmt.Sprint(v))
}

func numeral(v any) (string, bool) {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", n), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}

// --- Property names -------------------------------------------------------

// CSSName converts a property key as used in attribute bags (camel-case,
// e.g. "gridArea") to its CSS notation ("grid-area"). Custom properties are
// left alone, vendor prefixes ("WebkitTransition") receive a leading dash.
func CSSName(key string) string {
	if IsCustomProperty(key) || key == "" {
		return key
	}
	name := strcase.KebabCase(key)
	if c := key[0]; c >= 'A' && c <= 'Z' {
		name = "-" + name
	}
	return name
}

// KeyName converts a CSS property name ("grid-area") to the camel-case
// notation of attribute bags ("gridArea"). Custom properties are left alone.
func KeyName(cssname string) string {
	if IsCustomProperty(cssname) || !strings.Contains(cssname, "-") {
		return cssname
	}
	if strings.HasPrefix(cssname, "-") { // vendor prefix, e.g. -webkit-transition
		return strcase.UpperCamelCase(cssname[1:])
	}
	return strcase.LowerCamelCase(cssname)
}
