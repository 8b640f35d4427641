package style

import (
	"errors"
	"fmt"

	"github.com/npillmayer/styled/props"
)

// ErrNotAStyle is returned if a value cannot be interpreted as a style mapping.
var ErrNotAStyle = errors.New("value is not a style mapping")

// Convert interprets a value as a style mapping. Accepted are
// declarations (pointer or value), attribute bags, string-keyed Go maps and
// strings, which are parsed as inline CSS. The result is always a fresh
// copy, callers may modify it freely.
func Convert(v any) (*Declarations, error) {
	switch x := v.(type) {
	case nil:
		return NewDeclarations(), nil
	case *Declarations:
		return x.Clone(), nil
	case Declarations:
		return x.Clone(), nil
	case string:
		return ParseInline(x)
	case Property:
		return ParseInline(x.String())
	}
	if bag, ok := props.AsProps(v); ok {
		d := NewDeclarations()
		for _, p := range bag {
			d.Set(p.Key, p.Value)
		}
		return d, nil
	}
	return NewDeclarations(), fmt.Errorf("%w: %T", ErrNotAStyle, v)
}
