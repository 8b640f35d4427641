package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ErrInlineCSS is returned if the text of a style attribute cannot be parsed.
var ErrInlineCSS = errors.New("invalid inline CSS")

// ParseInline parses the text of a style attribute, e.g.
//
//     grid-area: head; color: red !important
//
// Property names are converted to camel-case (see KeyName), such that they
// collide with keys set from attribute bags.
func ParseInline(text string) (*Declarations, error) {
	d := NewDeclarations()
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";" // the parser drops the value of an unterminated last declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return d, fmt.Errorf("%w: %q: %v", ErrInlineCSS, text, err)
	}
	for _, decl := range decls {
		value := decl.Value
		if decl.Important {
			value += " !important"
		}
		d.SetProperty(KeyName(decl.Property), Property(value))
	}
	tracer().Debugf("parsed %d inline style properties", d.Len())
	return d, nil
}
