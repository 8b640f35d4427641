/*
Package styled provides element helpers which turn loosely typed attribute
bags into styled HTML elements.

Overview

Writing markup for utility-class CSS frameworks tends to be noisy. With
package styled, class names, inline styles and the element kind are all
expressed as entries of one attribute bag:

	el := styled.Block(props.Of(
	    "nav", true,              // render a <nav>, add class "nav"
	    "flexRow", true,          // class "flexRow"
	    "hover__underline", true, // class "hover:underline"
	    "gridArea", "head",       // style grid-area: head
	    "var--accent", "red",     // style --accent: red
	    "id", "top",              // attribute id="top"
	))
	html, err := dom.RenderString(el)

The helpers Block, Span, Button, Input, Select, Form, Pre and Img differ only
in their default element kind. StyleWrap does not render an element of its
own but decorates its children with the classes and attributes derived from
its attribute bag.

Classification rules are implemented in package classify. The helpers use
the default classifier; use With to bind them to a configured one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled'.
func tracer() tracing.Trace {
	return tracing.Select("styled")
}
