/*
Package dom is the rendering host for styled elements.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Components do not write HTML directly. They create lightweight element
descriptors (type Element), which carry an element kind ("div", "nav",
"my-widget"), an attribute bag and a list of children. Descriptors are
treated as immutable values: CloneElement produces a modified copy and
never touches the original, which allows wrappers to decorate children
handed to them.

Element descriptors are lowered to HTML parse trees of package
golang.org/x/net/html (see Element.HTML) and may then be serialized with
RenderString or queried with CSS selectors (see Find).

Custom Elements

Elements whose kind starts with a lowercase letter and contains a hyphen
are custom elements (web components). These use "class" instead of
"className" for their class attribute and keep attribute names as given.
Descriptors carry this as an explicit flag, set at creation time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styled.dom'
func tracer() tracing.Trace {
	return tracing.Select("styled.dom")
}
