/*
Package classify decides what becomes of the entries of an attribute bag.

Overview

Given an attribute bag and a default element kind, the classifier routes
every entry to exactly one destination:

	- a pass-through attribute of the element,
	- an inline style field,
	- a class name token,
	- or nowhere (the entry is dropped).

Some keys additionally switch the element kind: {nav: true} renders a
<nav> instead of the default <div>, with class "nav".

Routing is driven by a static table of well-known keys (see Behavior),
followed by a few heuristics for all other keys: "var--x" becomes the CSS
custom property "--x", "hover__underline" becomes class "hover:underline",
and the value decides between class name, literal attribute or nothing.

Policies

Two sets of rules are in use, selected by Policy. Current is the default.
Legacy differs in its table (id, type, src, tabIndex, disabled are
well-known keys, flex is not), passes event handlers and data-* attributes
through unconditionally, always adds class "grid" for key grid, and turns
every other truthy unknown key into a class name.

Classifiers are immutable and safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.classify'.
func tracer() tracing.Trace {
	return tracing.Select("styled.classify")
}
