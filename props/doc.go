/*
Package props implements attribute bags for styled elements.

Overview

An attribute bag is what a caller hands to an element adapter: a loosely
typed list of key/value pairs. Values may be strings, numbers, booleans,
nested style mappings or nested attribute bags.

Go maps do not keep an iteration order, but class names derived from a bag
have to appear in the order the caller wrote them. Type Props is therefore
an ordered slice of pairs. Setting an existing key replaces its value in
place, new keys are appended.

	p := props.Of("nav", true, "className", "menu", "id", "top")

Bags may be read from YAML. The mapping order of the document is kept.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.props'.
func tracer() tracing.Trace {
	return tracing.Select("styled.props")
}
