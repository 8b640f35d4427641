package classify

// Behavior tells the classifier what to do with a well-known key.
type Behavior uint8

// Behaviors for well-known keys.
const (
	Unknown          Behavior = iota // not in the table, heuristics apply
	Prop                             // pass through unchanged
	PropAndClassName                 // pass through, plus the key as class if the value is truthy
	Ignore                           // drop
	StyleObject                      // merge the value into the style mapping
	Passthrough                      // spread the value into the attributes
	ClassName                        // value is a class name
	StyleField                       // key is a style property
	ElementName                      // key is the element kind and a class name
	Grid                             // class "grid" or style "grid", depending on the value
)

var behaviorNames = [...]string{
	"Unknown", "Prop", "PropAndClassName", "Ignore", "StyleObject",
	"Passthrough", "ClassName", "StyleField", "ElementName", "Grid",
}

func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return "Behavior(?)"
}

// table maps well-known keys to their behavior.
type table map[string]Behavior

func (t table) clone() table {
	c := make(table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

var elementNames = []string{
	"ins", "del", "nav", "caption", "pre", "h1", "h2", "h3", "h4", "h5",
}

var currentTable = func() table {
	t := table{
		// host conventions
		"key":         Prop,
		"children":    Prop,
		"ref":         Ignore,
		"style":       StyleObject,
		"passthrough": Passthrough,

		// class names
		"class":     ClassName,
		"className": ClassName,

		// layout
		"grid":       Grid,
		"gridArea":   StyleField,
		"gridColumn": StyleField,
		"gridRow":    StyleField,
		"flex":       StyleField,
	}
	for _, e := range elementNames {
		t[e] = ElementName
	}
	return t
}()

var legacyTable = func() table {
	t := table{
		"key":         Prop,
		"children":    Prop,
		"ref":         Ignore,
		"style":       StyleObject,
		"passthrough": Passthrough,

		"class":     ClassName,
		"className": ClassName,

		// HTML attributes
		"id":         Prop,
		"type":       Prop,
		"src":        Prop,
		"tabIndex":   Prop,
		"grid":       Grid,
		"gridArea":   StyleField,
		"gridColumn": StyleField,
		"gridRow":    StyleField,
		"disabled":   PropAndClassName,
	}
	for _, e := range elementNames {
		t[e] = ElementName
	}
	return t
}()
