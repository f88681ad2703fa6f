package masume

// PropertyType identifies which variant of a Property carries the
// value. The names match Tiled's own property type strings.
type PropertyType string

const (
	PropertyString PropertyType = "string"
	PropertyInt    PropertyType = "int"
	PropertyFloat  PropertyType = "float"
	PropertyBool   PropertyType = "bool"
	PropertyFile   PropertyType = "file"
	PropertyColor  PropertyType = "color"
	PropertyObject PropertyType = "object"
	PropertyClass  PropertyType = "class"
)

// Property is a single custom property value. Exactly one of the value
// fields is meaningful, selected by Type.
type Property struct {
	Type PropertyType

	String string
	Int    int64
	Float  float64
	Bool   bool
	Color  Color
	// File is the property's path as authored, not resolved against
	// the containing file.
	File string
	// Object is the ID of a referenced object on the same map, 0 when
	// the reference is unset.
	Object int

	// CustomType names the user-defined class for class properties.
	CustomType string
	// Members holds the nested values of a class property.
	Members Properties
}

// Properties maps property names to their values. Names are unique
// within one set; order is not preserved.
type Properties map[string]Property
