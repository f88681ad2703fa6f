package masume

// Object is one object of an object layer. The concrete type is one of
// *Rectangle, *Ellipse, *Point, *Polygon, *Polyline, *Text or
// *TileObject.
type Object interface {
	// Common returns the fields shared by every object kind.
	Common() *ObjectCommon
}

// ObjectCommon holds the fields shared by all object kinds. Position
// is in pixels; Rotation is in degrees clockwise.
type ObjectCommon struct {
	ID         int
	Name       string
	Class      string
	Position   OrderedPair
	Size       Size
	Rotation   float64
	Visible    bool
	Properties Properties
}

func (c *ObjectCommon) Common() *ObjectCommon { return c }

// Rectangle is the default object shape.
type Rectangle struct {
	ObjectCommon
}

// Ellipse is an ellipse inscribed in the object's bounding rectangle.
type Ellipse struct {
	ObjectCommon
}

// Point marks a single position; Size is unused.
type Point struct {
	ObjectCommon
}

// Polygon is a closed shape. Points are relative to Position, with the
// first vertex at (0,0) as authored by the editor.
type Polygon struct {
	ObjectCommon

	Points []OrderedPair
}

// Polyline is an open line strip. Points are relative to Position.
type Polyline struct {
	ObjectCommon

	Points []OrderedPair
}

// Text is a text box with font and alignment settings. Defaults follow
// the editor: sans-serif 16px, opaque black, left/top aligned, kerning
// on.
type Text struct {
	ObjectCommon

	Text       string
	FontFamily string
	PixelSize  float64
	Wrap       bool
	Color      Color
	Bold       bool
	Italic     bool
	Underline  bool
	StrikeOut  bool
	Kerning    bool
	HAlign     string
	VAlign     string
}

// TileObject stamps a tile onto the object layer. Cell uses the same
// GID/flag packing as tile layer data.
type TileObject struct {
	ObjectCommon

	Cell TileCell

	// Tileset is set only when the object came from a template that
	// carries its own tileset dependency; Cell.GID is then local to
	// that tileset's first GID rather than the map's tileset table.
	Tileset *Tileset
}
