package masume

// Layer is one layer of a map. The concrete type is one of *TileLayer,
// *ObjectLayer, *ImageLayer or *GroupLayer; consumers dispatch with a
// type switch.
type Layer interface {
	// Common returns the fields shared by every layer kind.
	Common() *LayerCommon
}

// LayerCommon holds the fields shared by all layer kinds. Defaults are
// resolved during decoding: opacity 1, visible true, offset (0,0),
// parallax factor (1,1) with each axis defaulted independently.
type LayerCommon struct {
	Name    string
	ID      int
	Class   string
	Visible bool
	// Opacity is clamped to [0, 1].
	Opacity        float64
	Offset         OrderedPair
	ParallaxFactor OrderedPair
	TintColor      *Color
	RepeatX        bool
	RepeatY        bool
	Properties     Properties
}

func (c *LayerCommon) Common() *LayerCommon { return c }

// Chunk is a fixed-size sub-grid of an infinite map's tile layer. X and
// Y are the chunk's origin in tile coordinates and may be negative.
// Cells is row-major with exactly Width*Height entries.
type Chunk struct {
	X      int
	Y      int
	Width  int
	Height int
	Cells  []TileCell
}

// TileLayer stores tile cells either as one dense row-major grid
// (finite maps) or as a sparse set of chunks (infinite maps). Exactly
// one of Cells and Chunks is populated.
type TileLayer struct {
	LayerCommon

	// Width and Height are the layer size in tiles. For infinite maps
	// they reflect the declared size, not the chunk extent.
	Width  int
	Height int

	Cells  []TileCell
	Chunks []Chunk
}

// TileAt looks up the cell at tile coordinates (x, y), transparently
// handling both the dense and the chunked representation. The second
// return is false when the coordinates fall outside the stored data.
func (l *TileLayer) TileAt(x, y int) (TileCell, bool) {
	if l.Chunks == nil {
		if x < 0 || y < 0 || x >= l.Width || y >= l.Height || l.Cells == nil {
			return TileCell{}, false
		}
		return l.Cells[y*l.Width+x], true
	}
	for i := range l.Chunks {
		ch := &l.Chunks[i]
		if x < ch.X || y < ch.Y || x >= ch.X+ch.Width || y >= ch.Y+ch.Height {
			continue
		}
		return ch.Cells[(y-ch.Y)*ch.Width+(x-ch.X)], true
	}
	return TileCell{}, false
}

// ObjectLayer holds objects in the order they were authored. When
// DrawOrder is "index" the consumer is expected to sort by object ID;
// the decoder never re-sorts.
type ObjectLayer struct {
	LayerCommon

	Objects   []Object
	DrawOrder string
	Color     *Color
}

// ImageLayer references a single image. Image is the path as resolved
// by the path policy of the containing document.
type ImageLayer struct {
	LayerCommon

	Image            string
	TransparentColor *Color
}

// GroupLayer nests child layers; nesting depth is unbounded.
type GroupLayer struct {
	LayerCommon

	Layers []Layer
}
