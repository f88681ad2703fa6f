package masume

// Rendering hints introduced by newer tileset format versions. Both
// carry format-defined defaults applied during decoding.
const (
	// TileRenderSizeTile renders tiles at their own size (default).
	TileRenderSizeTile = "tile"
	// TileRenderSizeGrid renders tiles at the map grid size.
	TileRenderSizeGrid = "grid"

	// FillModeStretch stretches the tile image (default).
	FillModeStretch = "stretch"
	// FillModePreserveAspect preserves the image aspect ratio.
	FillModePreserveAspect = "preserve-aspect-fit"
)

// Frame is one step of a tile animation. TileID is local to the
// owning tileset; Duration is in milliseconds.
type Frame struct {
	TileID   int
	Duration int
}

// Grid overrides tile overlay rendering; only written for isometric
// orientation.
type Grid struct {
	Orientation string
	Width       int
	Height      int
}

// Transformations records which transforms the editor may apply to
// tiles of this set when auto-terraining.
type Transformations struct {
	HFlip               bool
	VFlip               bool
	Rotate              bool
	PreferUntransformed bool
}

// Tile is the per-tile override record. Only tiles with extra data
// (animation, collision shapes, a dedicated image, properties, a
// class) appear in a tileset's Tiles map.
type Tile struct {
	ID    int
	Class string

	// Image is a per-tile image path, used by image-collection
	// tilesets. Resolved to an absolute path when the tileset is
	// external, kept relative to the map otherwise.
	Image       string
	ImageWidth  int
	ImageHeight int

	// X, Y, Width and Height select a sub-rectangle of the tile's
	// image. When unspecified they default to the full image.
	X      int
	Y      int
	Width  int
	Height int

	Animation   []Frame
	ObjectGroup *ObjectLayer
	Probability float64
	Properties  Properties
}

// Tileset is a collection of tiles, decoded from an embedded
// definition or an external tileset file.
type Tileset struct {
	Name  string
	Class string

	// FirstGID is the global ID of the tileset's first tile within
	// the referencing map. Zero for a tileset parsed standalone.
	FirstGID uint32

	TileWidth  int
	TileHeight int
	TileCount  int
	// Columns is 0 for image-collection tilesets, where each tile
	// supplies its own image.
	Columns int
	Spacing int
	Margin  int

	// Image is the shared atlas image, empty for image-collection
	// tilesets. External tilesets carry absolute paths here; embedded
	// tilesets keep paths relative to the map file.
	Image       string
	ImageWidth  int
	ImageHeight int

	TileOffset       OrderedPair
	Grid             *Grid
	Transformations  *Transformations
	BackgroundColor  *Color
	TransparentColor *Color
	ObjectAlignment  string

	// TileRenderSize and FillMode are rendering hints with
	// format-defined defaults ("tile" and "stretch").
	TileRenderSize string
	FillMode       string

	Tiles      map[int]*Tile
	WangSets   []WangSet
	Properties Properties

	Version      string
	TiledVersion string
}

// Tile returns the override record for a local tile ID. The second
// return reports whether the tile carries any override data; tiles
// without one use pure grid geometry.
func (ts *Tileset) Tile(localID int) (*Tile, bool) {
	t, ok := ts.Tiles[localID]
	return t, ok
}
