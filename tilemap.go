package masume

// TilesetRef is one entry of a map's ordered tileset table. Entries
// are sorted by FirstGID, which the decoder validates to be strictly
// increasing.
type TilesetRef struct {
	FirstGID uint32
	// Source is the resolved path of an external tileset file, empty
	// for tilesets embedded in the map document.
	Source  string
	Tileset *Tileset
}

// Map is a fully decoded map document.
type Map struct {
	// Version is the map format version, normalized to a string even
	// when the source stored it as a number.
	Version      string
	TiledVersion string
	Class        string

	Orientation string
	RenderOrder string
	Infinite    bool

	// MapSize is in tiles, TileSize in pixels.
	MapSize  Size
	TileSize Size

	HexSideLength int
	StaggerAxis   string
	StaggerIndex  string

	BackgroundColor *Color
	ParallaxOrigin  OrderedPair

	Tilesets []TilesetRef
	Layers   []Layer

	Properties Properties

	NextLayerID  int
	NextObjectID int
}

// PixelSize is the overall map size in pixels for orthogonal maps.
func (m *Map) PixelSize() Size {
	return Size{
		Width:  m.MapSize.Width * m.TileSize.Width,
		Height: m.MapSize.Height * m.TileSize.Height,
	}
}

// TilesetFor resolves the tileset owning a cell's global tile ID,
// returning the tileset and the tile ID local to it. The last return
// is false for empty cells or GIDs outside every tileset's range.
func (m *Map) TilesetFor(c TileCell) (*Tileset, int, bool) {
	if c.GID == 0 {
		return nil, 0, false
	}
	for i := len(m.Tilesets) - 1; i >= 0; i-- {
		ref := &m.Tilesets[i]
		if c.GID >= ref.FirstGID {
			return ref.Tileset, int(c.GID - ref.FirstGID), true
		}
	}
	return nil, 0, false
}
