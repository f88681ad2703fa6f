package masume

// WangTile assigns a Wang ID pattern to one tile. WangID always has 8
// entries ordered [top, top-right, right, bottom-right, bottom,
// bottom-left, left, top-left]; each entry indexes into the owning
// set's Colors (1-based, 0 = unset).
type WangTile struct {
	TileID int
	WangID [8]int
}

// WangColor is one terrain color of a Wang set.
type WangColor struct {
	Name        string
	Class       string
	Color       Color
	Tile        int
	Probability float64
	Properties  Properties
}

// WangSet describes which tiles of a tileset join seamlessly, used by
// the editor's terrain tools.
type WangSet struct {
	Name  string
	Class string
	// Type is the wang set encoding: "corner", "edge" or "mixed".
	Type string
	// Tile is the ID of the tile representing the set, -1 when unset.
	Tile       int
	Colors     []WangColor
	Tiles      map[int]WangTile
	Properties Properties
}
