package masume

// WorldMap places one map file within a world's coordinate space. The
// referenced map is never loaded.
type WorldMap struct {
	// FileName is the map path resolved against the world file's
	// directory.
	FileName string
	Position OrderedPair
	// Size is nil for pattern-discovered maps, whose bounds the
	// caller derives by opening the map.
	Size *Size
}

// World is a decoded world file: a set of maps and their placement.
type World struct {
	Maps             []WorldMap
	OnlyShowAdjacent bool
}
