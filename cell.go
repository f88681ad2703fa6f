package masume

// Tile cells on a layer are stored as 32-bit integers whose top four
// bits carry transform flags and whose remaining bits carry the global
// tile ID. See the TMX reference on tile flipping.
const (
	flippedHorizontallyFlag uint32 = 0x80000000
	flippedVerticallyFlag   uint32 = 0x40000000
	flippedDiagonallyFlag   uint32 = 0x20000000
	rotatedHexagonal120Flag uint32 = 0x10000000

	gidMask uint32 = 0x0fffffff
)

// TileCell is one cell of a tile layer: a global tile ID plus the
// transform flags packed into the raw value. A GID of 0 means the cell
// is empty, regardless of flags.
type TileCell struct {
	GID uint32

	FlipHorizontal bool
	FlipVertical   bool
	FlipDiagonal   bool

	// RotateHex120 is the 120-degree rotation flag used by newer
	// format versions on hexagonal maps. It shares the role of
	// FlipDiagonal there and is preserved rather than discarded.
	RotateHex120 bool
}

// UnpackGID splits a raw 32-bit tile value into its GID and transform
// flags.
func UnpackGID(raw uint32) TileCell {
	return TileCell{
		GID:            raw & gidMask,
		FlipHorizontal: raw&flippedHorizontallyFlag != 0,
		FlipVertical:   raw&flippedVerticallyFlag != 0,
		FlipDiagonal:   raw&flippedDiagonallyFlag != 0,
		RotateHex120:   raw&rotatedHexagonal120Flag != 0,
	}
}

// Pack re-assembles the raw 32-bit tile value. Pack(UnpackGID(v)) == v
// for every value whose GID fits in 28 bits.
func (c TileCell) Pack() uint32 {
	raw := c.GID & gidMask
	if c.FlipHorizontal {
		raw |= flippedHorizontallyFlag
	}
	if c.FlipVertical {
		raw |= flippedVerticallyFlag
	}
	if c.FlipDiagonal {
		raw |= flippedDiagonallyFlag
	}
	if c.RotateHex120 {
		raw |= rotatedHexagonal120Flag
	}
	return raw
}

// Empty reports whether the cell holds no tile.
func (c TileCell) Empty() bool { return c.GID == 0 }

// unpackCells converts a row-major slice of raw tile values.
func unpackCells(raw []uint32) []TileCell {
	cells := make([]TileCell, len(raw))
	for i, v := range raw {
		cells[i] = UnpackGID(v)
	}
	return cells
}
