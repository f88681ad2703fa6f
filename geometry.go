package masume

// OrderedPair is a 2-component float record used for positions,
// offsets, parallax factors and polygon vertices.
type OrderedPair struct {
	X float64
	Y float64
}

// Size holds a width/height pair, in tiles or pixels depending on
// context.
type Size struct {
	Width  float64
	Height float64
}
