package masume

import (
	"context"
	"errors"
	"testing"
)

func parseMapString(t *testing.T, doc string) *Map {
	t.Helper()
	m, err := ParseMapBytes(context.Background(), []byte(doc), ".")
	if err != nil {
		t.Fatalf("ParseMapBytes error: %v", err)
	}
	return m
}

func TestParseMapDefaults(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "version": 1.1,
		"width": 2, "height": 2, "tilewidth": 16, "tileheight": 16,
		"layers": [
			{"type": "tilelayer", "id": 1, "name": "ground", "width": 2, "height": 2, "data": [1, 0, 0, 2]}
		]
	}`)

	if m.Version != "1.1" {
		t.Errorf("Version = %q, want %q (numeric versions normalize to strings)", m.Version, "1.1")
	}
	if m.Orientation != "orthogonal" {
		t.Errorf("Orientation = %q, want orthogonal", m.Orientation)
	}
	if m.RenderOrder != "right-down" {
		t.Errorf("RenderOrder = %q, want right-down", m.RenderOrder)
	}
	if m.Infinite {
		t.Error("Infinite = true, want false")
	}
	if m.MapSize != (Size{Width: 2, Height: 2}) || m.TileSize != (Size{Width: 16, Height: 16}) {
		t.Errorf("sizes = %+v / %+v", m.MapSize, m.TileSize)
	}
	if got := m.PixelSize(); got != (Size{Width: 32, Height: 32}) {
		t.Errorf("PixelSize() = %+v", got)
	}

	layer, ok := m.Layers[0].(*TileLayer)
	if !ok {
		t.Fatalf("layer is %T, want *TileLayer", m.Layers[0])
	}
	c := layer.Common()
	if !c.Visible || c.Opacity != 1 {
		t.Errorf("layer defaults: visible=%v opacity=%v", c.Visible, c.Opacity)
	}
	if c.Offset != (OrderedPair{}) || c.ParallaxFactor != (OrderedPair{X: 1, Y: 1}) {
		t.Errorf("layer defaults: offset=%+v parallax=%+v", c.Offset, c.ParallaxFactor)
	}
	if cell, ok := layer.TileAt(1, 1); !ok || cell.GID != 2 {
		t.Errorf("TileAt(1,1) = %+v, %v", cell, ok)
	}
	if _, ok := layer.TileAt(2, 0); ok {
		t.Error("TileAt(2,0) should be out of bounds")
	}
}

func TestParseMapOpacityClamped(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"layers": [
			{"type": "tilelayer", "id": 1, "opacity": 2.5, "width": 1, "height": 1, "data": [0]},
			{"type": "tilelayer", "id": 2, "opacity": -0.5, "width": 1, "height": 1, "data": [0]}
		]
	}`)
	if got := m.Layers[0].Common().Opacity; got != 1 {
		t.Errorf("opacity 2.5 clamped to %v, want 1", got)
	}
	if got := m.Layers[1].Common().Opacity; got != 0 {
		t.Errorf("opacity -0.5 clamped to %v, want 0", got)
	}
}

// Parallax axes default independently: a layer declaring only one
// axis keeps the 1.0 default on the other.
func TestParseMapParallaxPerAxisDefault(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"layers": [
			{"type": "tilelayer", "id": 1, "parallaxy": 2.0, "width": 1, "height": 1, "data": [0]}
		]
	}`)
	if got := m.Layers[0].Common().ParallaxFactor; got != (OrderedPair{X: 1, Y: 2}) {
		t.Errorf("ParallaxFactor = %+v, want (1, 2)", got)
	}
}

// A chunked layer and a dense layer holding the same logical content
// answer TileAt identically.
func TestChunkedAndDenseLookupAgree(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 4, "height": 2, "tilewidth": 16, "tileheight": 16,
		"layers": [
			{"type": "tilelayer", "id": 1, "name": "dense", "width": 4, "height": 2,
			 "data": [1, 2, 3, 4, 5, 6, 7, 8]},
			{"type": "tilelayer", "id": 2, "name": "chunked", "width": 4, "height": 2,
			 "chunks": [
				{"x": 0, "y": 0, "width": 2, "height": 2, "data": [1, 2, 5, 6]},
				{"x": 2, "y": 0, "width": 2, "height": 2, "data": [3, 4, 7, 8]}
			 ]}
		]
	}`)

	dense := m.Layers[0].(*TileLayer)
	chunked := m.Layers[1].(*TileLayer)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			dc, dok := dense.TileAt(x, y)
			cc, cok := chunked.TileAt(x, y)
			if dok != cok || dc != cc {
				t.Errorf("TileAt(%d,%d): dense %+v,%v chunked %+v,%v", x, y, dc, dok, cc, cok)
			}
		}
	}
}

func TestParseMapFirstGIDOrder(t *testing.T) {
	_, err := ParseMapBytes(context.Background(), []byte(`{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"tilesets": [
			{"firstgid": 5, "name": "a", "tilewidth": 1, "tileheight": 1},
			{"firstgid": 3, "name": "b", "tilewidth": 1, "tileheight": 1}
		],
		"layers": []
	}`), ".")
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError for non-increasing first GIDs", err)
	}
}

func TestParseMapWrongKind(t *testing.T) {
	_, err := ParseMapBytes(context.Background(), []byte(`{"type": "tileset", "tilewidth": 1, "tileheight": 1}`), ".")
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError for non-map document", err)
	}
}

func TestParseMapUnknownLayerType(t *testing.T) {
	_, err := ParseMapBytes(context.Background(), []byte(`{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"layers": [{"type": "voxellayer", "id": 1}]
	}`), ".")
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError for unknown layer type", err)
	}
}

func TestParseMapInfiniteChunks(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "infinite": true,
		"width": 4, "height": 4, "tilewidth": 16, "tileheight": 16,
		"layers": [{
			"type": "tilelayer", "id": 1, "name": "ground", "width": 4, "height": 4,
			"chunks": [
				{"x": -2, "y": -2, "width": 2, "height": 2, "data": [1, 2, 3, 4]},
				{"x": 0, "y": 0, "width": 2, "height": 2, "data": [5, 6, 7, 8]}
			]
		}]
	}`)

	layer := m.Layers[0].(*TileLayer)
	if layer.Cells != nil || len(layer.Chunks) != 2 {
		t.Fatalf("expected 2 chunks and no dense cells, got %d chunks", len(layer.Chunks))
	}
	if cell, ok := layer.TileAt(-1, -1); !ok || cell.GID != 4 {
		t.Errorf("TileAt(-1,-1) = %+v, %v, want GID 4", cell, ok)
	}
	if cell, ok := layer.TileAt(1, 0); !ok || cell.GID != 6 {
		t.Errorf("TileAt(1,0) = %+v, %v, want GID 6", cell, ok)
	}
	if _, ok := layer.TileAt(5, 5); ok {
		t.Error("TileAt(5,5) should miss every chunk")
	}
}

func TestParseMapOverlappingChunks(t *testing.T) {
	_, err := ParseMapBytes(context.Background(), []byte(`{
		"type": "map", "infinite": true,
		"width": 4, "height": 4, "tilewidth": 16, "tileheight": 16,
		"layers": [{
			"type": "tilelayer", "id": 1, "width": 4, "height": 4,
			"chunks": [
				{"x": 0, "y": 0, "width": 2, "height": 2, "data": [1, 2, 3, 4]},
				{"x": 1, "y": 1, "width": 2, "height": 2, "data": [5, 6, 7, 8]}
			]
		}]
	}`), ".")
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError for overlapping chunks", err)
	}
}

func TestParseMapProperties(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"backgroundcolor": "#ff00ff00",
		"properties": [
			{"name": "title", "type": "string", "value": "level one"},
			{"name": "difficulty", "type": "int", "value": 3},
			{"name": "gravity", "type": "float", "value": 9.81},
			{"name": "hardcore", "type": "bool", "value": true},
			{"name": "tint", "type": "color", "value": "#80336699"},
			{"name": "script", "type": "file", "value": "scripts/level1.lua"},
			{"name": "exit", "type": "object", "value": 17},
			{"name": "spawn", "type": "class", "propertytype": "SpawnInfo", "value": {"enabled": true, "label": "north"}}
		],
		"layers": []
	}`)

	if m.BackgroundColor == nil || *m.BackgroundColor != (Color{G: 255, A: 255}) {
		t.Errorf("BackgroundColor = %v", m.BackgroundColor)
	}

	props := m.Properties
	if p := props["title"]; p.Type != PropertyString || p.String != "level one" {
		t.Errorf("title = %+v", p)
	}
	if p := props["difficulty"]; p.Type != PropertyInt || p.Int != 3 {
		t.Errorf("difficulty = %+v", p)
	}
	if p := props["gravity"]; p.Type != PropertyFloat || p.Float != 9.81 {
		t.Errorf("gravity = %+v", p)
	}
	if p := props["hardcore"]; p.Type != PropertyBool || !p.Bool {
		t.Errorf("hardcore = %+v", p)
	}
	if p := props["tint"]; p.Type != PropertyColor || p.Color != (Color{A: 128, R: 51, G: 102, B: 153}) {
		t.Errorf("tint = %+v", p)
	}
	if p := props["script"]; p.Type != PropertyFile || p.File != "scripts/level1.lua" {
		t.Errorf("script = %+v", p)
	}
	if p := props["exit"]; p.Type != PropertyObject || p.Object != 17 {
		t.Errorf("exit = %+v", p)
	}

	spawn := props["spawn"]
	if spawn.Type != PropertyClass || spawn.CustomType != "SpawnInfo" {
		t.Fatalf("spawn = %+v", spawn)
	}
	if p := spawn.Members["enabled"]; p.Type != PropertyBool || !p.Bool {
		t.Errorf("spawn.enabled = %+v", p)
	}
	if p := spawn.Members["label"]; p.Type != PropertyString || p.String != "north" {
		t.Errorf("spawn.label = %+v", p)
	}
}

func TestParseMapGroupLayers(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 1, "height": 1, "tilewidth": 1, "tileheight": 1,
		"layers": [{
			"type": "group", "id": 1, "name": "outer",
			"layers": [
				{"type": "imagelayer", "id": 2, "name": "bg", "image": "bg.png", "repeatx": true},
				{"type": "group", "id": 3, "name": "inner", "layers": [
					{"type": "tilelayer", "id": 4, "width": 1, "height": 1, "data": [0]}
				]}
			]
		}]
	}`)

	outer, ok := m.Layers[0].(*GroupLayer)
	if !ok {
		t.Fatalf("layer is %T, want *GroupLayer", m.Layers[0])
	}
	img, ok := outer.Layers[0].(*ImageLayer)
	if !ok || img.Image != "bg.png" || !img.RepeatX || img.RepeatY {
		t.Errorf("image layer = %+v", outer.Layers[0])
	}
	inner, ok := outer.Layers[1].(*GroupLayer)
	if !ok || len(inner.Layers) != 1 {
		t.Fatalf("inner group = %+v", outer.Layers[1])
	}
	if _, ok := inner.Layers[0].(*TileLayer); !ok {
		t.Errorf("nested layer is %T, want *TileLayer", inner.Layers[0])
	}
}
