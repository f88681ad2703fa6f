package masume

import (
	"context"
	"errors"
	"testing"

	"github.com/yomogi/masume/source/mem"
)

func TestParseTilesetBytesDefaults(t *testing.T) {
	ts, err := ParseTilesetBytes(context.Background(), []byte(`{
		"type": "tileset", "version": "1.10", "name": "terrain",
		"tilewidth": 16, "tileheight": 16, "tilecount": 4, "columns": 2,
		"image": "terrain.png", "imagewidth": 32, "imageheight": 32
	}`), "/tilesets", 0)
	if err != nil {
		t.Fatalf("ParseTilesetBytes error: %v", err)
	}

	if ts.Name != "terrain" || ts.TileCount != 4 || ts.Columns != 2 {
		t.Errorf("tileset = %+v", ts)
	}
	if ts.FirstGID != 0 {
		t.Errorf("FirstGID = %d, want 0 for standalone parse", ts.FirstGID)
	}
	if ts.Image != "/tilesets/terrain.png" {
		t.Errorf("Image = %q, want it resolved against the tileset directory", ts.Image)
	}
	if ts.TileRenderSize != TileRenderSizeTile {
		t.Errorf("TileRenderSize = %q, want %q", ts.TileRenderSize, TileRenderSizeTile)
	}
	if ts.FillMode != FillModeStretch {
		t.Errorf("FillMode = %q, want %q", ts.FillMode, FillModeStretch)
	}
	if ts.ObjectAlignment != "unspecified" {
		t.Errorf("ObjectAlignment = %q, want unspecified", ts.ObjectAlignment)
	}
	if ts.Spacing != 0 || ts.Margin != 0 {
		t.Errorf("spacing/margin = %d/%d, want 0/0", ts.Spacing, ts.Margin)
	}
}

func TestParseTilesetXML(t *testing.T) {
	ts, err := ParseTilesetBytes(context.Background(), []byte(`<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
 <tileoffset x="4" y="-2"/>
 <grid orientation="isometric" width="32" height="16"/>
 <transformations hflip="1" vflip="0" rotate="1" preferuntransformed="0"/>
 <image source="terrain.png" width="32" height="32" trans="ff00ff"/>
 <tile id="2" class="water" probability="0.5">
  <animation>
   <frame tileid="2" duration="100"/>
   <frame tileid="3" duration="150"/>
  </animation>
  <objectgroup id="1" draworder="index">
   <object id="1" x="0" y="0" width="16" height="8"/>
  </objectgroup>
  <properties>
   <property name="depth" type="int" value="3"/>
  </properties>
 </tile>
 <wangsets>
  <wangset name="terrain" type="corner" tile="-1">
   <wangcolor name="grass" color="#00ff00" tile="0" probability="1"/>
   <wangcolor name="water" color="#0000ff" tile="2" probability="1"/>
   <wangtile tileid="0" wangid="0,1,0,1,0,1,0,1"/>
   <wangtile tileid="2" wangid="0,2,0,2,0,2,0,2"/>
  </wangset>
 </wangsets>
</tileset>`), "/tilesets", 0)
	if err != nil {
		t.Fatalf("ParseTilesetBytes error: %v", err)
	}

	if ts.TileOffset != (OrderedPair{X: 4, Y: -2}) {
		t.Errorf("TileOffset = %+v", ts.TileOffset)
	}
	if ts.Grid == nil || ts.Grid.Orientation != "isometric" || ts.Grid.Width != 32 {
		t.Errorf("Grid = %+v", ts.Grid)
	}
	if ts.Transformations == nil || !ts.Transformations.HFlip || ts.Transformations.VFlip || !ts.Transformations.Rotate {
		t.Errorf("Transformations = %+v", ts.Transformations)
	}
	if ts.TransparentColor == nil || *ts.TransparentColor != (Color{R: 255, B: 255, A: 255}) {
		t.Errorf("TransparentColor = %v", ts.TransparentColor)
	}

	tile, ok := ts.Tile(2)
	if !ok {
		t.Fatal("tile 2 has no override record")
	}
	if tile.Class != "water" || tile.Probability != 0.5 {
		t.Errorf("tile = %+v", tile)
	}
	if len(tile.Animation) != 2 || tile.Animation[1] != (Frame{TileID: 3, Duration: 150}) {
		t.Errorf("Animation = %+v", tile.Animation)
	}
	if tile.ObjectGroup == nil || len(tile.ObjectGroup.Objects) != 1 {
		t.Fatalf("ObjectGroup = %+v", tile.ObjectGroup)
	}
	if _, ok := tile.ObjectGroup.Objects[0].(*Rectangle); !ok {
		t.Errorf("collision shape is %T, want *Rectangle", tile.ObjectGroup.Objects[0])
	}
	if p := tile.Properties["depth"]; p.Type != PropertyInt || p.Int != 3 {
		t.Errorf("depth = %+v", p)
	}
	if _, ok := ts.Tile(0); ok {
		t.Error("tile 0 should have no override record")
	}

	if len(ts.WangSets) != 1 {
		t.Fatalf("WangSets = %+v", ts.WangSets)
	}
	ws := ts.WangSets[0]
	if ws.Type != "corner" || ws.Tile != -1 || len(ws.Colors) != 2 {
		t.Errorf("wang set = %+v", ws)
	}
	if ws.Colors[1].Name != "water" || ws.Colors[1].Color != (Color{B: 255, A: 255}) {
		t.Errorf("wang color = %+v", ws.Colors[1])
	}
	wt, ok := ws.Tiles[2]
	if !ok || wt.WangID != [8]int{0, 2, 0, 2, 0, 2, 0, 2} {
		t.Errorf("wang tile 2 = %+v, %v", wt, ok)
	}
}

func TestWangIDLength(t *testing.T) {
	_, err := ParseTilesetBytes(context.Background(), []byte(`{
		"type": "tileset", "name": "t", "tilewidth": 16, "tileheight": 16,
		"wangsets": [{"name": "w", "type": "corner", "tile": -1,
			"wangtiles": [{"tileid": 0, "wangid": [1, 2, 3]}]}]
	}`), ".", 0)
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError for short wangid", err)
	}
}

func TestImageCollectionTileset(t *testing.T) {
	ts, err := ParseTilesetBytes(context.Background(), []byte(`{
		"type": "tileset", "name": "props", "tilewidth": 16, "tileheight": 16,
		"tilecount": 2, "columns": 0,
		"tiles": [
			{"id": 0, "image": "door.png", "imagewidth": 32, "imageheight": 48},
			{"id": 1, "image": "window.png", "imagewidth": 24, "imageheight": 24,
			 "x": 4, "y": 4, "width": 16, "height": 16}
		]
	}`), "/tilesets", 0)
	if err != nil {
		t.Fatalf("ParseTilesetBytes error: %v", err)
	}

	if ts.Image != "" || ts.Columns != 0 {
		t.Errorf("collection tileset should have no atlas: %+v", ts)
	}

	door, _ := ts.Tile(0)
	if door.Image != "/tilesets/door.png" {
		t.Errorf("door image = %q", door.Image)
	}
	if door.X != 0 || door.Y != 0 || door.Width != 32 || door.Height != 48 {
		t.Errorf("door rect = (%d,%d %dx%d), want full image", door.X, door.Y, door.Width, door.Height)
	}

	window, _ := ts.Tile(1)
	if window.X != 4 || window.Y != 4 || window.Width != 16 || window.Height != 16 {
		t.Errorf("window rect = (%d,%d %dx%d)", window.X, window.Y, window.Width, window.Height)
	}
}

func TestExternalTilesetFromMap(t *testing.T) {
	fsys := mem.New(map[string][]byte{
		"/maps/level.tmj": []byte(`{
			"type": "map", "width": 1, "height": 1, "tilewidth": 16, "tileheight": 16,
			"tilesets": [{"firstgid": 1, "source": "../tilesets/terrain.tsx"}],
			"layers": [{"type": "tilelayer", "id": 1, "width": 1, "height": 1, "data": [1]}]
		}`),
		"/tilesets/terrain.tsx": []byte(`<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
 <image source="terrain.png" width="32" height="32"/>
</tileset>`),
	})

	m, err := ParseMap(context.Background(), "/maps/level.tmj", WithFileSystem(fsys))
	if err != nil {
		t.Fatalf("ParseMap error: %v", err)
	}

	ref := m.Tilesets[0]
	if ref.Source != "/tilesets/terrain.tsx" {
		t.Errorf("Source = %q, want resolved path", ref.Source)
	}
	if ref.Tileset.FirstGID != 1 {
		t.Errorf("FirstGID = %d, want the map's 1", ref.Tileset.FirstGID)
	}
	if ref.Tileset.Image != "/tilesets/terrain.png" {
		t.Errorf("Image = %q, want it anchored at the tileset's directory", ref.Tileset.Image)
	}

	layer := m.Layers[0].(*TileLayer)
	tileset, local, ok := m.TilesetFor(layer.Cells[0])
	if !ok || tileset.Name != "terrain" || local != 0 {
		t.Errorf("TilesetFor = %v, %d, %v", tileset, local, ok)
	}
}

func TestEmbeddedTilesetImageStaysRelative(t *testing.T) {
	m := parseMapString(t, `{
		"type": "map", "width": 1, "height": 1, "tilewidth": 16, "tileheight": 16,
		"tilesets": [{
			"firstgid": 1, "name": "terrain", "tilewidth": 16, "tileheight": 16,
			"image": "art/terrain.png", "imagewidth": 32, "imageheight": 32
		}],
		"layers": []
	}`)
	if got := m.Tilesets[0].Tileset.Image; got != "art/terrain.png" {
		t.Errorf("embedded tileset image = %q, want it kept map-relative", got)
	}
}

func TestParseTilesetMissingDimensions(t *testing.T) {
	_, err := ParseTilesetBytes(context.Background(), []byte(`{"type": "tileset", "name": "t"}`), ".", 0)
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want StructuralError", err)
	}
}
