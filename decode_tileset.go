package masume

import "path/filepath"

func (d *decoder) decodeTilesetRef(raw *rawTileset) (TilesetRef, error) {
	if raw.FirstGID == nil || *raw.FirstGID == 0 {
		return TilesetRef{}, d.structural("tileset table entry is missing firstgid")
	}
	firstGID := *raw.FirstGID

	if raw.Source == nil {
		ts, err := d.decodeTileset(raw, false)
		if err != nil {
			return TilesetRef{}, err
		}
		ts.FirstGID = firstGID
		return TilesetRef{FirstGID: firstGID, Tileset: ts}, nil
	}

	// Maps may reference tilesets of either serialization; the file
	// content decides, not the map's own format.
	resolved := resolvePath(d.dir, *raw.Source)
	ts, _, err := d.loadExternalTileset(resolved)
	if err != nil {
		return TilesetRef{}, err
	}
	ts.FirstGID = firstGID
	return TilesetRef{FirstGID: firstGID, Source: resolved, Tileset: ts}, nil
}

// loadExternalTileset reads, sniffs and decodes a tileset file. The
// returned format lets template handling enforce its same-family rule.
func (d *decoder) loadExternalTileset(path string) (*Tileset, docFormat, error) {
	data, err := d.fs.ReadFile(d.ctx, path)
	if err != nil {
		return nil, 0, &ReadError{Path: path, Err: err}
	}
	raw, format, err := parseRawTileset(data, path)
	if err != nil {
		return nil, 0, err
	}
	sub := &decoder{ctx: d.ctx, fs: d.fs, dir: filepath.Dir(path), path: path, format: format}
	ts, err := sub.decodeTileset(raw, true)
	return ts, format, err
}

// decodeTileset builds a Tileset from its raw form. external selects
// the path policy: external tilesets resolve image paths against their
// own directory, embedded ones keep paths relative to the map.
func (d *decoder) decodeTileset(raw *rawTileset, external bool) (*Tileset, error) {
	if raw.TileWidth == nil || raw.TileHeight == nil {
		return nil, d.structural("tileset is missing tile dimensions")
	}

	ts := &Tileset{
		Name:            strOr(raw.Name, ""),
		Class:           strOr(raw.Class, ""),
		TileWidth:       *raw.TileWidth,
		TileHeight:      *raw.TileHeight,
		TileCount:       intOr(raw.TileCount, 0),
		Columns:         intOr(raw.Columns, 0),
		Spacing:         intOr(raw.Spacing, 0),
		Margin:          intOr(raw.Margin, 0),
		ObjectAlignment: strOr(raw.ObjectAlignment, "unspecified"),
		TileRenderSize:  strOr(raw.TileRenderSize, TileRenderSizeTile),
		FillMode:        strOr(raw.FillMode, FillModeStretch),
		TiledVersion:    strOr(raw.TiledVersion, ""),
	}
	if raw.Version != nil {
		ts.Version = string(*raw.Version)
	}

	if raw.Image != nil {
		img := *raw.Image
		if external {
			img = resolvePath(d.dir, img)
		}
		ts.Image = img
		ts.ImageWidth = intOr(raw.ImageWidth, 0)
		ts.ImageHeight = intOr(raw.ImageHeight, 0)
	}

	if raw.TileOffset != nil {
		ts.TileOffset = OrderedPair{X: float64(raw.TileOffset.X), Y: float64(raw.TileOffset.Y)}
	}
	if raw.Grid != nil {
		ts.Grid = &Grid{
			Orientation: raw.Grid.Orientation,
			Width:       raw.Grid.Width,
			Height:      raw.Grid.Height,
		}
	}
	if raw.Transformations != nil {
		ts.Transformations = &Transformations{
			HFlip:               boolOr(raw.Transformations.HFlip, false),
			VFlip:               boolOr(raw.Transformations.VFlip, false),
			Rotate:              boolOr(raw.Transformations.Rotate, false),
			PreferUntransformed: boolOr(raw.Transformations.PreferUntransformed, false),
		}
	}

	var err error
	if ts.BackgroundColor, err = d.colorPtr(raw.BackgroundColor); err != nil {
		return nil, err
	}
	if ts.TransparentColor, err = d.colorPtr(raw.TransparentColor); err != nil {
		return nil, err
	}
	if ts.Properties, err = d.decodeProperties(raw.Properties); err != nil {
		return nil, err
	}

	if len(raw.Tiles) > 0 {
		ts.Tiles = make(map[int]*Tile, len(raw.Tiles))
		for i := range raw.Tiles {
			tile, err := d.decodeTile(&raw.Tiles[i], external)
			if err != nil {
				return nil, err
			}
			ts.Tiles[tile.ID] = tile
		}
	}

	for i := range raw.WangSets {
		ws, err := d.decodeWangSet(&raw.WangSets[i])
		if err != nil {
			return nil, err
		}
		ts.WangSets = append(ts.WangSets, ws)
	}
	return ts, nil
}

func (d *decoder) decodeTile(raw *rawTile, external bool) (*Tile, error) {
	tile := &Tile{
		ID: raw.ID,
		// Older documents call the class "type".
		Class:       strOr(raw.Class, strOr(raw.Type, "")),
		Probability: floatOr(raw.Probability, 0),
	}

	if raw.Image != nil {
		img := *raw.Image
		if external {
			img = resolvePath(d.dir, img)
		}
		tile.Image = img
		tile.ImageWidth = intOr(raw.ImageWidth, 0)
		tile.ImageHeight = intOr(raw.ImageHeight, 0)
		// The sub-rectangle defaults to the whole image.
		tile.X = intOr(raw.X, 0)
		tile.Y = intOr(raw.Y, 0)
		tile.Width = intOr(raw.Width, tile.ImageWidth)
		tile.Height = intOr(raw.Height, tile.ImageHeight)
	}

	if len(raw.Animation) > 0 {
		tile.Animation = make([]Frame, len(raw.Animation))
		for i, f := range raw.Animation {
			tile.Animation[i] = Frame{TileID: f.TileID, Duration: f.Duration}
		}
	}

	if raw.ObjectGroup != nil {
		og := *raw.ObjectGroup
		if og.Type == "" {
			og.Type = "objectgroup"
		}
		layer, err := d.decodeLayer(&og)
		if err != nil {
			return nil, err
		}
		objectLayer, ok := layer.(*ObjectLayer)
		if !ok {
			return nil, d.structuralf("tile %d collision data is not an object layer", raw.ID)
		}
		tile.ObjectGroup = objectLayer
	}

	var err error
	if tile.Properties, err = d.decodeProperties(raw.Properties); err != nil {
		return nil, err
	}
	return tile, nil
}

func (d *decoder) decodeWangSet(raw *rawWangSet) (WangSet, error) {
	ws := WangSet{
		Name:  raw.Name,
		Class: strOr(raw.Class, ""),
		Type:  strOr(raw.Type, ""),
		Tile:  intOr(raw.Tile, -1),
	}

	var err error
	if ws.Properties, err = d.decodeProperties(raw.Properties); err != nil {
		return WangSet{}, err
	}

	for i := range raw.Colors {
		rc := &raw.Colors[i]
		color, err := d.colorPtr(rc.Color)
		if err != nil {
			return WangSet{}, err
		}
		wc := WangColor{
			Name:        rc.Name,
			Class:       strOr(rc.Class, ""),
			Tile:        intOr(rc.Tile, -1),
			Probability: floatOr(rc.Probability, 0),
		}
		if color != nil {
			wc.Color = *color
		}
		if wc.Properties, err = d.decodeProperties(rc.Properties); err != nil {
			return WangSet{}, err
		}
		ws.Colors = append(ws.Colors, wc)
	}

	if len(raw.WangTiles) > 0 {
		ws.Tiles = make(map[int]WangTile, len(raw.WangTiles))
		for _, rt := range raw.WangTiles {
			if len(rt.WangID) != 8 {
				return WangSet{}, d.structuralf("wang tile %d has %d wangid entries, expected 8", rt.TileID, len(rt.WangID))
			}
			wt := WangTile{TileID: rt.TileID}
			copy(wt.WangID[:], rt.WangID)
			ws.Tiles[rt.TileID] = wt
		}
	}
	return ws, nil
}
