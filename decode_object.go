package masume

import "path/filepath"

func (d *decoder) decodeObject(raw *rawObject) (Object, error) {
	if raw.Template != nil {
		return d.decodeTemplateObject(raw)
	}
	return d.decodeObjectValue(raw, nil)
}

// decodeObjectValue dispatches on the shape markers. tplTileset is the
// tileset a template brought along, attached when the object turns out
// to be a tile object.
func (d *decoder) decodeObjectValue(raw *rawObject, tplTileset *Tileset) (Object, error) {
	common, err := d.decodeObjectCommon(raw)
	if err != nil {
		return nil, err
	}
	switch {
	case raw.Ellipse:
		return &Ellipse{ObjectCommon: common}, nil
	case raw.Point:
		return &Point{ObjectCommon: common}, nil
	case raw.GID != nil:
		return &TileObject{ObjectCommon: common, Cell: UnpackGID(*raw.GID), Tileset: tplTileset}, nil
	case raw.Polygon != nil:
		return &Polygon{ObjectCommon: common, Points: toPairs(raw.Polygon)}, nil
	case raw.Polyline != nil:
		return &Polyline{ObjectCommon: common, Points: toPairs(raw.Polyline)}, nil
	case raw.Text != nil:
		return d.decodeText(raw.Text, common)
	default:
		return &Rectangle{ObjectCommon: common}, nil
	}
}

func (d *decoder) decodeObjectCommon(raw *rawObject) (ObjectCommon, error) {
	props, err := d.decodeProperties(raw.Properties)
	if err != nil {
		return ObjectCommon{}, err
	}
	return ObjectCommon{
		ID:   intOr(raw.ID, 0),
		Name: strOr(raw.Name, ""),
		// Older documents call the class "type".
		Class:      strOr(raw.Class, strOr(raw.Type, "")),
		Position:   OrderedPair{X: floatOr(raw.X, 0), Y: floatOr(raw.Y, 0)},
		Size:       Size{Width: floatOr(raw.Width, 0), Height: floatOr(raw.Height, 0)},
		Rotation:   floatOr(raw.Rotation, 0),
		Visible:    boolOr(raw.Visible, true),
		Properties: props,
	}, nil
}

func toPairs(points []rawPoint) []OrderedPair {
	pairs := make([]OrderedPair, len(points))
	for i, p := range points {
		pairs[i] = OrderedPair{X: p.X, Y: p.Y}
	}
	return pairs
}

// Text defaults follow the editor: sans-serif 16px opaque black,
// left/top aligned, kerning enabled.
func (d *decoder) decodeText(raw *rawText, common ObjectCommon) (*Text, error) {
	color := Color{A: 255}
	if raw.Color != nil && *raw.Color != "" {
		c, err := ParseColor(*raw.Color)
		if err != nil {
			return nil, d.structural(err.Error())
		}
		color = c
	}
	return &Text{
		ObjectCommon: common,
		Text:         raw.Text,
		FontFamily:   strOr(raw.FontFamily, "sans-serif"),
		PixelSize:    floatOr(raw.PixelSize, 16),
		Wrap:         boolOr(raw.Wrap, false),
		Color:        color,
		Bold:         boolOr(raw.Bold, false),
		Italic:       boolOr(raw.Italic, false),
		Underline:    boolOr(raw.Underline, false),
		StrikeOut:    boolOr(raw.StrikeOut, false),
		Kerning:      boolOr(raw.Kerning, true),
		HAlign:       strOr(raw.HAlign, "left"),
		VAlign:       strOr(raw.VAlign, "top"),
	}, nil
}

func (d *decoder) decodeTemplateObject(raw *rawObject) (Object, error) {
	path := resolvePath(d.dir, *raw.Template)
	data, err := d.fs.ReadFile(d.ctx, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	format := detectFormat(data)
	if format != d.format {
		return nil, unsupported("cross-format object template",
			"template "+path+" is not in the referencing document's serialization")
	}

	tpl, err := parseRawTemplate(data, path, format)
	if err != nil {
		return nil, err
	}
	if tpl.Object == nil {
		return nil, &StructuralError{Path: path, Reason: "template defines no object"}
	}
	// Template resolution is one level deep.
	if tpl.Object.Template != nil {
		return nil, &StructuralError{Path: path, Reason: "templates must not reference other templates"}
	}

	var tplTileset *Tileset
	if tpl.Tileset != nil {
		if tplTileset, err = d.decodeTemplateTileset(tpl.Tileset, path, format); err != nil {
			return nil, err
		}
	}

	merged := overlayObject(tpl.Object, raw)
	return d.decodeObjectValue(&merged, tplTileset)
}

// decodeTemplateTileset loads the tileset dependency a template
// declares for its tile object. Unlike a map's tileset table, the
// referenced file must be in the same serialization as the template.
func (d *decoder) decodeTemplateTileset(raw *rawTileset, tplPath string, family docFormat) (*Tileset, error) {
	firstGID := uint32(1)
	if raw.FirstGID != nil {
		firstGID = *raw.FirstGID
	}
	tplDir := filepath.Dir(tplPath)

	if raw.Source == nil {
		sub := &decoder{ctx: d.ctx, fs: d.fs, dir: tplDir, path: tplPath, format: family}
		ts, err := sub.decodeTileset(raw, true)
		if err != nil {
			return nil, err
		}
		ts.FirstGID = firstGID
		return ts, nil
	}

	resolved := resolvePath(tplDir, *raw.Source)
	sub := &decoder{ctx: d.ctx, fs: d.fs, dir: tplDir, path: tplPath, format: family}
	ts, tsFormat, err := sub.loadExternalTileset(resolved)
	if err != nil {
		return nil, err
	}
	if tsFormat != family {
		return nil, unsupported("cross-format template tileset",
			"tileset "+resolved+" is not in the template's serialization")
	}
	ts.FirstGID = firstGID
	return ts, nil
}

// overlayObject merges a template object with the instance referencing
// it. Instance fields win wherever both are set; shape markers can be
// added by the instance but not removed.
func overlayObject(base, inst *rawObject) rawObject {
	merged := *base
	merged.Template = nil

	if inst.ID != nil {
		merged.ID = inst.ID
	}
	if inst.Name != nil {
		merged.Name = inst.Name
	}
	if inst.Type != nil {
		merged.Type = inst.Type
	}
	if inst.Class != nil {
		merged.Class = inst.Class
	}
	if inst.X != nil {
		merged.X = inst.X
	}
	if inst.Y != nil {
		merged.Y = inst.Y
	}
	if inst.Width != nil {
		merged.Width = inst.Width
	}
	if inst.Height != nil {
		merged.Height = inst.Height
	}
	if inst.Rotation != nil {
		merged.Rotation = inst.Rotation
	}
	if inst.GID != nil {
		merged.GID = inst.GID
	}
	if inst.Visible != nil {
		merged.Visible = inst.Visible
	}
	if inst.Ellipse {
		merged.Ellipse = true
	}
	if inst.Point {
		merged.Point = true
	}
	if inst.Polygon != nil {
		merged.Polygon = inst.Polygon
	}
	if inst.Polyline != nil {
		merged.Polyline = inst.Polyline
	}
	if inst.Text != nil {
		merged.Text = inst.Text
	}
	merged.Properties = mergeRawProperties(base.Properties, inst.Properties)
	return merged
}

// mergeRawProperties overlays instance properties onto template ones,
// matching by name.
func mergeRawProperties(base, inst []rawProperty) []rawProperty {
	if len(inst) == 0 {
		return base
	}
	if len(base) == 0 {
		return inst
	}
	merged := make([]rawProperty, len(base), len(base)+len(inst))
	copy(merged, base)
	index := make(map[string]int, len(base))
	for i := range merged {
		index[merged[i].Name] = i
	}
	for _, p := range inst {
		if i, ok := index[p.Name]; ok {
			merged[i] = p
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
