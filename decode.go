package masume

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/yomogi/masume/source"
)

// decoder turns raw documents into the public model. One decoder is
// scoped to one file: dir anchors relative references, path labels
// errors, format gates cross-format template rules.
type decoder struct {
	ctx    context.Context
	fs     source.FileSystem
	dir    string
	path   string
	format docFormat
}

func (d *decoder) structural(reason string) error {
	return &StructuralError{Path: d.path, Reason: reason}
}

func (d *decoder) structuralf(format string, args ...any) error {
	return &StructuralError{Path: d.path, Reason: fmt.Sprintf(format, args...)}
}

// located stamps the decoder's file path onto structural errors raised
// by helpers that have no file context of their own.
func (d *decoder) located(err error) error {
	var se *StructuralError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = d.path
	}
	return err
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

// colorPtr parses an optional color attribute; nil or empty means the
// color is unset.
func (d *decoder) colorPtr(s *string) (*Color, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	c, err := ParseColor(*s)
	if err != nil {
		return nil, d.structural(err.Error())
	}
	return &c, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func (d *decoder) decodeProperties(raws []rawProperty) (Properties, error) {
	if raws == nil {
		return nil, nil
	}
	props := make(Properties, len(raws))
	for i := range raws {
		p, err := d.decodeProperty(&raws[i])
		if err != nil {
			return nil, err
		}
		props[raws[i].Name] = p
	}
	return props, nil
}

func (d *decoder) decodeProperty(raw *rawProperty) (Property, error) {
	badValue := func() (Property, error) {
		return Property{}, d.structuralf("property %q has a value incompatible with type %q", raw.Name, raw.Type)
	}

	switch raw.Type {
	case "", "string":
		s, ok := raw.Value.(string)
		if raw.Value != nil && !ok {
			return badValue()
		}
		return Property{Type: PropertyString, String: s}, nil

	case "int":
		n, ok := asInt64(raw.Value)
		if !ok {
			return badValue()
		}
		return Property{Type: PropertyInt, Int: n}, nil

	case "float":
		f, ok := asFloat64(raw.Value)
		if !ok {
			return badValue()
		}
		return Property{Type: PropertyFloat, Float: f}, nil

	case "bool":
		b, ok := raw.Value.(bool)
		if !ok {
			return badValue()
		}
		return Property{Type: PropertyBool, Bool: b}, nil

	case "file":
		s, ok := raw.Value.(string)
		if raw.Value != nil && !ok {
			return badValue()
		}
		return Property{Type: PropertyFile, File: s}, nil

	case "color":
		s, ok := raw.Value.(string)
		if raw.Value != nil && !ok {
			return badValue()
		}
		p := Property{Type: PropertyColor}
		if s != "" {
			c, err := ParseColor(s)
			if err != nil {
				return Property{}, d.structural(err.Error())
			}
			p.Color = c
		}
		return p, nil

	case "object":
		n, ok := asInt64(raw.Value)
		if !ok {
			return badValue()
		}
		return Property{Type: PropertyObject, Object: int(n)}, nil

	case "class":
		p := Property{Type: PropertyClass, CustomType: raw.CustomType}
		switch {
		case raw.Members != nil:
			members, err := d.decodeProperties(raw.Members)
			if err != nil {
				return Property{}, err
			}
			p.Members = members
		case raw.Value != nil:
			m, ok := raw.Value.(map[string]any)
			if !ok {
				return badValue()
			}
			members, err := d.inferClassMembers(m)
			if err != nil {
				return Property{}, err
			}
			p.Members = members
		}
		return p, nil

	default:
		// Future property types degrade to their string form instead of
		// failing the whole document.
		if s, ok := raw.Value.(string); ok {
			return Property{Type: PropertyString, String: s}, nil
		}
		return Property{}, d.structuralf("property %q has unknown type %q", raw.Name, raw.Type)
	}
}

// inferClassMembers rebuilds class members from a JSON value object,
// where member types are only visible through JSON's own types. All
// numbers come back as float properties; the editor's int members are
// indistinguishable here.
func (d *decoder) inferClassMembers(m map[string]any) (Properties, error) {
	props := make(Properties, len(m))
	for name, v := range m {
		switch val := v.(type) {
		case string:
			props[name] = Property{Type: PropertyString, String: val}
		case bool:
			props[name] = Property{Type: PropertyBool, Bool: val}
		case float64:
			props[name] = Property{Type: PropertyFloat, Float: val}
		case map[string]any:
			members, err := d.inferClassMembers(val)
			if err != nil {
				return nil, err
			}
			props[name] = Property{Type: PropertyClass, Members: members}
		default:
			return nil, d.structuralf("class member %q has unsupported value %T", name, v)
		}
	}
	return props, nil
}

func (d *decoder) decodeLayerCommon(raw *rawLayer) (LayerCommon, error) {
	props, err := d.decodeProperties(raw.Properties)
	if err != nil {
		return LayerCommon{}, err
	}
	tint, err := d.colorPtr(raw.TintColor)
	if err != nil {
		return LayerCommon{}, err
	}
	opacity := floatOr(raw.Opacity, 1)
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return LayerCommon{
		Name:           strOr(raw.Name, ""),
		ID:             intOr(raw.ID, 0),
		Class:          strOr(raw.Class, ""),
		Visible:        boolOr(raw.Visible, true),
		Opacity:        opacity,
		Offset:         OrderedPair{X: floatOr(raw.OffsetX, 0), Y: floatOr(raw.OffsetY, 0)},
		ParallaxFactor: OrderedPair{X: floatOr(raw.ParallaxX, 1), Y: floatOr(raw.ParallaxY, 1)},
		TintColor:      tint,
		RepeatX:        boolOr(raw.RepeatX, false),
		RepeatY:        boolOr(raw.RepeatY, false),
		Properties:     props,
	}, nil
}

func (d *decoder) decodeLayer(raw *rawLayer) (Layer, error) {
	common, err := d.decodeLayerCommon(raw)
	if err != nil {
		return nil, err
	}
	switch raw.Type {
	case "tilelayer":
		return d.decodeTileLayer(raw, common)
	case "objectgroup":
		return d.decodeObjectLayer(raw, common)
	case "imagelayer":
		return d.decodeImageLayer(raw, common)
	case "group":
		return d.decodeGroupLayer(raw, common)
	default:
		return nil, d.structuralf("unknown layer type %q", raw.Type)
	}
}

func (d *decoder) decodeTileLayer(raw *rawLayer, common LayerCommon) (*TileLayer, error) {
	width := intOr(raw.Width, 0)
	height := intOr(raw.Height, 0)
	if width <= 0 || height <= 0 {
		return nil, d.structuralf("tile layer %q is missing its size", common.Name)
	}
	layer := &TileLayer{LayerCommon: common, Width: width, Height: height}

	encoding := strOr(raw.Encoding, "")
	comp := strOr(raw.Compression, "")

	if len(raw.Chunks) > 0 {
		layer.Chunks = make([]Chunk, 0, len(raw.Chunks))
		for i := range raw.Chunks {
			rc := &raw.Chunks[i]
			cells, err := decodeTileData(rc.Data, encoding, comp, rc.Width, rc.Height)
			if err != nil {
				return nil, d.located(err)
			}
			chunk := Chunk{X: rc.X, Y: rc.Y, Width: rc.Width, Height: rc.Height, Cells: cells}
			for j := range layer.Chunks {
				if chunksOverlap(&layer.Chunks[j], &chunk) {
					return nil, d.structuralf("tile layer %q has overlapping chunks", common.Name)
				}
			}
			layer.Chunks = append(layer.Chunks, chunk)
		}
		return layer, nil
	}

	cells, err := decodeTileData(raw.Data, encoding, comp, width, height)
	if err != nil {
		return nil, d.located(err)
	}
	layer.Cells = cells
	return layer, nil
}

func chunksOverlap(a, b *Chunk) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func (d *decoder) decodeObjectLayer(raw *rawLayer, common LayerCommon) (*ObjectLayer, error) {
	color, err := d.colorPtr(raw.Color)
	if err != nil {
		return nil, err
	}
	layer := &ObjectLayer{
		LayerCommon: common,
		// Objects stay in authored order even for draworder "index";
		// sorting by ID is the consumer's call.
		DrawOrder: strOr(raw.DrawOrder, "topdown"),
		Color:     color,
	}
	for i := range raw.Objects {
		obj, err := d.decodeObject(&raw.Objects[i])
		if err != nil {
			return nil, err
		}
		layer.Objects = append(layer.Objects, obj)
	}
	return layer, nil
}

func (d *decoder) decodeImageLayer(raw *rawLayer, common LayerCommon) (*ImageLayer, error) {
	if raw.Image == nil {
		return nil, d.structuralf("image layer %q has no image", common.Name)
	}
	trans, err := d.colorPtr(raw.TransparentColor)
	if err != nil {
		return nil, err
	}
	// Image layer paths stay relative to the map file, like embedded
	// tileset images.
	return &ImageLayer{LayerCommon: common, Image: *raw.Image, TransparentColor: trans}, nil
}

func (d *decoder) decodeGroupLayer(raw *rawLayer, common LayerCommon) (*GroupLayer, error) {
	layer := &GroupLayer{LayerCommon: common}
	for i := range raw.Layers {
		child, err := d.decodeLayer(&raw.Layers[i])
		if err != nil {
			return nil, err
		}
		layer.Layers = append(layer.Layers, child)
	}
	return layer, nil
}

func (d *decoder) decodeMap(raw *rawMap) (*Map, error) {
	if raw.Width == nil || raw.Height == nil || raw.TileWidth == nil || raw.TileHeight == nil {
		return nil, d.structural("map is missing size attributes")
	}

	m := &Map{
		TiledVersion:   strOr(raw.TiledVersion, ""),
		Class:          strOr(raw.Class, ""),
		Orientation:    strOr(raw.Orientation, "orthogonal"),
		RenderOrder:    strOr(raw.RenderOrder, "right-down"),
		Infinite:       boolOr(raw.Infinite, false),
		MapSize:        Size{Width: float64(*raw.Width), Height: float64(*raw.Height)},
		TileSize:       Size{Width: float64(*raw.TileWidth), Height: float64(*raw.TileHeight)},
		HexSideLength:  intOr(raw.HexSideLength, 0),
		StaggerAxis:    strOr(raw.StaggerAxis, ""),
		StaggerIndex:   strOr(raw.StaggerIndex, ""),
		ParallaxOrigin: OrderedPair{X: floatOr(raw.ParallaxOriginX, 0), Y: floatOr(raw.ParallaxOriginY, 0)},
		NextLayerID:    intOr(raw.NextLayerID, 0),
		NextObjectID:   intOr(raw.NextObjectID, 0),
	}
	if raw.Version != nil {
		m.Version = string(*raw.Version)
	}

	bg, err := d.colorPtr(raw.BackgroundColor)
	if err != nil {
		return nil, err
	}
	m.BackgroundColor = bg

	if m.Properties, err = d.decodeProperties(raw.Properties); err != nil {
		return nil, err
	}

	var lastFirstGID uint32
	for i := range raw.Tilesets {
		ref, err := d.decodeTilesetRef(&raw.Tilesets[i])
		if err != nil {
			return nil, err
		}
		if i > 0 && ref.FirstGID <= lastFirstGID {
			return nil, d.structuralf("tileset first GIDs must be strictly increasing: %d after %d", ref.FirstGID, lastFirstGID)
		}
		lastFirstGID = ref.FirstGID
		m.Tilesets = append(m.Tilesets, ref)
	}

	for i := range raw.Layers {
		layer, err := d.decodeLayer(&raw.Layers[i])
		if err != nil {
			return nil, err
		}
		m.Layers = append(m.Layers, layer)
	}
	return m, nil
}

func (d *decoder) decodeWorld(raw *rawWorld) (*World, error) {
	w := &World{OnlyShowAdjacent: raw.OnlyShowAdjacent}

	for i := range raw.Maps {
		rm := &raw.Maps[i]
		if rm.FileName == "" {
			return nil, d.structural("world map entry is missing its fileName")
		}
		wm := WorldMap{
			FileName: resolvePath(d.dir, rm.FileName),
			Position: OrderedPair{X: rm.X, Y: rm.Y},
		}
		if rm.Width != nil && rm.Height != nil {
			wm.Size = &Size{Width: *rm.Width, Height: *rm.Height}
		}
		w.Maps = append(w.Maps, wm)
	}

	for i := range raw.Patterns {
		maps, err := d.expandWorldPattern(&raw.Patterns[i])
		if err != nil {
			return nil, err
		}
		w.Maps = append(w.Maps, maps...)
	}
	return w, nil
}

// expandWorldPattern matches the pattern's regexp against the files
// next to the world file. The two capture groups are grid indices;
// positions come out as index*multiplier + offset. Sizes stay nil, the
// caller resolves them by opening the maps.
func (d *decoder) expandWorldPattern(p *rawWorldPattern) ([]WorldMap, error) {
	re, err := regexp.Compile(p.RegExp)
	if err != nil {
		return nil, d.structuralf("invalid world pattern regexp %q: %v", p.RegExp, err)
	}
	names, err := d.fs.ReadDir(d.ctx, d.dir)
	if err != nil {
		return nil, &ReadError{Path: d.dir, Err: err}
	}

	var maps []WorldMap
	for _, name := range names {
		m := re.FindStringSubmatch(name)
		if m == nil || len(m) < 3 {
			continue
		}
		xi, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		yi, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		maps = append(maps, WorldMap{
			FileName: resolvePath(d.dir, name),
			Position: OrderedPair{
				X: float64(xi)*p.MultiplierX + p.OffsetX,
				Y: float64(yi)*p.MultiplierY + p.OffsetY,
			},
		})
	}
	return maps, nil
}
