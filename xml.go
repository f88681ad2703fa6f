package masume

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// The XML structs decode TMX-family documents and normalize into the
// raw schema via toRaw methods, so the decode pass never needs to know
// which serialization a document arrived in. Boolean attributes are
// written as "0"/"1" in TMX; strconv.ParseBool accepts both, so *bool
// attribute fields decode directly.

type xmlProperties struct {
	Properties []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	CustomType string         `xml:"propertytype,attr"`
	Value      *string        `xml:"value,attr"`
	Inner      string         `xml:",chardata"`
	Members    *xmlProperties `xml:"properties"`
}

func (ps *xmlProperties) toRaw() ([]rawProperty, error) {
	if ps == nil {
		return nil, nil
	}
	raws := make([]rawProperty, 0, len(ps.Properties))
	for i := range ps.Properties {
		raw, err := ps.Properties[i].toRaw()
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func (p *xmlProperty) toRaw() (rawProperty, error) {
	raw := rawProperty{Name: p.Name, Type: p.Type, CustomType: p.CustomType}

	// Multiline string values are stored as element text instead of a
	// value attribute.
	text := ""
	if p.Value != nil {
		text = *p.Value
	} else {
		text = p.Inner
	}

	switch p.Type {
	case "", "string", "file", "color":
		raw.Value = text
	case "int", "object":
		if text == "" {
			raw.Value = int64(0)
			break
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return raw, fmt.Errorf("property %q: invalid int value %q", p.Name, text)
		}
		raw.Value = n
	case "float":
		if text == "" {
			raw.Value = float64(0)
			break
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return raw, fmt.Errorf("property %q: invalid float value %q", p.Name, text)
		}
		raw.Value = f
	case "bool":
		b, err := strconv.ParseBool(text)
		if err != nil {
			return raw, fmt.Errorf("property %q: invalid bool value %q", p.Name, text)
		}
		raw.Value = b
	case "class":
		members, err := p.Members.toRaw()
		if err != nil {
			return raw, err
		}
		raw.Members = members
	default:
		raw.Value = text
	}
	return raw, nil
}

type xmlImage struct {
	Source string  `xml:"source,attr"`
	Width  *int    `xml:"width,attr"`
	Height *int    `xml:"height,attr"`
	Trans  *string `xml:"trans,attr"`
}

type xmlDataTile struct {
	GID uint32 `xml:"gid,attr"`
}

type xmlChunk struct {
	X      int           `xml:"x,attr"`
	Y      int           `xml:"y,attr"`
	Width  int           `xml:"width,attr"`
	Height int           `xml:"height,attr"`
	Tiles  []xmlDataTile `xml:"tile"`
	Text   string        `xml:",chardata"`
}

type xmlData struct {
	Encoding    *string       `xml:"encoding,attr"`
	Compression *string       `xml:"compression,attr"`
	Chunks      []xmlChunk    `xml:"chunk"`
	Tiles       []xmlDataTile `xml:"tile"`
	Text        string        `xml:",chardata"`
}

func dataTilesToInts(tiles []xmlDataTile) []uint32 {
	ints := make([]uint32, len(tiles))
	for i, t := range tiles {
		ints[i] = t.GID
	}
	return ints
}

// Common layer attributes shared by all four layer kinds.
type xmlLayerAttrs struct {
	Name      *string  `xml:"name,attr"`
	ID        *int     `xml:"id,attr"`
	Class     *string  `xml:"class,attr"`
	Opacity   *float64 `xml:"opacity,attr"`
	Visible   *bool    `xml:"visible,attr"`
	OffsetX   *float64 `xml:"offsetx,attr"`
	OffsetY   *float64 `xml:"offsety,attr"`
	ParallaxX *float64 `xml:"parallaxx,attr"`
	ParallaxY *float64 `xml:"parallaxy,attr"`
	TintColor *string  `xml:"tintcolor,attr"`
}

func (a *xmlLayerAttrs) fill(raw *rawLayer) {
	raw.Name = a.Name
	raw.ID = a.ID
	raw.Class = a.Class
	raw.Opacity = a.Opacity
	raw.Visible = a.Visible
	raw.OffsetX = a.OffsetX
	raw.OffsetY = a.OffsetY
	raw.ParallaxX = a.ParallaxX
	raw.ParallaxY = a.ParallaxY
	raw.TintColor = a.TintColor
}

type xmlTileLayer struct {
	xmlLayerAttrs
	Width      *int           `xml:"width,attr"`
	Height     *int           `xml:"height,attr"`
	Properties *xmlProperties `xml:"properties"`
	Data       *xmlData       `xml:"data"`
}

func (l *xmlTileLayer) toRaw() (rawLayer, error) {
	raw := rawLayer{Type: "tilelayer", Width: l.Width, Height: l.Height}
	l.fill(&raw)
	props, err := l.Properties.toRaw()
	if err != nil {
		return raw, err
	}
	raw.Properties = props
	if l.Data == nil {
		return raw, nil
	}
	raw.Encoding = l.Data.Encoding
	raw.Compression = l.Data.Compression
	switch {
	case len(l.Data.Chunks) > 0:
		raw.Chunks = make([]rawChunk, len(l.Data.Chunks))
		for i, c := range l.Data.Chunks {
			raw.Chunks[i] = rawChunk{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
			if len(c.Tiles) > 0 {
				raw.Chunks[i].Data = &rawData{ints: dataTilesToInts(c.Tiles)}
			} else {
				raw.Chunks[i].Data = &rawData{text: c.Text}
			}
		}
	case len(l.Data.Tiles) > 0:
		raw.Data = &rawData{ints: dataTilesToInts(l.Data.Tiles)}
	default:
		raw.Data = &rawData{text: l.Data.Text}
	}
	return raw, nil
}

type xmlText struct {
	FontFamily *string  `xml:"fontfamily,attr"`
	PixelSize  *float64 `xml:"pixelsize,attr"`
	Wrap       *bool    `xml:"wrap,attr"`
	Color      *string  `xml:"color,attr"`
	Bold       *bool    `xml:"bold,attr"`
	Italic     *bool    `xml:"italic,attr"`
	Underline  *bool    `xml:"underline,attr"`
	StrikeOut  *bool    `xml:"strikeout,attr"`
	Kerning    *bool    `xml:"kerning,attr"`
	HAlign     *string  `xml:"halign,attr"`
	VAlign     *string  `xml:"valign,attr"`
	Text       string   `xml:",chardata"`
}

type xmlPoints struct {
	Points string `xml:"points,attr"`
}

func (p *xmlPoints) toRaw() ([]rawPoint, error) {
	pairs := strings.Fields(p.Points)
	points := make([]rawPoint, 0, len(pairs))
	for _, pair := range pairs {
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q", pair)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q", pair)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q", pair)
		}
		points = append(points, rawPoint{X: x, Y: y})
	}
	return points, nil
}

type xmlObject struct {
	ID       *int     `xml:"id,attr"`
	Name     *string  `xml:"name,attr"`
	Type     *string  `xml:"type,attr"`
	Class    *string  `xml:"class,attr"`
	Template *string  `xml:"template,attr"`
	GID      *uint32  `xml:"gid,attr"`
	X        *float64 `xml:"x,attr"`
	Y        *float64 `xml:"y,attr"`
	Width    *float64 `xml:"width,attr"`
	Height   *float64 `xml:"height,attr"`
	Rotation *float64 `xml:"rotation,attr"`
	Visible  *bool    `xml:"visible,attr"`

	Ellipse  *struct{}      `xml:"ellipse"`
	Point    *struct{}      `xml:"point"`
	Polygon  *xmlPoints     `xml:"polygon"`
	Polyline *xmlPoints     `xml:"polyline"`
	Text     *xmlText       `xml:"text"`
	Props    *xmlProperties `xml:"properties"`
}

func (o *xmlObject) toRaw() (rawObject, error) {
	raw := rawObject{
		ID:       o.ID,
		Name:     o.Name,
		Type:     o.Type,
		Class:    o.Class,
		Template: o.Template,
		GID:      o.GID,
		X:        o.X,
		Y:        o.Y,
		Width:    o.Width,
		Height:   o.Height,
		Rotation: o.Rotation,
		Visible:  o.Visible,
		Ellipse:  o.Ellipse != nil,
		Point:    o.Point != nil,
	}
	var err error
	if o.Polygon != nil {
		if raw.Polygon, err = o.Polygon.toRaw(); err != nil {
			return raw, err
		}
		if raw.Polygon == nil {
			raw.Polygon = []rawPoint{}
		}
	}
	if o.Polyline != nil {
		if raw.Polyline, err = o.Polyline.toRaw(); err != nil {
			return raw, err
		}
		if raw.Polyline == nil {
			raw.Polyline = []rawPoint{}
		}
	}
	if o.Text != nil {
		raw.Text = &rawText{
			Text:       o.Text.Text,
			FontFamily: o.Text.FontFamily,
			PixelSize:  o.Text.PixelSize,
			Wrap:       o.Text.Wrap,
			Color:      o.Text.Color,
			Bold:       o.Text.Bold,
			Italic:     o.Text.Italic,
			Underline:  o.Text.Underline,
			StrikeOut:  o.Text.StrikeOut,
			Kerning:    o.Text.Kerning,
			HAlign:     o.Text.HAlign,
			VAlign:     o.Text.VAlign,
		}
	}
	if raw.Properties, err = o.Props.toRaw(); err != nil {
		return raw, err
	}
	return raw, nil
}

type xmlObjectLayer struct {
	xmlLayerAttrs
	Color      *string        `xml:"color,attr"`
	DrawOrder  *string        `xml:"draworder,attr"`
	Properties *xmlProperties `xml:"properties"`
	Objects    []xmlObject    `xml:"object"`
}

func (l *xmlObjectLayer) toRaw() (rawLayer, error) {
	raw := rawLayer{Type: "objectgroup", Color: l.Color, DrawOrder: l.DrawOrder}
	l.fill(&raw)
	props, err := l.Properties.toRaw()
	if err != nil {
		return raw, err
	}
	raw.Properties = props
	raw.Objects = make([]rawObject, 0, len(l.Objects))
	for i := range l.Objects {
		obj, err := l.Objects[i].toRaw()
		if err != nil {
			return raw, err
		}
		raw.Objects = append(raw.Objects, obj)
	}
	return raw, nil
}

type xmlImageLayer struct {
	xmlLayerAttrs
	RepeatX    *bool          `xml:"repeatx,attr"`
	RepeatY    *bool          `xml:"repeaty,attr"`
	Image      *xmlImage      `xml:"image"`
	Properties *xmlProperties `xml:"properties"`
}

func (l *xmlImageLayer) toRaw() (rawLayer, error) {
	raw := rawLayer{Type: "imagelayer", RepeatX: l.RepeatX, RepeatY: l.RepeatY}
	l.fill(&raw)
	props, err := l.Properties.toRaw()
	if err != nil {
		return raw, err
	}
	raw.Properties = props
	if l.Image != nil {
		src := l.Image.Source
		raw.Image = &src
		raw.TransparentColor = l.Image.Trans
	}
	return raw, nil
}

type xmlGroupLayer struct {
	xmlLayerAttrs
	Properties *xmlProperties  `xml:"properties"`
	Children   []xmlLayerChild `xml:",any"`
}

func (l *xmlGroupLayer) toRaw() (rawLayer, error) {
	raw := rawLayer{Type: "group"}
	l.fill(&raw)
	props, err := l.Properties.toRaw()
	if err != nil {
		return raw, err
	}
	raw.Properties = props
	if raw.Layers, err = layerChildrenToRaw(l.Children); err != nil {
		return raw, err
	}
	return raw, nil
}

// xmlLayerChild decodes any of the four layer elements while keeping
// document order, which a per-kind slice field would lose. Elements
// that are not layers are skipped.
type xmlLayerChild struct {
	tile   *xmlTileLayer
	object *xmlObjectLayer
	image  *xmlImageLayer
	group  *xmlGroupLayer
}

func (c *xmlLayerChild) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	switch start.Name.Local {
	case "layer":
		c.tile = new(xmlTileLayer)
		return d.DecodeElement(c.tile, &start)
	case "objectgroup":
		c.object = new(xmlObjectLayer)
		return d.DecodeElement(c.object, &start)
	case "imagelayer":
		c.image = new(xmlImageLayer)
		return d.DecodeElement(c.image, &start)
	case "group":
		c.group = new(xmlGroupLayer)
		return d.DecodeElement(c.group, &start)
	default:
		return d.Skip()
	}
}

func layerChildrenToRaw(children []xmlLayerChild) ([]rawLayer, error) {
	var layers []rawLayer
	for i := range children {
		c := &children[i]
		var (
			raw rawLayer
			err error
		)
		switch {
		case c.tile != nil:
			raw, err = c.tile.toRaw()
		case c.object != nil:
			raw, err = c.object.toRaw()
		case c.image != nil:
			raw, err = c.image.toRaw()
		case c.group != nil:
			raw, err = c.group.toRaw()
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		layers = append(layers, raw)
	}
	return layers, nil
}

type xmlFrame struct {
	TileID   int `xml:"tileid,attr"`
	Duration int `xml:"duration,attr"`
}

type xmlAnimation struct {
	Frames []xmlFrame `xml:"frame"`
}

type xmlTilesetTile struct {
	ID          int             `xml:"id,attr"`
	Type        *string         `xml:"type,attr"`
	Class       *string         `xml:"class,attr"`
	X           *int            `xml:"x,attr"`
	Y           *int            `xml:"y,attr"`
	Width       *int            `xml:"width,attr"`
	Height      *int            `xml:"height,attr"`
	Probability *float64        `xml:"probability,attr"`
	Image       *xmlImage       `xml:"image"`
	Animation   *xmlAnimation   `xml:"animation"`
	ObjectGroup *xmlObjectLayer `xml:"objectgroup"`
	Properties  *xmlProperties  `xml:"properties"`
}

func (t *xmlTilesetTile) toRaw() (rawTile, error) {
	raw := rawTile{
		ID:          t.ID,
		Type:        t.Type,
		Class:       t.Class,
		X:           t.X,
		Y:           t.Y,
		Width:       t.Width,
		Height:      t.Height,
		Probability: t.Probability,
	}
	if t.Image != nil {
		src := t.Image.Source
		raw.Image = &src
		raw.ImageWidth = t.Image.Width
		raw.ImageHeight = t.Image.Height
	}
	if t.Animation != nil {
		raw.Animation = make([]rawFrame, len(t.Animation.Frames))
		for i, f := range t.Animation.Frames {
			raw.Animation[i] = rawFrame{TileID: f.TileID, Duration: f.Duration}
		}
	}
	if t.ObjectGroup != nil {
		og, err := t.ObjectGroup.toRaw()
		if err != nil {
			return raw, err
		}
		raw.ObjectGroup = &og
	}
	var err error
	if raw.Properties, err = t.Properties.toRaw(); err != nil {
		return raw, err
	}
	return raw, nil
}

type xmlWangTile struct {
	TileID int    `xml:"tileid,attr"`
	WangID string `xml:"wangid,attr"`
}

type xmlWangColor struct {
	Name        string         `xml:"name,attr"`
	Class       *string        `xml:"class,attr"`
	Color       *string        `xml:"color,attr"`
	Tile        *int           `xml:"tile,attr"`
	Probability *float64       `xml:"probability,attr"`
	Properties  *xmlProperties `xml:"properties"`
}

type xmlWangSet struct {
	Name       string         `xml:"name,attr"`
	Class      *string        `xml:"class,attr"`
	Type       *string        `xml:"type,attr"`
	Tile       *int           `xml:"tile,attr"`
	Colors     []xmlWangColor `xml:"wangcolor"`
	Tiles      []xmlWangTile  `xml:"wangtile"`
	Properties *xmlProperties `xml:"properties"`
}

type xmlWangSets struct {
	WangSets []xmlWangSet `xml:"wangset"`
}

func (w *xmlWangSet) toRaw() (rawWangSet, error) {
	raw := rawWangSet{Name: w.Name, Class: w.Class, Type: w.Type, Tile: w.Tile}
	props, err := w.Properties.toRaw()
	if err != nil {
		return raw, err
	}
	raw.Properties = props
	raw.Colors = make([]rawWangColor, 0, len(w.Colors))
	for i := range w.Colors {
		c := &w.Colors[i]
		cprops, err := c.Properties.toRaw()
		if err != nil {
			return raw, err
		}
		raw.Colors = append(raw.Colors, rawWangColor{
			Name:        c.Name,
			Class:       c.Class,
			Color:       c.Color,
			Tile:        c.Tile,
			Probability: c.Probability,
			Properties:  cprops,
		})
	}
	raw.WangTiles = make([]rawWangTile, 0, len(w.Tiles))
	for _, t := range w.Tiles {
		ids, err := parseWangID(t.WangID)
		if err != nil {
			return raw, err
		}
		raw.WangTiles = append(raw.WangTiles, rawWangTile{TileID: t.TileID, WangID: ids})
	}
	return raw, nil
}

func parseWangID(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid wangid %q", s)
		}
		ids = append(ids, n)
	}
	return ids, nil
}

type xmlTileOffset struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

type xmlGrid struct {
	Orientation string `xml:"orientation,attr"`
	Width       int    `xml:"width,attr"`
	Height      int    `xml:"height,attr"`
}

type xmlTransformations struct {
	HFlip               *bool `xml:"hflip,attr"`
	VFlip               *bool `xml:"vflip,attr"`
	Rotate              *bool `xml:"rotate,attr"`
	PreferUntransformed *bool `xml:"preferuntransformed,attr"`
}

type xmlTileset struct {
	XMLName         xml.Name            `xml:"tileset"`
	FirstGID        *uint32             `xml:"firstgid,attr"`
	Source          *string             `xml:"source,attr"`
	Name            *string             `xml:"name,attr"`
	Class           *string             `xml:"class,attr"`
	TileWidth       *int                `xml:"tilewidth,attr"`
	TileHeight      *int                `xml:"tileheight,attr"`
	TileCount       *int                `xml:"tilecount,attr"`
	Columns         *int                `xml:"columns,attr"`
	Spacing         *int                `xml:"spacing,attr"`
	Margin          *int                `xml:"margin,attr"`
	ObjectAlignment *string             `xml:"objectalignment,attr"`
	TileRenderSize  *string             `xml:"tilerendersize,attr"`
	FillMode        *string             `xml:"fillmode,attr"`
	BackgroundColor *string             `xml:"backgroundcolor,attr"`
	Version         *string             `xml:"version,attr"`
	TiledVersion    *string             `xml:"tiledversion,attr"`
	Image           *xmlImage           `xml:"image"`
	TileOffset      *xmlTileOffset      `xml:"tileoffset"`
	Grid            *xmlGrid            `xml:"grid"`
	Transformations *xmlTransformations `xml:"transformations"`
	Properties      *xmlProperties      `xml:"properties"`
	Tiles           []xmlTilesetTile    `xml:"tile"`
	WangSets        *xmlWangSets        `xml:"wangsets"`
}

func (t *xmlTileset) toRaw() (rawTileset, error) {
	raw := rawTileset{
		FirstGID:        t.FirstGID,
		Source:          t.Source,
		Name:            t.Name,
		Class:           t.Class,
		TileWidth:       t.TileWidth,
		TileHeight:      t.TileHeight,
		TileCount:       t.TileCount,
		Columns:         t.Columns,
		Spacing:         t.Spacing,
		Margin:          t.Margin,
		ObjectAlignment: t.ObjectAlignment,
		TileRenderSize:  t.TileRenderSize,
		FillMode:        t.FillMode,
		BackgroundColor: t.BackgroundColor,
		TiledVersion:    t.TiledVersion,
	}
	if t.Version != nil {
		v := versionString(*t.Version)
		raw.Version = &v
	}
	if t.Image != nil {
		src := t.Image.Source
		raw.Image = &src
		raw.ImageWidth = t.Image.Width
		raw.ImageHeight = t.Image.Height
		raw.TransparentColor = t.Image.Trans
	}
	if t.TileOffset != nil {
		raw.TileOffset = &rawTileOffset{X: t.TileOffset.X, Y: t.TileOffset.Y}
	}
	if t.Grid != nil {
		raw.Grid = &rawGrid{
			Orientation: t.Grid.Orientation,
			Width:       t.Grid.Width,
			Height:      t.Grid.Height,
		}
	}
	if t.Transformations != nil {
		raw.Transformations = &rawTransformations{
			HFlip:               t.Transformations.HFlip,
			VFlip:               t.Transformations.VFlip,
			Rotate:              t.Transformations.Rotate,
			PreferUntransformed: t.Transformations.PreferUntransformed,
		}
	}
	var err error
	if raw.Properties, err = t.Properties.toRaw(); err != nil {
		return raw, err
	}
	raw.Tiles = make([]rawTile, 0, len(t.Tiles))
	for i := range t.Tiles {
		tile, err := t.Tiles[i].toRaw()
		if err != nil {
			return raw, err
		}
		raw.Tiles = append(raw.Tiles, tile)
	}
	if t.WangSets != nil {
		raw.WangSets = make([]rawWangSet, 0, len(t.WangSets.WangSets))
		for i := range t.WangSets.WangSets {
			ws, err := t.WangSets.WangSets[i].toRaw()
			if err != nil {
				return raw, err
			}
			raw.WangSets = append(raw.WangSets, ws)
		}
	}
	return raw, nil
}

type xmlMap struct {
	XMLName         xml.Name        `xml:"map"`
	Version         *string         `xml:"version,attr"`
	TiledVersion    *string         `xml:"tiledversion,attr"`
	Class           *string         `xml:"class,attr"`
	Orientation     *string         `xml:"orientation,attr"`
	RenderOrder     *string         `xml:"renderorder,attr"`
	Infinite        *bool           `xml:"infinite,attr"`
	Width           *int            `xml:"width,attr"`
	Height          *int            `xml:"height,attr"`
	TileWidth       *int            `xml:"tilewidth,attr"`
	TileHeight      *int            `xml:"tileheight,attr"`
	HexSideLength   *int            `xml:"hexsidelength,attr"`
	StaggerAxis     *string         `xml:"staggeraxis,attr"`
	StaggerIndex    *string         `xml:"staggerindex,attr"`
	BackgroundColor *string         `xml:"backgroundcolor,attr"`
	ParallaxOriginX *float64        `xml:"parallaxoriginx,attr"`
	ParallaxOriginY *float64        `xml:"parallaxoriginy,attr"`
	NextLayerID     *int            `xml:"nextlayerid,attr"`
	NextObjectID    *int            `xml:"nextobjectid,attr"`
	Properties      *xmlProperties  `xml:"properties"`
	Tilesets        []xmlTileset    `xml:"tileset"`
	Children        []xmlLayerChild `xml:",any"`
}

func (m *xmlMap) toRaw() (*rawMap, error) {
	raw := &rawMap{
		Type:            "map",
		TiledVersion:    m.TiledVersion,
		Class:           m.Class,
		Orientation:     m.Orientation,
		RenderOrder:     m.RenderOrder,
		Infinite:        m.Infinite,
		Width:           m.Width,
		Height:          m.Height,
		TileWidth:       m.TileWidth,
		TileHeight:      m.TileHeight,
		HexSideLength:   m.HexSideLength,
		StaggerAxis:     m.StaggerAxis,
		StaggerIndex:    m.StaggerIndex,
		BackgroundColor: m.BackgroundColor,
		ParallaxOriginX: m.ParallaxOriginX,
		ParallaxOriginY: m.ParallaxOriginY,
		NextLayerID:     m.NextLayerID,
		NextObjectID:    m.NextObjectID,
	}
	if m.Version != nil {
		v := versionString(*m.Version)
		raw.Version = &v
	}
	var err error
	if raw.Properties, err = m.Properties.toRaw(); err != nil {
		return nil, err
	}
	raw.Tilesets = make([]rawTileset, 0, len(m.Tilesets))
	for i := range m.Tilesets {
		ts, err := m.Tilesets[i].toRaw()
		if err != nil {
			return nil, err
		}
		raw.Tilesets = append(raw.Tilesets, ts)
	}
	if raw.Layers, err = layerChildrenToRaw(m.Children); err != nil {
		return nil, err
	}
	return raw, nil
}

type xmlTemplate struct {
	XMLName xml.Name    `xml:"template"`
	Tileset *xmlTileset `xml:"tileset"`
	Object  *xmlObject  `xml:"object"`
}

func (t *xmlTemplate) toRaw() (*rawTemplate, error) {
	raw := &rawTemplate{Type: "template"}
	if t.Tileset != nil {
		ts, err := t.Tileset.toRaw()
		if err != nil {
			return nil, err
		}
		raw.Tileset = &ts
	}
	if t.Object != nil {
		obj, err := t.Object.toRaw()
		if err != nil {
			return nil, err
		}
		raw.Object = &obj
	}
	return raw, nil
}
