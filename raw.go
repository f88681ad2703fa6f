package masume

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The raw schema mirrors Tiled's JSON format field-for-field, with
// pointers for every optional so default resolution happens in one
// place per entity during decoding. The XML decoder normalizes into
// these same types (see xml.go), which makes the two serializations
// equivalent by construction.

// versionString accepts the format version as either a string or a
// number; very old documents stored it as a float.
type versionString string

func (v *versionString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = versionString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("version must be a string or number: %w", err)
	}
	*v = versionString(n.String())
	return nil
}

type rawProperty struct {
	Name       string
	Type       string
	CustomType string
	// Value holds string, bool, float64 or int64 depending on origin
	// and declared type. Class members parsed from JSON arrive as
	// map[string]any here; the XML side fills Members directly.
	Value   any
	Members []rawProperty
}

func (p *rawProperty) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name         string `json:"name"`
		Type         string `json:"type"`
		PropertyType string `json:"propertytype"`
		Value        any    `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Name = aux.Name
	p.Type = aux.Type
	p.CustomType = aux.PropertyType
	p.Value = aux.Value
	return nil
}

// rawData is a tile layer payload: either a plain cell array or
// encoded text (CSV rows or base64).
type rawData struct {
	text string
	ints []uint32
}

func (d *rawData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &d.ints)
	}
	return json.Unmarshal(trimmed, &d.text)
}

type rawChunk struct {
	Data   *rawData `json:"data"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
}

type rawPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rawText struct {
	Text       string   `json:"text"`
	FontFamily *string  `json:"fontfamily"`
	PixelSize  *float64 `json:"pixelsize"`
	Wrap       *bool    `json:"wrap"`
	Color      *string  `json:"color"`
	Bold       *bool    `json:"bold"`
	Italic     *bool    `json:"italic"`
	Underline  *bool    `json:"underline"`
	StrikeOut  *bool    `json:"strikeout"`
	Kerning    *bool    `json:"kerning"`
	HAlign     *string  `json:"halign"`
	VAlign     *string  `json:"valign"`
}

type rawObject struct {
	ID       *int     `json:"id"`
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Class    *string  `json:"class"`
	Template *string  `json:"template"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Rotation *float64 `json:"rotation"`
	GID      *uint32  `json:"gid"`
	Visible  *bool    `json:"visible"`

	Ellipse  bool       `json:"ellipse"`
	Point    bool       `json:"point"`
	Polygon  []rawPoint `json:"polygon"`
	Polyline []rawPoint `json:"polyline"`
	Text     *rawText   `json:"text"`

	Properties []rawProperty `json:"properties"`
}

type rawLayer struct {
	Type       string        `json:"type"`
	Name       *string       `json:"name"`
	ID         *int          `json:"id"`
	Class      *string       `json:"class"`
	Opacity    *float64      `json:"opacity"`
	Visible    *bool         `json:"visible"`
	OffsetX    *float64      `json:"offsetx"`
	OffsetY    *float64      `json:"offsety"`
	ParallaxX  *float64      `json:"parallaxx"`
	ParallaxY  *float64      `json:"parallaxy"`
	TintColor  *string       `json:"tintcolor"`
	RepeatX    *bool         `json:"repeatx"`
	RepeatY    *bool         `json:"repeaty"`
	Properties []rawProperty `json:"properties"`

	// Tile layer fields.
	Width       *int       `json:"width"`
	Height      *int       `json:"height"`
	Data        *rawData   `json:"data"`
	Encoding    *string    `json:"encoding"`
	Compression *string    `json:"compression"`
	Chunks      []rawChunk `json:"chunks"`

	// Object layer fields.
	Objects   []rawObject `json:"objects"`
	DrawOrder *string     `json:"draworder"`
	Color     *string     `json:"color"`

	// Image layer fields.
	Image            *string `json:"image"`
	TransparentColor *string `json:"transparentcolor"`

	// Group layer fields.
	Layers []rawLayer `json:"layers"`
}

type rawFrame struct {
	TileID   int `json:"tileid"`
	Duration int `json:"duration"`
}

type rawTile struct {
	ID          int           `json:"id"`
	Type        *string       `json:"type"`
	Class       *string       `json:"class"`
	Image       *string       `json:"image"`
	ImageWidth  *int          `json:"imagewidth"`
	ImageHeight *int          `json:"imageheight"`
	X           *int          `json:"x"`
	Y           *int          `json:"y"`
	Width       *int          `json:"width"`
	Height      *int          `json:"height"`
	Probability *float64      `json:"probability"`
	Animation   []rawFrame    `json:"animation"`
	ObjectGroup *rawLayer     `json:"objectgroup"`
	Properties  []rawProperty `json:"properties"`
}

type rawWangTile struct {
	TileID int   `json:"tileid"`
	WangID []int `json:"wangid"`
}

type rawWangColor struct {
	Name        string        `json:"name"`
	Class       *string       `json:"class"`
	Color       *string       `json:"color"`
	Tile        *int          `json:"tile"`
	Probability *float64      `json:"probability"`
	Properties  []rawProperty `json:"properties"`
}

type rawWangSet struct {
	Name       string         `json:"name"`
	Class      *string        `json:"class"`
	Type       *string        `json:"type"`
	Tile       *int           `json:"tile"`
	Colors     []rawWangColor `json:"colors"`
	WangTiles  []rawWangTile  `json:"wangtiles"`
	Properties []rawProperty  `json:"properties"`
}

type rawTileOffset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type rawGrid struct {
	Orientation string `json:"orientation"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type rawTransformations struct {
	HFlip               *bool `json:"hflip"`
	VFlip               *bool `json:"vflip"`
	Rotate              *bool `json:"rotate"`
	PreferUntransformed *bool `json:"preferuntransformed"`
}

type rawTileset struct {
	// FirstGID and Source only appear on a map's tileset table
	// entries; standalone tileset files carry neither.
	FirstGID *uint32 `json:"firstgid"`
	Source   *string `json:"source"`

	Type             string              `json:"type"`
	Name             *string             `json:"name"`
	Class            *string             `json:"class"`
	TileWidth        *int                `json:"tilewidth"`
	TileHeight       *int                `json:"tileheight"`
	TileCount        *int                `json:"tilecount"`
	Columns          *int                `json:"columns"`
	Spacing          *int                `json:"spacing"`
	Margin           *int                `json:"margin"`
	Image            *string             `json:"image"`
	ImageWidth       *int                `json:"imagewidth"`
	ImageHeight      *int                `json:"imageheight"`
	TileOffset       *rawTileOffset      `json:"tileoffset"`
	Grid             *rawGrid            `json:"grid"`
	Transformations  *rawTransformations `json:"transformations"`
	BackgroundColor  *string             `json:"backgroundcolor"`
	TransparentColor *string             `json:"transparentcolor"`
	ObjectAlignment  *string             `json:"objectalignment"`
	TileRenderSize   *string             `json:"tilerendersize"`
	FillMode         *string             `json:"fillmode"`
	Tiles            []rawTile           `json:"tiles"`
	WangSets         []rawWangSet        `json:"wangsets"`
	Properties       []rawProperty       `json:"properties"`
	Version          *versionString      `json:"version"`
	TiledVersion     *string             `json:"tiledversion"`
}

type rawMap struct {
	Type            string         `json:"type"`
	Version         *versionString `json:"version"`
	TiledVersion    *string        `json:"tiledversion"`
	Class           *string        `json:"class"`
	Orientation     *string        `json:"orientation"`
	RenderOrder     *string        `json:"renderorder"`
	Infinite        *bool          `json:"infinite"`
	Width           *int           `json:"width"`
	Height          *int           `json:"height"`
	TileWidth       *int           `json:"tilewidth"`
	TileHeight      *int           `json:"tileheight"`
	HexSideLength   *int           `json:"hexsidelength"`
	StaggerAxis     *string        `json:"staggeraxis"`
	StaggerIndex    *string        `json:"staggerindex"`
	BackgroundColor *string        `json:"backgroundcolor"`
	ParallaxOriginX *float64       `json:"parallaxoriginx"`
	ParallaxOriginY *float64       `json:"parallaxoriginy"`
	NextLayerID     *int           `json:"nextlayerid"`
	NextObjectID    *int           `json:"nextobjectid"`
	Properties      []rawProperty  `json:"properties"`
	Tilesets        []rawTileset   `json:"tilesets"`
	Layers          []rawLayer     `json:"layers"`
}

type rawTemplate struct {
	Type    string      `json:"type"`
	Tileset *rawTileset `json:"tileset"`
	Object  *rawObject  `json:"object"`
}

type rawWorldMap struct {
	FileName string   `json:"fileName"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
}

type rawWorldPattern struct {
	RegExp      string  `json:"regexp"`
	MultiplierX float64 `json:"multiplierx"`
	MultiplierY float64 `json:"multipliery"`
	OffsetX     float64 `json:"offsetx"`
	OffsetY     float64 `json:"offsety"`
}

type rawWorld struct {
	Type             string            `json:"type"`
	Maps             []rawWorldMap     `json:"maps"`
	Patterns         []rawWorldPattern `json:"patterns"`
	OnlyShowAdjacent bool              `json:"onlyShowAdjacent"`
}
