package masume

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"

	"github.com/yomogi/masume/source"
	osfs "github.com/yomogi/masume/source/fs"
)

// docFormat is the serialization family a document arrived in. It is
// sniffed from content, never from file extensions.
type docFormat int

const (
	formatJSON docFormat = iota
	formatXML
)

func detectFormat(data []byte) docFormat {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return formatXML
		}
		break
	}
	return formatJSON
}

type options struct {
	fs source.FileSystem
}

// Option configures a parse call.
type Option func(*options)

// WithFileSystem substitutes the file source used to read the document
// and everything it references. The default reads from the OS.
func WithFileSystem(fsys source.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func newOptions(opts []Option) options {
	o := options{fs: osfs.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParseMap reads and decodes the map document at path, loading any
// external tilesets and object templates it references. Both the JSON
// and the XML serialization parse through this one call.
func ParseMap(ctx context.Context, path string, opts ...Option) (*Map, error) {
	o := newOptions(opts)
	data, err := o.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return parseMapData(ctx, o.fs, data, filepath.Dir(path), path)
}

// ParseMapBytes decodes an in-memory map document. baseDir anchors the
// document's relative references; external files load through the
// configured file source.
func ParseMapBytes(ctx context.Context, data []byte, baseDir string, opts ...Option) (*Map, error) {
	o := newOptions(opts)
	return parseMapData(ctx, o.fs, data, baseDir, "")
}

func parseMapData(ctx context.Context, fsys source.FileSystem, data []byte, dir, path string) (*Map, error) {
	raw, format, err := parseRawMap(data, path)
	if err != nil {
		return nil, err
	}
	d := &decoder{ctx: ctx, fs: fsys, dir: dir, path: path, format: format}
	return d.decodeMap(raw)
}

// ParseTileset reads and decodes the tileset file at path. firstGID is
// recorded on the result; pass 0 when parsing outside a map context.
func ParseTileset(ctx context.Context, path string, firstGID uint32, opts ...Option) (*Tileset, error) {
	o := newOptions(opts)
	data, err := o.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return parseTilesetData(ctx, o.fs, data, filepath.Dir(path), path, firstGID)
}

// ParseTilesetBytes decodes an in-memory tileset document. Image paths
// resolve against baseDir, the way they would against a tileset file's
// own directory.
func ParseTilesetBytes(ctx context.Context, data []byte, baseDir string, firstGID uint32, opts ...Option) (*Tileset, error) {
	o := newOptions(opts)
	return parseTilesetData(ctx, o.fs, data, baseDir, "", firstGID)
}

func parseTilesetData(ctx context.Context, fsys source.FileSystem, data []byte, dir, path string, firstGID uint32) (*Tileset, error) {
	raw, format, err := parseRawTileset(data, path)
	if err != nil {
		return nil, err
	}
	d := &decoder{ctx: ctx, fs: fsys, dir: dir, path: path, format: format}
	ts, err := d.decodeTileset(raw, true)
	if err != nil {
		return nil, err
	}
	ts.FirstGID = firstGID
	return ts, nil
}

// ParseWorld reads and decodes the world file at path. Pattern entries
// are expanded by listing the world file's directory.
func ParseWorld(ctx context.Context, path string, opts ...Option) (*World, error) {
	o := newOptions(opts)
	data, err := o.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return parseWorldData(ctx, o.fs, data, filepath.Dir(path), path)
}

// ParseWorldBytes decodes an in-memory world document. baseDir anchors
// map references and is the directory listed for pattern entries.
func ParseWorldBytes(ctx context.Context, data []byte, baseDir string, opts ...Option) (*World, error) {
	o := newOptions(opts)
	return parseWorldData(ctx, o.fs, data, baseDir, "")
}

func parseWorldData(ctx context.Context, fsys source.FileSystem, data []byte, dir, path string) (*World, error) {
	if detectFormat(data) != formatJSON {
		return nil, &StructuralError{Path: path, Reason: "world files are JSON documents"}
	}
	var raw rawWorld
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid world document: %v", err)}
	}
	if raw.Type != "" && raw.Type != "world" {
		return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("document kind %q is not a world", raw.Type)}
	}
	d := &decoder{ctx: ctx, fs: fsys, dir: dir, path: path, format: formatJSON}
	return d.decodeWorld(&raw)
}

func parseRawMap(data []byte, path string) (*rawMap, docFormat, error) {
	if detectFormat(data) == formatXML {
		var xm xmlMap
		if err := xml.Unmarshal(data, &xm); err != nil {
			return nil, formatXML, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid map document: %v", err)}
		}
		raw, err := xm.toRaw()
		if err != nil {
			return nil, formatXML, &StructuralError{Path: path, Reason: err.Error()}
		}
		return raw, formatXML, nil
	}

	var raw rawMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, formatJSON, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid map document: %v", err)}
	}
	if raw.Type != "" && raw.Type != "map" {
		return nil, formatJSON, &StructuralError{Path: path, Reason: fmt.Sprintf("document kind %q is not a map", raw.Type)}
	}
	return &raw, formatJSON, nil
}

func parseRawTileset(data []byte, path string) (*rawTileset, docFormat, error) {
	if detectFormat(data) == formatXML {
		var xt xmlTileset
		if err := xml.Unmarshal(data, &xt); err != nil {
			return nil, formatXML, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid tileset document: %v", err)}
		}
		raw, err := xt.toRaw()
		if err != nil {
			return nil, formatXML, &StructuralError{Path: path, Reason: err.Error()}
		}
		return &raw, formatXML, nil
	}

	var raw rawTileset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, formatJSON, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid tileset document: %v", err)}
	}
	if raw.Type != "" && raw.Type != "tileset" {
		return nil, formatJSON, &StructuralError{Path: path, Reason: fmt.Sprintf("document kind %q is not a tileset", raw.Type)}
	}
	return &raw, formatJSON, nil
}

func parseRawTemplate(data []byte, path string, format docFormat) (*rawTemplate, error) {
	if format == formatXML {
		var xt xmlTemplate
		if err := xml.Unmarshal(data, &xt); err != nil {
			return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid template document: %v", err)}
		}
		raw, err := xt.toRaw()
		if err != nil {
			return nil, &StructuralError{Path: path, Reason: err.Error()}
		}
		return raw, nil
	}

	var raw rawTemplate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("invalid template document: %v", err)}
	}
	if raw.Type != "" && raw.Type != "template" {
		return nil, &StructuralError{Path: path, Reason: fmt.Sprintf("document kind %q is not a template", raw.Type)}
	}
	return &raw, nil
}
