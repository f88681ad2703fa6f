package masume

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yomogi/masume/compression"
)

// decodeTileData turns a tile layer payload into unpacked cells.
// encoding is "", "csv" or "base64"; comp names a compression
// algorithm and is only meaningful with base64.
func decodeTileData(data *rawData, encoding, comp string, width, height int) ([]TileCell, error) {
	if data == nil {
		return nil, &StructuralError{Reason: "tile layer is missing its data block"}
	}
	if width <= 0 || height <= 0 {
		return nil, &StructuralError{Reason: fmt.Sprintf("invalid tile data dimensions %dx%d", width, height)}
	}
	want := width * height

	switch encoding {
	case "", "csv":
		var ints []uint32
		switch {
		case data.ints != nil:
			ints = data.ints
		case strings.TrimSpace(data.text) != "":
			var err error
			if ints, err = parseCSVCells(data.text); err != nil {
				return nil, err
			}
		default:
			return nil, &StructuralError{Reason: "tile data carries neither a cell array nor encoded text"}
		}
		if len(ints) != want {
			return nil, &StructuralError{Reason: fmt.Sprintf("tile data has %d cells, expected %d", len(ints), want)}
		}
		return unpackCells(ints), nil

	case "base64":
		// TMX wraps base64 payloads in whitespace and newlines.
		text := strings.Join(strings.Fields(data.text), "")
		buf, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, &EncodingError{Stage: "base64 decode", Err: err}
		}
		if comp != "" {
			if buf, err = decompress(comp, buf); err != nil {
				return nil, err
			}
		}
		if len(buf) != want*4 {
			return nil, &StructuralError{Reason: fmt.Sprintf("tile data has %d bytes, expected %d", len(buf), want*4)}
		}
		ints := make([]uint32, want)
		for i := range ints {
			ints[i] = binary.LittleEndian.Uint32(buf[i*4:])
		}
		return unpackCells(ints), nil

	default:
		return nil, &StructuralError{Reason: fmt.Sprintf("unknown tile data encoding %q", encoding)}
	}
}

func parseCSVCells(text string) ([]uint32, error) {
	fields := strings.Split(text, ",")
	ints := make([]uint32, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, &StructuralError{Reason: fmt.Sprintf("invalid CSV tile value %q", strings.TrimSpace(field))}
		}
		ints = append(ints, uint32(v))
	}
	return ints, nil
}

func decompress(comp string, buf []byte) ([]byte, error) {
	fn, ok := compression.Decoder(comp)
	if !ok {
		if compression.Known(comp) {
			return nil, &MissingCapabilityError{
				Capability: comp + " decompression",
				Remedy:     fmt.Sprintf("import github.com/yomogi/masume/compression/%s", comp),
			}
		}
		return nil, &StructuralError{Reason: fmt.Sprintf("unknown tile data compression %q", comp)}
	}
	rc, err := fn(bytes.NewReader(buf))
	if err != nil {
		return nil, &EncodingError{Stage: comp + " decompression", Err: err}
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, &EncodingError{Stage: comp + " decompression", Err: err}
	}
	return out, nil
}
