// Package masume parses Tiled map editor documents into strongly typed,
// immutable Go values.
//
// The name comes from masume (升目), the squares of a Japanese grid - a
// nod to the tile grids this library decodes.
//
// Four document kinds are supported, each in both of Tiled's
// serializations (JSON and XML):
//   - Maps (.tmj / .tmx)
//   - Tilesets (.tsj / .tsx)
//   - Object templates (.tj / .tx)
//   - World files (.world)
//
// Key features:
//   - Format auto-detection from content, never from file extension
//   - Identical models from JSON and XML inputs
//   - Tile layer payload decoding (CSV, base64, gzip/zlib/zstd)
//   - Cross-file resolution of external tilesets and object templates
//   - Injected file access via source.FileSystem; the core never
//     touches the disk directly
//
// Parsing is a stateless transform: every entry point is safe for
// concurrent use by independent callers, and a failed decode returns
// no partial document. Callers wanting to reuse external tilesets
// across maps can cache results keyed by resolved path.
package masume
