// Package inspect implements the "masume inspect" command, which
// parses a map, tileset or world file and prints a short summary.
package inspect

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yomogi/masume"

	// Inspected maps may use zstd-compressed tile data.
	_ "github.com/yomogi/masume/compression/zstd"
)

// Run executes the inspect command.
func Run(args []string) error {
	if len(args) != 1 {
		PrintHelp()
		return fmt.Errorf("inspect expects exactly one file argument")
	}
	path := args[0]
	ctx := context.Background()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".world":
		w, err := masume.ParseWorld(ctx, path)
		if err != nil {
			return err
		}
		printWorld(path, w)
	case ".tsx", ".tsj":
		ts, err := masume.ParseTileset(ctx, path, 0)
		if err != nil {
			return err
		}
		printTileset(path, ts)
	default:
		m, err := masume.ParseMap(ctx, path)
		if err != nil {
			return err
		}
		printMap(path, m)
	}
	return nil
}

// PrintHelp prints usage information for the inspect command.
func PrintHelp() {
	fmt.Println(`masume inspect - Parse a Tiled file and print a summary

Usage:
  masume inspect <file>

The file kind is picked by extension: .world files parse as worlds,
.tsx/.tsj as tilesets, everything else as maps.`)
}

func printMap(path string, m *masume.Map) {
	fmt.Printf("map %s\n", path)
	fmt.Printf("  version:     %s (tiled %s)\n", m.Version, m.TiledVersion)
	fmt.Printf("  orientation: %s, render order %s\n", m.Orientation, m.RenderOrder)
	fmt.Printf("  size:        %.0fx%.0f tiles of %.0fx%.0f px",
		m.MapSize.Width, m.MapSize.Height, m.TileSize.Width, m.TileSize.Height)
	if m.Infinite {
		fmt.Print(" (infinite)")
	}
	fmt.Println()

	fmt.Printf("  tilesets:    %d\n", len(m.Tilesets))
	for _, ref := range m.Tilesets {
		src := ref.Source
		if src == "" {
			src = "(embedded)"
		}
		fmt.Printf("    firstgid %-6d %-24s %s\n", ref.FirstGID, ref.Tileset.Name, src)
	}

	fmt.Printf("  layers:      %d\n", len(m.Layers))
	printLayers(m.Layers, "    ")
}

func printLayers(layers []masume.Layer, indent string) {
	for _, layer := range layers {
		c := layer.Common()
		switch l := layer.(type) {
		case *masume.TileLayer:
			if l.Chunks != nil {
				fmt.Printf("%stile   %q (%d chunks)\n", indent, c.Name, len(l.Chunks))
			} else {
				fmt.Printf("%stile   %q (%dx%d)\n", indent, c.Name, l.Width, l.Height)
			}
		case *masume.ObjectLayer:
			fmt.Printf("%sobject %q (%d objects, draworder %s)\n", indent, c.Name, len(l.Objects), l.DrawOrder)
		case *masume.ImageLayer:
			fmt.Printf("%simage  %q (%s)\n", indent, c.Name, l.Image)
		case *masume.GroupLayer:
			fmt.Printf("%sgroup  %q\n", indent, c.Name)
			printLayers(l.Layers, indent+"  ")
		}
	}
}

func printTileset(path string, ts *masume.Tileset) {
	fmt.Printf("tileset %s\n", path)
	fmt.Printf("  name:      %s\n", ts.Name)
	fmt.Printf("  tiles:     %d of %dx%d px, %d columns\n", ts.TileCount, ts.TileWidth, ts.TileHeight, ts.Columns)
	if ts.Image != "" {
		fmt.Printf("  image:     %s (%dx%d)\n", ts.Image, ts.ImageWidth, ts.ImageHeight)
	} else {
		fmt.Printf("  image:     (per-tile collection)\n")
	}
	if len(ts.Tiles) > 0 {
		fmt.Printf("  overrides: %d tiles\n", len(ts.Tiles))
	}
	if len(ts.WangSets) > 0 {
		fmt.Printf("  wang sets: %d\n", len(ts.WangSets))
	}
}

func printWorld(path string, w *masume.World) {
	fmt.Printf("world %s\n", path)
	fmt.Printf("  only show adjacent: %v\n", w.OnlyShowAdjacent)
	fmt.Printf("  maps: %d\n", len(w.Maps))
	for _, wm := range w.Maps {
		if wm.Size != nil {
			fmt.Printf("    %s at (%.0f, %.0f) size %.0fx%.0f\n",
				wm.FileName, wm.Position.X, wm.Position.Y, wm.Size.Width, wm.Size.Height)
		} else {
			fmt.Printf("    %s at (%.0f, %.0f)\n", wm.FileName, wm.Position.X, wm.Position.Y)
		}
	}
}
