package masume

import "testing"

func TestUnpackGID(t *testing.T) {
	tests := []struct {
		name string
		raw  uint32
		want TileCell
	}{
		{"empty", 0, TileCell{}},
		{"plain", 42, TileCell{GID: 42}},
		{"horizontal", 0x80000000 | 7, TileCell{GID: 7, FlipHorizontal: true}},
		{"vertical", 0x40000000 | 7, TileCell{GID: 7, FlipVertical: true}},
		{"diagonal", 0x20000000 | 7, TileCell{GID: 7, FlipDiagonal: true}},
		{"hex rotation", 0x10000000 | 7, TileCell{GID: 7, RotateHex120: true}},
		{
			"all flags",
			0xf0000000 | 0x0fffffff,
			TileCell{GID: 0x0fffffff, FlipHorizontal: true, FlipVertical: true, FlipDiagonal: true, RotateHex120: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnpackGID(tt.raw); got != tt.want {
				t.Errorf("UnpackGID(%#x) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPackRoundTrip(t *testing.T) {
	gids := []uint32{0, 1, 42, 0x0fffffff}
	for flags := uint32(0); flags < 16; flags++ {
		for _, gid := range gids {
			raw := gid | flags<<28
			if got := UnpackGID(raw).Pack(); got != raw {
				t.Errorf("Pack(UnpackGID(%#x)) = %#x", raw, got)
			}
		}
	}
}

func TestTileCellEmpty(t *testing.T) {
	if !(TileCell{FlipHorizontal: true}).Empty() {
		t.Error("cell with GID 0 should be empty regardless of flags")
	}
	if (TileCell{GID: 1}).Empty() {
		t.Error("cell with GID 1 should not be empty")
	}
}
