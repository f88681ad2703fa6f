package masume

import (
	"context"
	"reflect"
	"testing"
)

// The same document authored in both serializations must decode to
// deeply equal models.
func TestMapSerializationEquivalence(t *testing.T) {
	jsonDoc := `{
		"type": "map", "version": "1.10", "tiledversion": "1.10.2",
		"orientation": "orthogonal", "renderorder": "right-down",
		"width": 2, "height": 2, "tilewidth": 16, "tileheight": 16,
		"infinite": false, "nextlayerid": 4, "nextobjectid": 3,
		"backgroundcolor": "#112233",
		"properties": [
			{"name": "difficulty", "type": "int", "value": 3},
			{"name": "title", "type": "string", "value": "level one"}
		],
		"tilesets": [{
			"firstgid": 1, "name": "tiles", "tilewidth": 16, "tileheight": 16,
			"tilecount": 4, "columns": 2,
			"image": "tiles.png", "imagewidth": 32, "imageheight": 32
		}],
		"layers": [
			{"type": "tilelayer", "id": 1, "name": "ground", "width": 2, "height": 2,
			 "data": [1, 2, 3, 2147483649]},
			{"type": "objectgroup", "id": 2, "name": "things", "draworder": "index",
			 "objects": [
				{"id": 1, "name": "spawn", "x": 8, "y": 8, "point": true},
				{"id": 2, "x": 1, "y": 2, "width": 3, "height": 4, "rotation": 45}
			 ]},
			{"type": "imagelayer", "id": 3, "name": "bg", "image": "bg.png", "offsetx": 2.5}
		]
	}`

	xmlDoc := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down"
     width="2" height="2" tilewidth="16" tileheight="16" infinite="0"
     nextlayerid="4" nextobjectid="3" backgroundcolor="#112233">
 <properties>
  <property name="difficulty" type="int" value="3"/>
  <property name="title" value="level one"/>
 </properties>
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="tiles.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="ground" width="2" height="2">
  <data encoding="csv">
1,2,
3,2147483649
  </data>
 </layer>
 <objectgroup id="2" name="things" draworder="index">
  <object id="1" name="spawn" x="8" y="8"><point/></object>
  <object id="2" x="1" y="2" width="3" height="4" rotation="45"/>
 </objectgroup>
 <imagelayer id="3" name="bg" offsetx="2.5">
  <image source="bg.png"/>
 </imagelayer>
</map>`

	ctx := context.Background()
	fromJSON, err := ParseMapBytes(ctx, []byte(jsonDoc), ".")
	if err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	fromXML, err := ParseMapBytes(ctx, []byte(xmlDoc), ".")
	if err != nil {
		t.Fatalf("XML parse error: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromXML) {
		t.Errorf("serializations decode differently:\n json: %#v\n  xml: %#v", fromJSON, fromXML)
	}
}

func TestTilesetSerializationEquivalence(t *testing.T) {
	jsonDoc := `{
		"type": "tileset", "version": "1.10", "name": "terrain",
		"tilewidth": 16, "tileheight": 16, "tilecount": 4, "columns": 2,
		"spacing": 1, "margin": 2,
		"image": "terrain.png", "imagewidth": 32, "imageheight": 32,
		"tiles": [{
			"id": 1, "class": "water",
			"animation": [{"tileid": 1, "duration": 100}, {"tileid": 2, "duration": 100}]
		}],
		"wangsets": [{
			"name": "paths", "type": "corner", "tile": 1,
			"colors": [
				{"name": "grass", "color": "#00ff00", "tile": 0, "probability": 1},
				{"name": "dirt", "color": "#aa5500", "tile": 3, "probability": 0.5}
			],
			"wangtiles": [
				{"tileid": 0, "wangid": [0, 1, 0, 1, 0, 1, 0, 1]},
				{"tileid": 3, "wangid": [0, 2, 0, 2, 0, 1, 0, 1]}
			]
		}]
	}`

	xmlDoc := `<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="terrain" tilewidth="16" tileheight="16"
         tilecount="4" columns="2" spacing="1" margin="2">
 <image source="terrain.png" width="32" height="32"/>
 <tile id="1" class="water">
  <animation>
   <frame tileid="1" duration="100"/>
   <frame tileid="2" duration="100"/>
  </animation>
 </tile>
 <wangsets>
  <wangset name="paths" type="corner" tile="1">
   <wangcolor name="grass" color="#00ff00" tile="0" probability="1"/>
   <wangcolor name="dirt" color="#aa5500" tile="3" probability="0.5"/>
   <wangtile tileid="0" wangid="0,1,0,1,0,1,0,1"/>
   <wangtile tileid="3" wangid="0,2,0,2,0,1,0,1"/>
  </wangset>
 </wangsets>
</tileset>`

	ctx := context.Background()
	fromJSON, err := ParseTilesetBytes(ctx, []byte(jsonDoc), "/t", 1)
	if err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	fromXML, err := ParseTilesetBytes(ctx, []byte(xmlDoc), "/t", 1)
	if err != nil {
		t.Fatalf("XML parse error: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromXML) {
		t.Errorf("serializations decode differently:\n json: %#v\n  xml: %#v", fromJSON, fromXML)
	}
}
