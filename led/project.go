// Package led holds the typed model of a project exported by the LEd level
// editor (editor 0.2.x, JSON version 1) together with the JSON decoding that
// produces it.
//
// Values are built once by ParseJSON or LoadProject and are never modified by
// this module afterwards, so a *Project may be shared between goroutines.
// See https://deepnight.net/docs/led/json/ for the source format.
package led

import (
	"encoding/json"
)

// Project is the root of an LEd export.
type Project struct {
	// ProjectFilePath is the slash-separated path the project was loaded
	// from. Nil when parsed from bytes.
	ProjectFilePath *string `json:"projectFilePath,omitempty"`
	// ProjectDir is the slash-separated directory of ProjectFilePath, with no
	// trailing slash.
	ProjectDir *string `json:"projectDir,omitempty"`

	Name          string  `json:"name"`
	BgColor       string  `json:"bgColor"` // hex, e.g. "#7F8093"
	JSONVersion   string  `json:"jsonVersion"`
	DefaultPivotX float64 `json:"defaultPivotX"`
	DefaultPivotY float64 `json:"defaultPivotY"`

	Levels []Level `json:"levels"`
}

// Level returns the level at index i.
func (p *Project) Level(i int) (*Level, bool) {
	if p == nil || i < 0 || i >= len(p.Levels) {
		return nil, false
	}
	return &p.Levels[i], true
}

// LevelByIdentifier returns the index of the level named id, or -1.
func (p *Project) LevelByIdentifier(id string) int {
	for i := range p.Levels {
		if p.Levels[i].Identifier == id {
			return i
		}
	}
	return -1
}

func (p *Project) UnmarshalJSON(b []byte) error {
	type alias Project
	var probe struct {
		Levels *json.RawMessage `json:"levels"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	if probe.Levels == nil {
		return missingField("project", "levels")
	}
	return json.Unmarshal(b, (*alias)(p))
}

// Level is one map of the project. Its layer instances are ordered top-most
// first, as LEd lists them.
type Level struct {
	Identifier string `json:"identifier"`
	PxWid      int    `json:"pxWid"`
	PxHei      int    `json:"pxHei"`

	LayerInstances []LayerInstance `json:"layerInstances"`
}

// Layer returns the layer instance with the given identifier.
func (l *Level) Layer(identifier string) (*LayerInstance, bool) {
	for i := range l.LayerInstances {
		if l.LayerInstances[i].Identifier == identifier {
			return &l.LayerInstances[i], true
		}
	}
	return nil, false
}

func (l *Level) UnmarshalJSON(b []byte) error {
	type alias Level
	var probe struct {
		Identifier     *json.RawMessage `json:"identifier"`
		LayerInstances *json.RawMessage `json:"layerInstances"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	switch {
	case probe.Identifier == nil:
		return missingField("level", "identifier")
	case probe.LayerInstances == nil:
		return missingField("level", "layerInstances")
	}
	return json.Unmarshal(b, (*alias)(l))
}

// LayerType is the kind tag of a layer instance.
type LayerType string

const (
	LayerIntGrid   LayerType = "IntGrid"
	LayerEntities  LayerType = "Entities"
	LayerTiles     LayerType = "Tiles"
	LayerAutoLayer LayerType = "AutoLayer"
)

// LayerInstance is a single drawing layer inside a level. All layers of a
// level share the same grid size.
type LayerInstance struct {
	Identifier string    `json:"__identifier"`
	Type       LayerType `json:"__type"`
	GridWidth  int       `json:"__cWid"`
	GridHeight int       `json:"__cHei"`

	LevelID     int `json:"levelId"`
	LayerDefUID int `json:"layerDefUid"`
	PxOffsetX   int `json:"pxOffsetX"`
	PxOffsetY   int `json:"pxOffsetY"`
	Seed        int `json:"seed"`

	IntGrid         []IntGridCoordinate `json:"intGrid"`
	AutoTiles       []AutoTileRule      `json:"autoTiles"`
	GridTiles       []GridTile          `json:"gridTiles"`
	EntityInstances []EntityInstance    `json:"entityInstances"`
}

// CellCount is GridWidth * GridHeight.
func (li *LayerInstance) CellCount() int {
	return li.GridWidth * li.GridHeight
}

// TileCount counts every tile placement in the layer, auto and explicit.
func (li *LayerInstance) TileCount() int {
	n := len(li.GridTiles)
	for _, rule := range li.AutoTiles {
		n += len(rule.Tiles)
	}
	return n
}

func (li *LayerInstance) UnmarshalJSON(b []byte) error {
	type alias LayerInstance
	var probe struct {
		Identifier *json.RawMessage `json:"__identifier"`
		Type       *json.RawMessage `json:"__type"`
		GridWidth  *json.RawMessage `json:"__cWid"`
		GridHeight *json.RawMessage `json:"__cHei"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	switch {
	case probe.Identifier == nil:
		return missingField("layer instance", "__identifier")
	case probe.Type == nil:
		return missingField("layer instance", "__type")
	case probe.GridWidth == nil:
		return missingField("layer instance", "__cWid")
	case probe.GridHeight == nil:
		return missingField("layer instance", "__cHei")
	}
	return json.Unmarshal(b, (*alias)(li))
}

// IntGridCoordinate is one non-zero cell of an int-grid layer.
type IntGridCoordinate struct {
	CoordID int `json:"coordId"`
	V       int `json:"v"`
}

// AutoTileRule holds the tiles one auto-layer rule produced, in the order
// the editor emitted them.
type AutoTileRule struct {
	RuleID int        `json:"ruleId"`
	Tiles  []GridTile `json:"tiles"`
}

const (
	flipXBit = 1 << 0
	flipYBit = 1 << 1
)

// GridTile places atlas tile TileID at cell CoordID of its layer. TileX and
// TileY are the tile's column and row in the atlas.
type GridTile struct {
	CoordID int  `json:"coordId"`
	TileID  int  `json:"tileId"`
	Flips   *int `json:"flips,omitempty"`
	TileX   int  `json:"__tileX"`
	TileY   int  `json:"__tileY"`
}

func (t GridTile) FlipX() bool {
	return t.Flips != nil && *t.Flips&flipXBit != 0
}

func (t GridTile) FlipY() bool {
	return t.Flips != nil && *t.Flips&flipYBit != 0
}

func (t *GridTile) UnmarshalJSON(b []byte) error {
	type alias GridTile
	var probe struct {
		CoordID *json.RawMessage `json:"coordId"`
		TileID  *json.RawMessage `json:"tileId"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	switch {
	case probe.CoordID == nil:
		return missingField("tile", "coordId")
	case probe.TileID == nil:
		return missingField("tile", "tileId")
	}
	return json.Unmarshal(b, (*alias)(t))
}

// EntityInstance is an entity placed on an entities layer.
type EntityInstance struct {
	Identifier string `json:"__identifier"`
	Cx         int    `json:"__cx"`
	Cy         int    `json:"__cy"`
	DefUID     int    `json:"defUid"`
	X          int    `json:"x"`
	Y          int    `json:"y"`

	FieldInstances []FieldInstance `json:"fieldInstances"`
}

// Field returns the field instance named identifier.
func (e *EntityInstance) Field(identifier string) (FieldInstance, bool) {
	for _, f := range e.FieldInstances {
		if f.Identifier == identifier {
			return f, true
		}
	}
	return FieldInstance{}, false
}
