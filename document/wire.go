package document

import "github.com/sketchdoc/sdk/geom"

// Wire representation of a document. Field order here is the canonical
// key order; encoding/json preserves struct order and sorts map keys, so
// marshaling one of these is deterministic by construction.
//
// Optional fields use pointers and carry no omitempty: absence is encoded
// as an explicit null, never by omission.
type wireDocument struct {
	SchemaVersion int               `json:"schema_version"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Page          wirePage          `json:"page"`
	Layers        []wireLayer       `json:"layers"`
	Entities      []any             `json:"entities"`
	Annotations   []any             `json:"annotations"`
	Metadata      map[string]string `json:"metadata"`
	SyncID        *string           `json:"sync_id"`
	SyncStatus    string            `json:"sync_status"`
	UpdatedAt     int64             `json:"updated_at"`
	Version       int               `json:"version"`
}

type wirePage struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

type wireLayer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// A nil dash pattern encodes as null (solid stroke), never as [].
type wireStyle struct {
	Color string    `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash_pattern"`
}

type wireSegment struct {
	Type  string     `json:"type"`
	ID    string     `json:"id"`
	Layer *string    `json:"layer"`
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
	Style wireStyle  `json:"style"`
}

type wireCircle struct {
	Type   string     `json:"type"`
	ID     string     `json:"id"`
	Layer  *string    `json:"layer"`
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
	Style  wireStyle  `json:"style"`
}

type wirePolyline struct {
	Type   string       `json:"type"`
	ID     string       `json:"id"`
	Layer  *string      `json:"layer"`
	Points []geom.Point `json:"points"`
	Closed bool         `json:"closed"`
	Style  wireStyle    `json:"style"`
}

type wireArc struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Layer      *string    `json:"layer"`
	Center     geom.Point `json:"center"`
	Radius     float64    `json:"radius"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
}

type wireText struct {
	Type     string     `json:"type"`
	ID       string     `json:"id"`
	TargetID *string    `json:"target_id"`
	Position geom.Point `json:"position"`
	Content  string     `json:"content"`
	FontSize float64    `json:"font_size"`
	Rotation float64    `json:"rotation"`
}

type wireDimension struct {
	Type     string     `json:"type"`
	ID       string     `json:"id"`
	TargetID *string    `json:"target_id"`
	Value    float64    `json:"value"`
	Units    string     `json:"units"`
	Position geom.Point `json:"position"`
}

type wireTag struct {
	Type     string  `json:"type"`
	ID       string  `json:"id"`
	TargetID *string `json:"target_id"`
	Label    string  `json:"label"`
	Category *string `json:"category"`
}

type wireGroup struct {
	Type      string   `json:"type"`
	ID        string   `json:"id"`
	TargetID  *string  `json:"target_id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

// nullable maps the internal empty-string convention for absent optional
// strings to an explicit JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// stringOrEmpty maps a decoded optional back to the internal convention.
func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
