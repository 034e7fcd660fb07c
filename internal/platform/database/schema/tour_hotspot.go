package schema

// RefHotspotTable represents the 'tour.hotspot' table
type RefHotspotTable struct {
	Table           string
	ID              string
	FromSceneID     string
	ToSceneID       string
	HotspotType     string
	Pitch           string
	Yaw             string
	Text            string
	InfoDescription string
	CreatedAt       string
}

// RefHotspot is the schema definition for tour.hotspot
var RefHotspot = RefHotspotTable{
	Table:           "tour.hotspot",
	ID:              "id",
	FromSceneID:     "fromsceneid",
	ToSceneID:       "tosceneid",
	HotspotType:     "hotspottype",
	Pitch:           "pitch",
	Yaw:             "yaw",
	Text:            "text",
	InfoDescription: "infodescription",
	CreatedAt:       "createdat",
}

func (t RefHotspotTable) Columns() []string {
	return []string{
		t.ID, t.FromSceneID, t.ToSceneID, t.HotspotType,
		t.Pitch, t.Yaw, t.Text, t.InfoDescription, t.CreatedAt,
	}
}
