package schema

// RefSceneTable represents the 'tour.scene' table
type RefSceneTable struct {
	Table            string
	ID               string
	Slug             string
	Title            string
	Description      string
	Building         string
	Floor            string
	FloorDescription string
	SortOrder        string
	Location         string
	PublishedDate    string
	PanoramaImage    string
	Thumbnail        string
	Author           string
	IsActive         string
	IsFeatured       string
	InitialPitch     string
	InitialYaw       string
	InitialFov       string
	CreatedAt        string
	UpdatedAt        string
}

// RefScene is the schema definition for tour.scene
var RefScene = RefSceneTable{
	Table:            "tour.scene",
	ID:               "id",
	Slug:             "slug",
	Title:            "title",
	Description:      "description",
	Building:         "building",
	Floor:            "floor",
	FloorDescription: "floordescription",
	SortOrder:        "sortorder",
	Location:         "location",
	PublishedDate:    "publisheddate",
	PanoramaImage:    "panoramaimage",
	Thumbnail:        "thumbnail",
	Author:           "author",
	IsActive:         "isactive",
	IsFeatured:       "isfeatured",
	InitialPitch:     "initialpitch",
	InitialYaw:       "initialyaw",
	InitialFov:       "initialfov",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

func (t RefSceneTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Building, t.Floor, t.FloorDescription,
		t.SortOrder, t.Location, t.PublishedDate, t.PanoramaImage, t.Thumbnail, t.Author,
		t.IsActive, t.IsFeatured, t.InitialPitch, t.InitialYaw, t.InitialFov,
		t.CreatedAt, t.UpdatedAt,
	}
}
