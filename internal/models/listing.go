package models

// ListingSource identifies where a map listing was found.
type ListingSource string

const (
	SourceDealership ListingSource = "dealership"
	SourceFacebook   ListingSource = "facebook"
)

// CarListing is a geolocated listing shown on the map.
type CarListing struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Price    int           `json:"price"`
	Mileage  int           `json:"mileage"`
	Lat      float64       `json:"lat"`
	Lng      float64       `json:"lng"`
	Source   ListingSource `json:"source"`
	URL      string        `json:"url"`
	ImageURL *string       `json:"image_url,omitempty"`
	Year     *int          `json:"year,omitempty"`
	Make     *string       `json:"make,omitempty"`
	Model    *string       `json:"model,omitempty"`
}

// Bounds is a latitude/longitude rectangle in degrees.
type Bounds struct {
	North float64 `json:"north" query:"north"`
	South float64 `json:"south" query:"south"`
	East  float64 `json:"east" query:"east"`
	West  float64 `json:"west" query:"west"`
}

// Contains reports whether the point lies strictly inside b.
func (b Bounds) Contains(lat, lng float64) bool {
	return lat < b.North && lat > b.South && lng < b.East && lng > b.West
}

// ListingsResponse is the response shape for a bounds query.
type ListingsResponse struct {
	Bounds   Bounds          `json:"bounds"`
	Count    int             `json:"count"`
	Label    string          `json:"label"`
	Data     []CarListing    `json:"data"`
	Clusters []MarkerCluster `json:"clusters"`
}

// Marker is a map pin for one listing.
type Marker struct {
	ListingID string  `json:"listing_id"`
	Title     string  `json:"title"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// MarkerCluster groups nearby markers. Lat/Lng is the centroid.
type MarkerCluster struct {
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Size    int      `json:"size"`
	Markers []Marker `json:"markers"`
}

// InfoWindow is the popup shown when a marker is clicked.
type InfoWindow struct {
	ListingID string `json:"listing_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"` // "$15,990 • 62,000 mi"
	URL       string `json:"url"`
}

// ViewportState is the map layer state after the latest applied fetch.
type ViewportState struct {
	Loading  bool            `json:"loading"`
	Error    string          `json:"error,omitempty"`
	Count    int             `json:"count"`
	Label    string          `json:"label"`
	Bounds   *Bounds         `json:"bounds,omitempty"`
	Markers  []Marker        `json:"markers"`
	Clusters []MarkerCluster `json:"clusters"`
}
