package listings

import (
	"math"

	"carmatch-service/internal/models"
)

// DefaultClusterCell is the grid cell size in degrees used by the map.
const DefaultClusterCell = 0.05

// Markers builds one marker per listing.
func Markers(listings []models.CarListing) []models.Marker {
	out := make([]models.Marker, len(listings))
	for i, l := range listings {
		out[i] = models.Marker{ListingID: l.ID, Title: l.Title, Lat: l.Lat, Lng: l.Lng}
	}
	return out
}

type cellKey struct {
	lat, lng int64
}

// Cluster groups markers that fall in the same cellDegrees grid cell.
// Clusters are returned in order of their first marker. A non-positive
// cell size puts every marker in its own cluster.
func Cluster(markers []models.Marker, cellDegrees float64) []models.MarkerCluster {
	clusters := make([]models.MarkerCluster, 0, len(markers))
	if cellDegrees <= 0 {
		for _, m := range markers {
			clusters = append(clusters, models.MarkerCluster{Lat: m.Lat, Lng: m.Lng, Size: 1, Markers: []models.Marker{m}})
		}
		return clusters
	}

	index := make(map[cellKey]int)
	for _, m := range markers {
		k := cellKey{
			lat: int64(math.Floor(m.Lat / cellDegrees)),
			lng: int64(math.Floor(m.Lng / cellDegrees)),
		}
		i, ok := index[k]
		if !ok {
			i = len(clusters)
			index[k] = i
			clusters = append(clusters, models.MarkerCluster{})
		}
		clusters[i].Markers = append(clusters[i].Markers, m)
	}

	for i := range clusters {
		c := &clusters[i]
		var lat, lng float64
		for _, m := range c.Markers {
			lat += m.Lat
			lng += m.Lng
		}
		c.Size = len(c.Markers)
		c.Lat = lat / float64(c.Size)
		c.Lng = lng / float64(c.Size)
	}
	return clusters
}
