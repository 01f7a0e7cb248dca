package listings

import (
	"strconv"

	"carmatch-service/internal/models"
)

// Popup builds the info window for a clicked marker.
func Popup(l models.CarListing) models.InfoWindow {
	return models.InfoWindow{
		ListingID: l.ID,
		Title:     l.Title,
		Summary:   "$" + groupThousands(l.Price) + " • " + groupThousands(l.Mileage) + " mi",
		URL:       l.URL,
	}
}

func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
