package models

// DealerOffer is a local dealership price for a car.
type DealerOffer struct {
	Dealer        string  `json:"dealer"`
	Price         int     `json:"price"`
	Location      string  `json:"location"`
	DistanceMiles float64 `json:"distance_miles"`
	URL           string  `json:"url"`
}

// MarketplaceOffer is a listing for a car on a third-party marketplace.
type MarketplaceOffer struct {
	Platform  string `json:"platform"`
	Price     int    `json:"price"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
	URL       string `json:"url"`
}

// DealsResponse is the payload for /cars/:id/deals.
type DealsResponse struct {
	CarID       int                `json:"car_id"`
	Title       string             `json:"title"` // "2021 Toyota Camry"
	Dealers     []DealerOffer      `json:"dealers"`
	Marketplace []MarketplaceOffer `json:"marketplace"`
}
