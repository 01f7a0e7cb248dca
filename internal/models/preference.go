package models

// Preferences stores one user's match priorities. All fields except Budget
// are on a 0-100 scale; callers are expected to keep them in range.
type Preferences struct {
	Budget            int `json:"budget"`
	CarSize           int `json:"car_size"`
	FuelEconomy       int `json:"fuel_economy"`
	Sportiness        int `json:"sportiness"`
	PriceImportance   int `json:"price_importance"`
	MileageImportance int `json:"mileage_importance"`
	MPGImportance     int `json:"mpg_importance"`
	SportinessWeight  int `json:"sportiness_weight"`
	SizeWeight        int `json:"size_weight"`
}

// PreferenceUpdate is a partial update of Preferences.
type PreferenceUpdate struct {
	Budget            *int `json:"budget,omitempty"`
	CarSize           *int `json:"car_size,omitempty"`
	FuelEconomy       *int `json:"fuel_economy,omitempty"`
	Sportiness        *int `json:"sportiness,omitempty"`
	PriceImportance   *int `json:"price_importance,omitempty"`
	MileageImportance *int `json:"mileage_importance,omitempty"`
	MPGImportance     *int `json:"mpg_importance,omitempty"`
	SportinessWeight  *int `json:"sportiness_weight,omitempty"`
	SizeWeight        *int `json:"size_weight,omitempty"`
}

// OnboardingRequest is the request body of the first-run preferences screen.
type OnboardingRequest struct {
	Budget      int `json:"budget"`
	CarSize     int `json:"car_size"`
	FuelEconomy int `json:"fuel_economy"`
	Sportiness  int `json:"sportiness"`
}

// PreferencesResponse adds display labels to Preferences.
type PreferencesResponse struct {
	Preferences
	SizeLabel        string `json:"size_label"`
	FuelEconomyLabel string `json:"fuel_economy_label"`
	SportinessLabel  string `json:"sportiness_label"`
}
