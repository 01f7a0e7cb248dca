package models

// Car represents a vehicle in the swipe catalog.
type Car struct {
	ID              int    `json:"id"`
	CarName         string `json:"car_name"`
	Year            int    `json:"year"`
	MPG             int    `json:"mpg"`
	Horsepower      int    `json:"horsepower"`
	Mileage         int    `json:"mileage"`
	MatchPercentage int    `json:"match_percentage"`
	Price           int    `json:"price"`
	BodyStyle       string `json:"body_style"`
	ImageURL        string `json:"image_url"`
}

// CarUpdate is a partial update. Nil fields are left unchanged.
type CarUpdate struct {
	CarName         *string `json:"car_name,omitempty"`
	Year            *int    `json:"year,omitempty"`
	MPG             *int    `json:"mpg,omitempty"`
	Horsepower      *int    `json:"horsepower,omitempty"`
	Mileage         *int    `json:"mileage,omitempty"`
	MatchPercentage *int    `json:"match_percentage,omitempty"`
	Price           *int    `json:"price,omitempty"`
	BodyStyle       *string `json:"body_style,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
}

// Apply merges the non-nil fields of u into c.
func (u CarUpdate) Apply(c Car) Car {
	if u.CarName != nil {
		c.CarName = *u.CarName
	}
	if u.Year != nil {
		c.Year = *u.Year
	}
	if u.MPG != nil {
		c.MPG = *u.MPG
	}
	if u.Horsepower != nil {
		c.Horsepower = *u.Horsepower
	}
	if u.Mileage != nil {
		c.Mileage = *u.Mileage
	}
	if u.MatchPercentage != nil {
		c.MatchPercentage = *u.MatchPercentage
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.BodyStyle != nil {
		c.BodyStyle = *u.BodyStyle
	}
	if u.ImageURL != nil {
		c.ImageURL = *u.ImageURL
	}
	return c
}

// CarFilter holds optional bounds for catalog filtering. A nil bound, or an
// empty BodyStyle, is unconstrained.
type CarFilter struct {
	MinPrice   *int   `json:"min_price,omitempty" query:"min_price"`
	MaxPrice   *int   `json:"max_price,omitempty" query:"max_price"`
	MinYear    *int   `json:"min_year,omitempty" query:"min_year"`
	MaxYear    *int   `json:"max_year,omitempty" query:"max_year"`
	BodyStyle  string `json:"body_style,omitempty" query:"body_style"`
	MinMPG     *int   `json:"min_mpg,omitempty" query:"min_mpg"`
	MaxMileage *int   `json:"max_mileage,omitempty" query:"max_mileage"`
}

// Matches reports whether c satisfies every bound in f.
func (f CarFilter) Matches(c Car) bool {
	if f.MinPrice != nil && c.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.Price > *f.MaxPrice {
		return false
	}
	if f.MinYear != nil && c.Year < *f.MinYear {
		return false
	}
	if f.MaxYear != nil && c.Year > *f.MaxYear {
		return false
	}
	if f.BodyStyle != "" && c.BodyStyle != f.BodyStyle {
		return false
	}
	if f.MinMPG != nil && c.MPG < *f.MinMPG {
		return false
	}
	if f.MaxMileage != nil && c.Mileage > *f.MaxMileage {
		return false
	}
	return true
}

// IsZero reports whether no bound is set.
func (f CarFilter) IsZero() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.MinYear == nil && f.MaxYear == nil &&
		f.BodyStyle == "" && f.MinMPG == nil && f.MaxMileage == nil
}

// CarListResponse wraps a list of cars with its count.
type CarListResponse struct {
	Total int   `json:"total"`
	Data  []Car `json:"data"`
}
