package preferences

import "carmatch-service/internal/models"

func quartile(v int, labels [4]string) string {
	switch {
	case v < 25:
		return labels[0]
	case v < 50:
		return labels[1]
	case v < 75:
		return labels[2]
	default:
		return labels[3]
	}
}

// SizeLabel describes a car size slider value.
func SizeLabel(v int) string {
	return quartile(v, [4]string{"Compact", "Mid-size", "Full-size", "Large"})
}

// FuelEconomyLabel describes a fuel economy slider value.
func FuelEconomyLabel(v int) string {
	return quartile(v, [4]string{"Not Important", "Somewhat Important", "Important", "Very Important"})
}

// SportinessLabel describes a sportiness slider value.
func SportinessLabel(v int) string {
	return quartile(v, [4]string{"Practical", "Balanced", "Sporty", "Very Sporty"})
}

// Describe attaches display labels to p.
func Describe(p models.Preferences) models.PreferencesResponse {
	return models.PreferencesResponse{
		Preferences:      p,
		SizeLabel:        SizeLabel(p.CarSize),
		FuelEconomyLabel: FuelEconomyLabel(p.FuelEconomy),
		SportinessLabel:  SportinessLabel(p.Sportiness),
	}
}
