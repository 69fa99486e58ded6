package domain

// Recommendation suggests instruments and schemes for an age group and occupation.
type Recommendation struct {
	ID              string   `json:"id"`
	CountryCode     string   `json:"countryCode"`
	AgeGroup        string   `json:"ageGroup"`   // e.g. "20-30", "45+"
	Occupation      string   `json:"occupation"` // e.g. "Salaried", "All"
	InstrumentTypes []string `json:"instrumentTypes"`
	Schemes         []string `json:"schemes"`
	Description     string   `json:"description"`
}
