package models

// Hospital represents a hospital/medical facility record in the registry
type Hospital struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	TotalBeds int    `json:"total_beds"`
	ICUBeds   int    `json:"icu_beds"`
}

// RegistryStats is a point-in-time summary of the registry contents
type RegistryStats struct {
	Hospitals int `json:"hospitals"`
	TotalBeds int `json:"total_beds"`
	ICUBeds   int `json:"icu_beds"`
}
