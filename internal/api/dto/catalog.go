package dto

type CityResponse struct {
	State  string `json:"state"`
	City   string `json:"city"`
	Places int    `json:"places"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}
