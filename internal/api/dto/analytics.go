package dto

type RouteCountResponse struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

type TopRoutesResponse struct {
	Routes []RouteCountResponse `json:"routes"`
}

type VehicleUsageResponse struct {
	Vehicles map[string]int `json:"vehicles"`
}
