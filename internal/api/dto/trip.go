package dto

type RouteRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Vehicle string `json:"vehicle"`
	Unit    string `json:"unit"`
}

type InstructionResponse struct {
	Text     string `json:"text"`
	Distance string `json:"distance"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResponse carries the formatted trip summary plus the original from/to
// texts so the frontend can offer "save as favorite" without another lookup.
type RouteResponse struct {
	Distance     string                `json:"distance"`
	Time         string                `json:"time"`
	Vehicle      string                `json:"vehicle"`
	Unit         string                `json:"unit"`
	Instructions []InstructionResponse `json:"instructions"`
	Points       []PointResponse       `json:"points"`
	From         string                `json:"from"`
	To           string                `json:"to"`
}
