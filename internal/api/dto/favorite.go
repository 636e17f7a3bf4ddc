package dto

type SaveFavoriteRequest struct {
	Name     string `json:"name"`
	From     string `json:"from"`
	To       string `json:"to"`
	Vehicle  string `json:"vehicle"`
	Unit     string `json:"unit"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

type SaveFavoriteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type FavoriteResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Vehicle     string `json:"vehicle"`
	Unit        string `json:"unit"`
	Distance    string `json:"distance"`
	Time        string `json:"time"`
	CreatedAt   string `json:"created_at"`
}
