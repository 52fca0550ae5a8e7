package models

// ImageListResponse wraps the GET /api/v1/status-images response
type ImageListResponse struct {
	Images []StatusImage `json:"images"`
}

// StatusImage describes an image asset a Status may reference by name
type StatusImage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
