package models

// LevelListResponse wraps the GET /api/v1/levels response. Levels are
// plain string tags from a small server-defined set.
type LevelListResponse struct {
	Levels []string `json:"levels"`
}
