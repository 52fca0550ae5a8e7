package models

// Status is a named severity definition (e.g. "Up", "Down") that events
// reference. Statuses exist independently of services.
type Status struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       string `json:"level"` // one of the server's level set, see GetLevels
	Image       string `json:"image"` // names a server-known image asset
	Default     bool   `json:"default,omitempty"`
	URL         string `json:"url,omitempty"`
}
