package models

// Service represents a single monitored component on the dashboard
type Service struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url,omitempty"`
	CurrentEvent *Event `json:"current-event,omitempty"` // JSON key uses a hyphen, not an underscore
}
