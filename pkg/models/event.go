package models

// Event is a time-stamped status change applied to a service. The
// server assigns the sid and timestamp at creation; events form an
// ordered history per service and "current" is always server-decided.
type Event struct {
	SID           string `json:"sid"`
	Status        string `json:"status"` // references an existing Status by id
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"` // server-assigned
	URL           string `json:"url,omitempty"`
	Informational bool   `json:"informational,omitempty"`
}
