package client

import (
	"fmt"
	"net/http"
	"time"

	"stashboard-cli/pkg/models"
)

// GetEvents lists the event history of a service, newest first as the
// server orders it. Zero start/end values are omitted; non-zero bounds
// are sent as RFC 3339 UTC query parameters.
func (c *StashboardClient) GetEvents(serviceID string, start, end time.Time) ([]models.Event, error) {
	req := c.HTTP.R().SetPathParam("id", serviceID)

	if !start.IsZero() {
		req.SetQueryParam("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		req.SetQueryParam("end", end.UTC().Format(time.RFC3339))
	}

	var events []models.Event
	if err := c.do(req, http.MethodGet, "/services/{id}/events", &events); err != nil {
		return nil, fmt.Errorf("failed to list events for service %s: %w", serviceID, err)
	}
	return events, nil
}

// CreateEvent records a new status change against a service. statusID
// must name an existing status; the server assigns the event sid and
// timestamp.
func (c *StashboardClient) CreateEvent(serviceID, statusID, message string) (*models.Event, error) {
	var event models.Event

	req := c.HTTP.R().
		SetPathParam("id", serviceID).
		SetFormData(map[string]string{
			"status":  statusID,
			"message": message,
		})
	if err := c.do(req, http.MethodPost, "/services/{id}/events", &event); err != nil {
		return nil, fmt.Errorf("failed to create event for service %s: %w", serviceID, err)
	}
	return &event, nil
}

// GetCurrentEvent fetches the most recent event of a service.
func (c *StashboardClient) GetCurrentEvent(serviceID string) (*models.Event, error) {
	var event models.Event

	req := c.HTTP.R().SetPathParam("id", serviceID)
	if err := c.do(req, http.MethodGet, "/services/{id}/events/current", &event); err != nil {
		return nil, fmt.Errorf("failed to get current event for service %s: %w", serviceID, err)
	}
	return &event, nil
}

// GetEvent fetches a single event by its sid.
func (c *StashboardClient) GetEvent(serviceID, sid string) (*models.Event, error) {
	var event models.Event

	req := c.HTTP.R().
		SetPathParam("id", serviceID).
		SetPathParam("sid", sid)
	if err := c.do(req, http.MethodGet, "/services/{id}/events/{sid}", &event); err != nil {
		return nil, fmt.Errorf("failed to get event %s for service %s: %w", sid, serviceID, err)
	}
	return &event, nil
}

// DeleteEvent removes a single event from a service's history. The
// server echoes the deleted event back.
func (c *StashboardClient) DeleteEvent(serviceID, sid string) (*models.Event, error) {
	var event models.Event

	req := c.HTTP.R().
		SetPathParam("id", serviceID).
		SetPathParam("sid", sid)
	if err := c.do(req, http.MethodDelete, "/services/{id}/events/{sid}", &event); err != nil {
		return nil, fmt.Errorf("failed to delete event %s for service %s: %w", sid, serviceID, err)
	}
	return &event, nil
}
