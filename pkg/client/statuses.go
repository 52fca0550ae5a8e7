package client

import (
	"fmt"
	"net/http"

	"stashboard-cli/pkg/models"
)

// GetStatuses lists every status definition on the dashboard.
func (c *StashboardClient) GetStatuses() ([]models.Status, error) {
	var statuses []models.Status

	if err := c.do(c.HTTP.R(), http.MethodGet, "/statuses", &statuses); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// GetStatus fetches a single status by id.
func (c *StashboardClient) GetStatus(statusID string) (*models.Status, error) {
	var status models.Status

	req := c.HTTP.R().SetPathParam("id", statusID)
	if err := c.do(req, http.MethodGet, "/statuses/{id}", &status); err != nil {
		return nil, fmt.Errorf("failed to get status %s: %w", statusID, err)
	}
	return &status, nil
}

// CreateStatus defines a new status. level must come from the set
// returned by GetLevels and image must name an asset from
// GetStatusImages; the server rejects unknown values.
func (c *StashboardClient) CreateStatus(name, description, level, image string) (*models.Status, error) {
	var status models.Status

	req := c.HTTP.R().SetFormData(map[string]string{
		"name":        name,
		"description": description,
		"level":       level,
		"image":       image,
	})
	if err := c.do(req, http.MethodPost, "/statuses", &status); err != nil {
		return nil, fmt.Errorf("failed to create status: %w", err)
	}
	return &status, nil
}

// GetStatusImages lists the image assets a status may reference.
func (c *StashboardClient) GetStatusImages() ([]models.StatusImage, error) {
	var respData models.ImageListResponse

	if err := c.do(c.HTTP.R(), http.MethodGet, "/status-images", &respData); err != nil {
		return nil, fmt.Errorf("failed to list status images: %w", err)
	}
	return respData.Images, nil
}
