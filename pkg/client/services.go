package client

import (
	"fmt"
	"net/http"

	"stashboard-cli/pkg/models"
)

// GetServices lists every service tracked by the dashboard.
func (c *StashboardClient) GetServices() ([]models.Service, error) {
	var services []models.Service

	if err := c.do(c.HTTP.R(), http.MethodGet, "/services", &services); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetService fetches a single service by id.
func (c *StashboardClient) GetService(serviceID string) (*models.Service, error) {
	var svc models.Service

	req := c.HTTP.R().SetPathParam("id", serviceID)
	if err := c.do(req, http.MethodGet, "/services/{id}", &svc); err != nil {
		return nil, fmt.Errorf("failed to get service %s: %w", serviceID, err)
	}
	return &svc, nil
}

// CreateService registers a new service and returns it with its
// server-assigned id.
func (c *StashboardClient) CreateService(name, description string) (*models.Service, error) {
	var svc models.Service

	req := c.HTTP.R().SetFormData(map[string]string{
		"name":        name,
		"description": description,
	})
	if err := c.do(req, http.MethodPost, "/services", &svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// UpdateService replaces the name and description of an existing service.
func (c *StashboardClient) UpdateService(serviceID, name, description string) (*models.Service, error) {
	var svc models.Service

	req := c.HTTP.R().
		SetPathParam("id", serviceID).
		SetFormData(map[string]string{
			"name":        name,
			"description": description,
		})
	if err := c.do(req, http.MethodPost, "/services/{id}", &svc); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", serviceID, err)
	}
	return &svc, nil
}

// DeleteService removes a service and its event history. The server
// echoes the deleted service back.
func (c *StashboardClient) DeleteService(serviceID string) (*models.Service, error) {
	var svc models.Service

	req := c.HTTP.R().SetPathParam("id", serviceID)
	if err := c.do(req, http.MethodDelete, "/services/{id}", &svc); err != nil {
		return nil, fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	return &svc, nil
}
