package client

import (
	"fmt"
	"net/http"

	"stashboard-cli/pkg/models"
)

// GetLevels lists the severity levels statuses may use.
func (c *StashboardClient) GetLevels() ([]string, error) {
	var respData models.LevelListResponse

	if err := c.do(c.HTTP.R(), http.MethodGet, "/levels", &respData); err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	return respData.Levels, nil
}
