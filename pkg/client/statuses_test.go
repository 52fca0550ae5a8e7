package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatuses(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`[{"id":"up","name":"Up","description":"all good","level":"NORMAL","image":"tick-circle"},
		  {"id":"down","name":"Down","description":"outage","level":"DOWN","image":"cross-circle"}]`))

	statuses, err := c.GetStatuses()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/statuses", rec.Path)

	require.Len(t, statuses, 2)
	assert.Equal(t, "up", statuses[0].ID)
	assert.Equal(t, "NORMAL", statuses[0].Level)
	assert.Equal(t, "cross-circle", statuses[1].Image)
}

func TestGetStatus(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"up","name":"Up","description":"all good","level":"NORMAL","image":"tick-circle"}`))

	status, err := c.GetStatus("up")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/statuses/up", rec.Path)
	assert.Equal(t, "Up", status.Name)
}

func TestCreateStatus(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"degraded","name":"Degraded","description":"partial outage","level":"WARNING","image":"clock"}`))

	status, err := c.CreateStatus("Degraded", "partial outage", "WARNING", "clock")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/statuses", rec.Path)
	assert.Equal(t, "Degraded", rec.Form.Get("name"))
	assert.Equal(t, "partial outage", rec.Form.Get("description"))
	assert.Equal(t, "WARNING", rec.Form.Get("level"))
	assert.Equal(t, "clock", rec.Form.Get("image"))

	assert.Equal(t, "degraded", status.ID)
}

func TestGetStatusImages(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"images":[{"name":"tick-circle","url":"/images/status/tick-circle.png"},
		            {"name":"cross-circle","url":"/images/status/cross-circle.png"}]}`))

	images, err := c.GetStatusImages()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/status-images", rec.Path)

	// The payload is unwrapped from the "images" field.
	require.Len(t, images, 2)
	assert.Equal(t, "tick-circle", images[0].Name)
	assert.Equal(t, "/images/status/cross-circle.png", images[1].URL)
}

func TestGetStatusImages_MalformedBody(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK, `<html>login page</html>`))

	_, err := c.GetStatusImages()

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}
