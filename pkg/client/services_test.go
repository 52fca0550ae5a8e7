package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServices(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`[{"id":"svc1","name":"db","description":"database cluster"},
		  {"id":"svc2","name":"web","description":"public frontend"}]`))

	services, err := c.GetServices()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/services", rec.Path)

	require.Len(t, services, 2)
	assert.Equal(t, "svc1", services[0].ID)
	assert.Equal(t, "db", services[0].Name)
	assert.Equal(t, "public frontend", services[1].Description)
}

func TestGetService(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"svc1","name":"db","description":"database cluster"}`))

	svc, err := c.GetService("svc1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/v1/services/svc1", rec.Path)
	assert.Equal(t, "db", svc.Name)
}

func TestGetService_Idempotent(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"svc1","name":"db","description":"database cluster"}`))

	first, err := c.GetService("svc1")
	require.NoError(t, err)
	second, err := c.GetService("svc1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateService(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"generated-id","name":"db","description":"database cluster"}`))

	svc, err := c.CreateService("db", "database cluster")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/services", rec.Path)
	assert.Equal(t, "db", rec.Form.Get("name"))
	assert.Equal(t, "database cluster", rec.Form.Get("description"))

	assert.Equal(t, "generated-id", svc.ID)
}

func TestUpdateService(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"svc1","name":"db-primary","description":"primary database"}`))

	svc, err := c.UpdateService("svc1", "db-primary", "primary database")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/services/svc1", rec.Path)
	assert.Equal(t, "db-primary", rec.Form.Get("name"))
	assert.Equal(t, "primary database", rec.Form.Get("description"))
	assert.Equal(t, "db-primary", svc.Name)
}

func TestDeleteService(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK,
		`{"id":"svc1","name":"db","description":"database cluster"}`))

	svc, err := c.DeleteService("svc1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/api/v1/services/svc1", rec.Path)
	assert.Equal(t, "svc1", svc.ID)
}

func TestGetServices_ServerError(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusInternalServerError, `boom`))

	_, err := c.GetServices()
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.Equal(t, "boom", terr.Body)
}

func TestGetServices_NotFound(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusNotFound, `not here`))

	_, err := c.GetServices()

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusNotFound, terr.StatusCode)
}

func TestGetServices_MalformedBody(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, recordHandler(&rec, http.StatusOK, `{not json`))

	_, err := c.GetServices()
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, []byte(`{not json`), derr.Body)
}
