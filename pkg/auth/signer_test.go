package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignedClient_SignsRequests(t *testing.T) {
	var authorization string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(ts.Close)

	c := NewSignedClient(nil, "my-token", "my-secret")
	resp, err := c.Get(ts.URL + "/api/v1/services")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, authorization, "OAuth")
	assert.Contains(t, authorization, `oauth_consumer_key="anonymous"`)
	assert.Contains(t, authorization, `oauth_token="my-token"`)
	assert.Contains(t, authorization, `oauth_signature_method="HMAC-SHA1"`)
	assert.Contains(t, authorization, "oauth_signature=")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNewSignedClient_UsesBaseTransport(t *testing.T) {
	var used bool
	base := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			used = true
			rec := httptest.NewRecorder()
			rec.WriteHeader(http.StatusNoContent)
			return rec.Result(), nil
		}),
	}

	c := NewSignedClient(base, "my-token", "my-secret")
	resp, err := c.Get("https://status.example.com/api/v1/services")
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, used, "request should go through the supplied base transport")
}
