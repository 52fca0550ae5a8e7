package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"stashboard-cli/pkg/auth"
)

// All endpoints live under this base path
const apiBase = "/api/v1"

// StashboardClient talks to a Stashboard status-dashboard REST API.
// It holds no mutable state after New, so a single instance is safe
// to share between goroutines.
type StashboardClient struct {
	HTTP   *resty.Client
	Config ClientConfig
}

type ClientConfig struct {
	BaseURL string
	Token   string // per-account OAuth token
	Secret  string // per-account OAuth token secret

	// Transport optionally overrides the http.Client that performs the
	// signed exchange. Timeouts and TLS settings belong there; the
	// client itself imposes none.
	Transport *http.Client
}

// New validates the configuration and returns a ready client.
// The base URL must carry a scheme and host (e.g. https://status.example.com).
func New(cfg ClientConfig) (*StashboardClient, error) {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.BaseURL == "" {
		return nil, &ConfigError{Reason: "base URL is required"}
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigError{Reason: fmt.Sprintf("base URL %q is malformed", cfg.BaseURL)}
	}

	r := resty.NewWithClient(auth.NewSignedClient(cfg.Transport, cfg.Token, cfg.Secret))
	r.SetBaseURL(cfg.BaseURL + apiBase)
	r.SetHeader("Accept", "application/json")

	return &StashboardClient{
		HTTP:   r,
		Config: cfg,
	}, nil
}

// do executes the request and, when out is non-nil, decodes the JSON
// response body into it. Responses are decoded here rather than via
// resty's SetResult so a bad body surfaces as a DecodeError instead of
// being folded into the transport error path.
func (c *StashboardClient) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.IsError() {
		return &TransportError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &DecodeError{Body: resp.Body(), Err: err}
		}
	}
	return nil
}
