package client

import "fmt"

// ConfigError reports an unusable client configuration, detected at
// construction time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid client configuration: " + e.Reason
}

// TransportError reports a failed HTTP exchange. Either the request
// never completed (Err is set) or the server answered with a non-2xx
// status (StatusCode and Body are set).
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a 2xx response whose body is not valid JSON for
// the expected shape. Body holds the raw bytes for inspection.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
