// Package client issues single authenticated requests against the
// node-orchestrator HTTP API and classifies their outcomes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Sender sends individual requests to the API, attaching a bearer token
// when one is configured. It is safe for concurrent use.
type Sender struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewSender creates a sender for the API at baseURL. token may be empty, in
// which case requests go out unauthenticated. A timeout of zero selects
// DefaultTimeout.
func NewSender(baseURL, token string, timeout time.Duration) *Sender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Sender{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// Response is the decoded outcome of a successful request.
type Response struct {
	StatusCode int
	Body       interface{} // decoded JSON body, nil when the server sent none
}

// RejectedError is a client rejection: the server answered 400 and the
// payload needs fixing. The body is preserved verbatim for inspection.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected with HTTP %d: %s", e.StatusCode, e.Body)
}

// HTTPError is an unexpected status outside the success set and 400.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError means the request succeeded but the response body was not
// valid JSON. Distinct from a transport failure so callers can tell
// "accepted but unreadable answer" apart from "request never landed".
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("HTTP %d with undecodable body: %v", e.StatusCode, e.Err)
}

// Do sends one request. The target URL is baseURL/objectType, with /id
// appended when id is non-empty (get, update and delete; create never
// supplies an id). A nil body sends no payload.
//
// Status classification: 200, 201 and 204 are success with the decoded body
// where present; 400 returns *RejectedError; anything else *HTTPError.
// Transport-level failures come back wrapped, without a Response.
func (s *Sender) Do(ctx context.Context, method, objectType, id string, body interface{}) (*Response, error) {
	url := s.baseURL + "/" + objectType
	if id != "" {
		url += "/" + id
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		r := &Response{StatusCode: resp.StatusCode}
		if len(bytes.TrimSpace(respBytes)) > 0 {
			if err := json.Unmarshal(respBytes, &r.Body); err != nil {
				return nil, &DecodeError{StatusCode: resp.StatusCode, Body: string(respBytes), Err: err}
			}
		}
		return r, nil
	case http.StatusBadRequest:
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: string(respBytes)}
	default:
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBytes)}
	}
}

// GetHTTPError extracts an HTTPError from err if possible.
func GetHTTPError(err error) (*HTTPError, bool) {
	httpErr, ok := err.(*HTTPError)
	return httpErr, ok
}

// GetRejectedError extracts a RejectedError from err if possible.
func GetRejectedError(err error) (*RejectedError, bool) {
	rejErr, ok := err.(*RejectedError)
	return rejErr, ok
}
