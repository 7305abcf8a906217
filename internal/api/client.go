// Package api implements the AlAdhan REST client used as the remote
// prayer-times source and for Gregorian-to-Hijri conversion.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vakitapp/vakit/internal/astro"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// ErrInvalidLocation reports coordinates or query parameters rejected by the
// remote service (HTTP 400).
var ErrInvalidLocation = errors.New("invalid location")

// StatusError is a transport-level failure: a non-2xx HTTP status or an
// API-level error code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("aladhan API error (status %d): %s", e.StatusCode, e.Message)
}

// DecodeError reports a malformed response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("aladhan response decode failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// methodCodes maps calculation methods to the remote service's integer
// identifiers. The table is fixed by the AlAdhan API.
var methodCodes = map[astro.Method]int{
	astro.MethodMuslimWorldLeague: 3,
	astro.MethodNorthAmerica:      2,
	astro.MethodEgyptian:          5,
	astro.MethodUmmAlQura:         4,
	astro.MethodKarachi:           1,
	astro.MethodTehran:            7,
	astro.MethodTurkey:            13,
	astro.MethodDubai:             8,
	astro.MethodKuwait:            9,
	astro.MethodQatar:             10,
	astro.MethodSingapore:         11,
}

// MethodCode returns the remote integer code for a calculation method.
// Methods the service does not support degrade to the nearest supported
// code (moonsightingCommittee maps to Muslim World League) rather than
// failing.
func MethodCode(m astro.Method) int {
	if code, ok := methodCodes[m]; ok {
		return code
	}
	return methodCodes[astro.MethodMuslimWorldLeague]
}

// Client communicates with the AlAdhan prayer times API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the AlAdhan API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// Timings fetches prayer times for the given date and coordinates.
// school is 0 (Shafi) or 1 (Hanafi); timezone is the IANA identifier the
// response times should be interpreted in.
func (c *Client) Timings(ctx context.Context, date time.Time, lat, lon float64, method astro.Method, school int, timezone string) (*Response, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("method", fmt.Sprintf("%d", MethodCode(method)))
	params.Set("school", fmt.Sprintf("%d", school))
	if timezone != "" {
		params.Set("timezonestring", timezone)
	}

	var resp Response
	if err := c.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.Code, Message: resp.Status}
	}
	return &resp, nil
}

// HijriDate converts a Gregorian date to Hijri via the gToH endpoint.
// Secondary capability, independent of the timings contract.
func (c *Client) HijriDate(ctx context.Context, date time.Time) (*HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH/%s", c.BaseURL, date.Format("02-01-2006"))

	var resp HijriResponse
	if err := c.doRequest(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Hijri, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building API request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &StatusError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadRequest:
		return ErrInvalidLocation
	case resp.StatusCode == http.StatusForbidden:
		return &StatusError{StatusCode: resp.StatusCode, Message: "rate limit exceeded"}
	case resp.StatusCode == http.StatusNotFound:
		return &StatusError{StatusCode: resp.StatusCode, Message: "not found"}
	case resp.StatusCode >= 500:
		return &StatusError{StatusCode: resp.StatusCode, Message: "server error"}
	default:
		return &StatusError{StatusCode: resp.StatusCode, Message: "unexpected status"}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
