package mapquest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"trip-planner-cli/internal/domain"
	"trip-planner-cli/internal/platform/obs"
)

const defaultBaseURL = "https://www.mapquestapi.com"

// Client implements RouteProvider against the MapQuest Directions API.
//
// One lookup is one GET to /directions/v2/route with the key, origin and
// destination as query parameters. The embedded http.Client enforces the
// 10 second upper bound on each request; nothing is retried.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// NewClient builds a directions client for the given API key. The key is
// passed through as-is; the remote service rejects bad keys itself.
func NewClient(apiKey string) *Client {
	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// GetRoute fetches driving directions for one origin/destination pair.
func (c *Client) GetRoute(
	ctx context.Context,
	origin string,
	destination string,
) (_ *domain.RouteDocument, err error) {
	defer obs.Time(ctx, "mapquest.GetRoute")(&err)

	endpoint := c.baseURL + "/directions/v2/route"

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("get route request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("from", origin)
	q.Set("to", destination)
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read route response: %w", err)
	}

	doc, err := domain.DecodeRouteDocument(body)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	return doc, nil
}
