// Package acl implements the outbound anti-corruption-layer client services
// use to consult a sibling service's read endpoints. The caller's inbound
// bearer token is forwarded verbatim; the callee re-verifies it on its own.
// There is no service-to-service secret.
package acl

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// Client performs authenticated GET calls against one sibling service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates an ACL client for the sibling service at baseURL.
// The underlying HTTP client keeps its default timeout behavior; a slow
// sibling blocks the calling request.
func NewClient(baseURL string, log logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log.WithComponent("acl_client"),
	}
}

// FetchJSON performs GET <base>/<path> forwarding the inbound bearer token
// from ctx and decodes the response body into out. It reports present (true)
// only on a 2xx response with a decodable body. Every other outcome (4xx,
// 5xx, network failure, timeout, undecodable body) uniformly reports
// absent: callers must not distinguish "does not exist" from "unreachable".
// When no inbound credential exists the call proceeds without an
// Authorization header.
func (c *Client) FetchJSON(ctx context.Context, path string, out interface{}) bool {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Error(ctx, "building ACL request failed", err, logger.Fields{"url": url})
		return false
	}

	if token, ok := security.BearerTokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		c.log.Warn(ctx, "no bearer token on inbound request, making unauthenticated call", logger.Fields{"url": url})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "ACL call failed", err, logger.Fields{"url": url})
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "ACL call returned non-2xx", logger.Fields{"url": url, "status": resp.StatusCode})
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error(ctx, "decoding ACL response failed", err, logger.Fields{"url": url})
		return false
	}

	return true
}
