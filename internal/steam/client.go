// Package steam talks to the Steam storefront and Web API: paginated
// review fetching, app-list download, and current-player polling.
package steam

import (
	"net/http"
	"os"
	"time"
)

const (
	defaultStoreURL = "https://store.steampowered.com"
	defaultAPIURL   = "https://api.steampowered.com"

	// Steam rejects page sizes above 100.
	maxPageSize = 100
)

// Client is a Steam API client. All methods are non-retrying: a failed
// request terminates only the operation it belongs to.
type Client struct {
	storeURL string
	apiURL   string
	token    string
	pageSize int
	client   *http.Client
}

// NewClient creates a client. The access token is read from the given
// environment variable; an empty token omits the parameter, which Steam
// accepts for public data at reduced rate limits.
func NewClient(storeURL, apiURL, tokenEnv string, pageSize int) *Client {
	if storeURL == "" {
		storeURL = defaultStoreURL
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var token string
	if tokenEnv != "" {
		token = os.Getenv(tokenEnv)
	}

	return &Client{
		storeURL: storeURL,
		apiURL:   apiURL,
		token:    token,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured returns whether an access token is available.
func (c *Client) IsConfigured() bool {
	return c.token != ""
}
