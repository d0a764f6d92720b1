package steam

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// App is one catalog entry from the Steam app list.
type App struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}

// FetchAppList downloads the full Steam app catalog.
func (c *Client) FetchAppList() ([]App, error) {
	params := url.Values{}
	if c.token != "" {
		params.Set("access_token", c.token)
	}

	reqURL := c.apiURL + "/IStoreService/GetAppList/v1/?" + params.Encode()
	resp, err := c.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("requesting app list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("app list: HTTP %d", resp.StatusCode)
	}

	var result struct {
		Response struct {
			Apps []App `json:"apps"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding app list: %w", err)
	}
	return result.Response.Apps, nil
}

// CurrentPlayers returns the live player count for a title.
func (c *Client) CurrentPlayers(appID int64) (int, error) {
	params := url.Values{"appid": {strconv.FormatInt(appID, 10)}}
	if c.token != "" {
		params.Set("access_token", c.token)
	}

	reqURL := c.apiURL + "/ISteamUserStats/GetNumberOfCurrentPlayers/v1/?" + params.Encode()
	resp, err := c.client.Get(reqURL)
	if err != nil {
		return 0, fmt.Errorf("requesting player count: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("player count for appid %d: HTTP %d", appID, resp.StatusCode)
	}

	var result struct {
		Response struct {
			PlayerCount int `json:"player_count"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decoding player count: %w", err)
	}
	return result.Response.PlayerCount, nil
}
