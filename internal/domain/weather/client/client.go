package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com"

// Current текущая погода в точке
type Current struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
}

type forecastResponse struct {
	CurrentWeather *Current `json:"current_weather"`
}

// Client клиент Open-Meteo
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создает клиент. Пустой baseURL означает публичный сервис Open-Meteo.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// CurrentWeather запрашивает текущую погоду по координатам
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (Current, error) {
	const op = "client.CurrentWeather"

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("timezone", "Asia/Tokyo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return Current{}, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Current{}, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Current{}, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Current{}, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	if body.CurrentWeather == nil {
		return Current{}, fmt.Errorf("%s: response has no current_weather", op)
	}
	return *body.CurrentWeather, nil
}
