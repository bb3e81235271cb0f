package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
)

// Client calls the OpenWeather current-weather API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeather client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// currentResponse mirrors the subset of the provider payload we read
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

// Raw fetches the current weather for location and returns the provider's
// JSON body untouched. The empty-location check runs before any network
// call so a blank stored location never reaches the provider.
func (c *Client) Raw(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	endpoint := fmt.Sprintf("%s?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.Upstream("weather service unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.Upstream("weather service unavailable")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.Upstream(fmt.Sprintf("weather provider returned %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}

// Current fetches and parses the current weather for location
func (c *Client) Current(ctx context.Context, location string) (*entities.WeatherReport, error) {
	body, err := c.Raw(ctx, location)
	if err != nil {
		return nil, err
	}

	var parsed currentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domainerrors.Upstream("weather provider returned malformed payload")
	}

	report := &entities.WeatherReport{
		Location:    parsed.Name,
		Temperature: parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
		Rainfall:    parsed.Rain["1h"],
	}
	if report.Location == "" {
		report.Location = location
	}
	if len(parsed.Weather) > 0 {
		report.Description = parsed.Weather[0].Description
	}
	return report, nil
}
