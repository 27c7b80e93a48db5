package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// HTTPCountryLookup queries a country.is compatible endpoint:
// GET {BaseURL}/{ip} -> {"ip":"...","country":"KR"}.
type HTTPCountryLookup struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPCountryLookup(baseURL string) *HTTPCountryLookup {
	return &HTTPCountryLookup{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
	}
}

type countryResponse struct {
	IP      string `json:"ip"`
	Country string `json:"country"`
}

func (l *HTTPCountryLookup) Country(ctx context.Context, ip net.IP) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.BaseURL+"/"+ip.String(), nil)
	if err != nil {
		return "", fmt.Errorf("building country request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting country: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("country lookup status %d", resp.StatusCode)
	}

	var body countryResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding country response: %w", err)
	}
	if body.Country == "" {
		return "", fmt.Errorf("country lookup returned no country")
	}
	return body.Country, nil
}
