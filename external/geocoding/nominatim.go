package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const (
	nominatimLogPrefix  = "nominatim"
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	nominatimUserAgent  = "HelpConnect Application"
)

// NominatimGeocoder resolves addresses through the OpenStreetMap Nominatim
// search API. Nominatim requires a descriptive User-Agent on every call.
type NominatimGeocoder struct {
	endpoint   string
	httpClient *http.Client
}

func NewNominatimGeocoder(endpoint string, httpClient *http.Client) *NominatimGeocoder {
	if endpoint == "" {
		endpoint = defaultNominatimURL
	}

	return &NominatimGeocoder{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, address string) (*Point, error) {
	log.WithFields(log.Fields{
		"prefix":  nominatimLogPrefix,
		"address": address,
	}).Info("query geo info")

	query := url.Values{
		"format": []string{"json"},
		"q":      []string{address},
	}

	req, err := http.NewRequest("GET", fmt.Sprintf("%s/search?%s", n.endpoint, query.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim query failed with status: %s", resp.Status)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, err
	}

	return &Point{
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
