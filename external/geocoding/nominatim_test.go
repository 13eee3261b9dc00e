package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominatimGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "221B Baker Street, London", r.URL.Query().Get("q"))
		assert.Equal(t, "HelpConnect Application", r.Header.Get("User-Agent"))

		fmt.Fprint(w, `[{"lat":"51.5237","lon":"-0.1586"},{"lat":"0","lon":"0"}]`)
	}))
	defer server.Close()

	g := NewNominatimGeocoder(server.URL, server.Client())
	point, err := g.Geocode(context.Background(), "221B Baker Street, London")
	assert.NoError(t, err)
	if assert.NotNil(t, point) {
		assert.Equal(t, 51.5237, point.Latitude)
		assert.Equal(t, -0.1586, point.Longitude)
	}
}

func TestNominatimGeocodeNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	g := NewNominatimGeocoder(server.URL, server.Client())
	_, err := g.Geocode(context.Background(), "nowhere in particular")
	assert.Equal(t, ErrNotFound, err)
}

func TestNominatimGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewNominatimGeocoder(server.URL, server.Client())
	_, err := g.Geocode(context.Background(), "221B Baker Street, London")
	assert.Error(t, err)
	assert.NotEqual(t, ErrNotFound, err)
}
