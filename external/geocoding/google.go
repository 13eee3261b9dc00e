package geocoding

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	googleLogPrefix = "geoinfo"
	defaultTimeout  = 5 * time.Second
)

// GoogleGeocoder resolves addresses through the Google Maps geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": googleLogPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &GoogleGeocoder{
		client: client,
	}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*Point, error) {
	log.WithFields(log.Fields{
		"prefix":  googleLogPrefix,
		"address": address,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
	if err != nil {
		return nil, err
	}

	if len(geos) == 0 {
		return nil, ErrNotFound
	}

	return &Point{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}
