package geocoding

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

// CachedGeocoder consults the mongodb geocode cache before falling through
// to the wrapped geocoder. Cache failures are logged and treated as misses.
type CachedGeocoder struct {
	cache store.GeoCache
	next  Geocoder
}

func NewCachedGeocoder(cache store.GeoCache, next Geocoder) *CachedGeocoder {
	return &CachedGeocoder{
		cache: cache,
		next:  next,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (*Point, error) {
	record, err := c.cache.CachedPosition(address)
	if err == nil && record.Location != nil && len(record.Location.Coordinates) == 2 {
		return &Point{
			Latitude:  record.Location.Coordinates[1],
			Longitude: record.Location.Coordinates[0],
		}, nil
	}
	if err != nil && err != mongo.ErrNoDocuments {
		log.WithField("prefix", "geocoding").WithError(err).Warn("geocode cache lookup failed")
	}

	point, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	_ = c.cache.SavePosition(schema.GeocodeRecord{
		Address: address,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{point.Longitude, point.Latitude},
		},
	})

	return point, nil
}
