package geocoding

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// ChainGeocoder tries each geocoder in order and returns the first hit. An
// address no geocoder can resolve yields ErrNotFound; other failures are
// collected into a MultipleGeocoderErrors.
type ChainGeocoder struct {
	geocoders []Geocoder
}

func NewChainGeocoder(geocoders ...Geocoder) *ChainGeocoder {
	return &ChainGeocoder{
		geocoders: geocoders,
	}
}

func (c *ChainGeocoder) Geocode(ctx context.Context, address string) (*Point, error) {
	notFound := false
	errs := make([]error, 0)

	for _, g := range c.geocoders {
		point, err := g.Geocode(ctx, address)
		if err == nil {
			return point, nil
		}

		if err == ErrNotFound {
			notFound = true
			continue
		}

		log.WithField("prefix", "geocoding").WithError(err).Warn("geocoder failed, trying next")
		errs = append(errs, err)
	}

	if notFound || len(errs) == 0 {
		return nil, ErrNotFound
	}

	return nil, NewMultipleGeocoderErrors(errs)
}
