package geocoding

import (
	"context"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the address could not be resolved to a coordinate.
	ErrNotFound = fmt.Errorf("no coordinates found for the given address")
)

// Point is a resolved coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder - interface for resolving a free-text address to a point
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Point, error)
}

// MultipleGeocoderErrors collects the failures of every geocoder in a chain.
type MultipleGeocoderErrors struct {
	errors []error
}

func (e *MultipleGeocoderErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleGeocoderErrors(errors []error) *MultipleGeocoderErrors {
	return &MultipleGeocoderErrors{
		errors: errors,
	}
}
