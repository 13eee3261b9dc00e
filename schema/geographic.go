package schema

// GeoJSON is a point in GeoJSON form, coordinates ordered lon, lat.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

const (
	// GeocodeCollection caches resolved addresses in mongodb.
	GeocodeCollection = "geocodes"
)

// GeocodeRecord is a cached geocoding resolution, keyed by the normalized
// address text.
type GeocodeRecord struct {
	Address   string   `json:"address" bson:"address"`
	Location  *GeoJSON `json:"location" bson:"location"`
	Formatted string   `json:"formatted" bson:"formatted"`
	CreatedAt int64    `json:"created_at" bson:"created_at"`
}
