package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpconnect/helpconnect-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// GeoCache - interface for cached geocoding resolutions
type GeoCache interface {
	CachedPosition(address string) (*schema.GeocodeRecord, error)
	SavePosition(record schema.GeocodeRecord) error
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewGeoCache - return mongo backed geocode cache
func NewGeoCache(client *mongo.Client, database string) GeoCache {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// CachedPosition returns a previously resolved address, or mongo.ErrNoDocuments
func (m mongoDB) CachedPosition(address string) (*schema.GeocodeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GeocodeCollection)

	var record schema.GeocodeRecord
	if err := c.FindOne(ctx, bson.M{"address": normalizeAddress(address)}).Decode(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

// SavePosition upserts a resolved address into the cache
func (m mongoDB) SavePosition(record schema.GeocodeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record.Address = normalizeAddress(record.Address)
	record.CreatedAt = time.Now().UTC().Unix()

	c := m.client.Database(m.database).Collection(schema.GeocodeCollection)

	_, err := c.UpdateOne(ctx,
		bson.M{"address": record.Address},
		bson.M{"$set": record},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("save geocode record")
	}

	return err
}
