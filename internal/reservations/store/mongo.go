package store

import (
	"context"
	"fmt"

	"tessera/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingCollection = "booking_records"

// MongoStore is the MongoDB-backed booking record set. The booking number is
// the document _id, so a retried insert of the same record cannot create a
// second copy. Serialization of check-then-commit still comes from the
// service's slot lock, not from the database.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(bookingCollection),
	}
}

// Snapshot returns all records in commit order.
func (s *MongoStore) Snapshot(ctx context.Context) ([]model.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query booking records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []model.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode booking records: %w", err)
	}

	return records, nil
}

// Append inserts the record. A single insert is atomic on the server, so a
// failed append leaves no partial state.
func (s *MongoStore) Append(ctx context.Context, record model.BookingRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert booking record: %w", err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
