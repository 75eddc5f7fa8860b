package controllers

import (
	"context"
	"errors"
	"fmt"

	"directory-service/internal/configs"
	"directory-service/internal/errs"
	"directory-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// Database is the document store the handlers depend on, addressed by
// collection name.
type Database interface {
	ListAll(ctx context.Context, collection string) ([]models.Record, error)
	InsertOne(ctx context.Context, collection string, record models.Record) (interface{}, error)
	// AppendToArrayField pushes value onto field of the document whose _id is
	// id and returns the number of matched documents. Zero is not an error.
	AppendToArrayField(ctx context.Context, collection string, id primitive.ObjectID, field string, value interface{}) (int64, error)
	Ping(ctx context.Context) error
}

// MongoDB implements the Database interface
type MongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoDB creates a new MongoDB instance
func NewMongoDB(client *mongo.Client, database string) *MongoDB {
	return &MongoDB{
		client:   client,
		database: database,
	}
}

// Name is the database name, used in lifecycle logs.
func (db *MongoDB) Name() string {
	return db.database
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *MongoDB) Ping(ctx context.Context) error {
	if err := db.client.Ping(ctx, nil); err != nil {
		return classify("ping", err)
	}
	return nil
}

func (db *MongoDB) ListAll(ctx context.Context, collection string) ([]models.Record, error) {
	cursor, err := configs.GetCollection(db.client, db.database, collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, classify("find "+collection, err)
	}

	records := []models.Record{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, classify("read "+collection, err)
	}
	return records, nil
}

// InsertOne stores record and returns the identifier it was stored under,
// which is a store assigned ObjectID unless the caller supplied _id.
func (db *MongoDB) InsertOne(ctx context.Context, collection string, record models.Record) (interface{}, error) {
	result, err := configs.GetCollection(db.client, db.database, collection).InsertOne(ctx, record)
	if err != nil {
		return nil, classify("insert "+collection, err)
	}
	return result.InsertedID, nil
}

func (db *MongoDB) AppendToArrayField(ctx context.Context, collection string, id primitive.ObjectID, field string, value interface{}) (int64, error) {
	result, err := configs.GetCollection(db.client, db.database, collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{field: value}},
	)
	if err != nil {
		return 0, classify("update "+collection, err)
	}
	return result.MatchedCount, nil
}

// ParseID converts the hex form of an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", hex, errs.ErrInvalidIdentifier)
	}
	return id, nil
}

// classify wraps a driver error with the matching errs sentinel.
func classify(op string, err error) error {
	var selection topology.ServerSelectionError
	var writeErr mongo.WriteException

	switch {
	case errors.Is(err, mongo.ErrClientDisconnected),
		errors.As(err, &selection),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return fmt.Errorf("%s: %w: %v", op, errs.ErrStoreUnavailable, err)
	case mongo.IsDuplicateKeyError(err), errors.As(err, &writeErr):
		return fmt.Errorf("%s: %w: %v", op, errs.ErrWriteRejected, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
