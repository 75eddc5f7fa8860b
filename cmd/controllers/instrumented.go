package controllers

import (
	"context"

	"directory-service/internal/metrics"
	"directory-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type instrumentedDB struct {
	next    Database
	metrics *metrics.Metrics
}

// Instrument counts every operation on db by outcome.
func Instrument(db Database, m *metrics.Metrics) Database {
	return &instrumentedDB{next: db, metrics: m}
}

func (db *instrumentedDB) ListAll(ctx context.Context, collection string) ([]models.Record, error) {
	records, err := db.next.ListAll(ctx, collection)
	db.metrics.ObserveStore("list_all", err)
	return records, err
}

func (db *instrumentedDB) InsertOne(ctx context.Context, collection string, record models.Record) (interface{}, error) {
	id, err := db.next.InsertOne(ctx, collection, record)
	db.metrics.ObserveStore("insert_one", err)
	return id, err
}

func (db *instrumentedDB) AppendToArrayField(ctx context.Context, collection string, id primitive.ObjectID, field string, value interface{}) (int64, error) {
	matched, err := db.next.AppendToArrayField(ctx, collection, id, field, value)
	db.metrics.ObserveStore("append_to_array", err)
	return matched, err
}

func (db *instrumentedDB) Ping(ctx context.Context) error {
	err := db.next.Ping(ctx)
	db.metrics.ObserveStore("ping", err)
	return err
}
