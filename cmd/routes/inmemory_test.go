package routes

import (
	"context"
	"sync"

	"directory-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// inMemoryDB keeps records per collection, assigning an ObjectID _id the
// way the store does.
type inMemoryDB struct {
	mu          sync.Mutex
	collections map[string][]models.Record
}

func (db *inMemoryDB) ListAll(ctx context.Context, collection string) ([]models.Record, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]models.Record{}, db.collections[collection]...), nil
}

func (db *inMemoryDB) InsertOne(ctx context.Context, collection string, record models.Record) (interface{}, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.collections == nil {
		db.collections = map[string][]models.Record{}
	}
	if _, ok := record["_id"]; !ok {
		record["_id"] = primitive.NewObjectID()
	}
	db.collections[collection] = append(db.collections[collection], record)
	return record["_id"], nil
}

func (db *inMemoryDB) AppendToArrayField(ctx context.Context, collection string, id primitive.ObjectID, field string, value interface{}) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, record := range db.collections[collection] {
		if record["_id"] != id {
			continue
		}
		values, _ := record[field].([]interface{})
		record[field] = append(values, value)
		return 1, nil
	}
	return 0, nil
}

func (db *inMemoryDB) Ping(ctx context.Context) error {
	return nil
}
