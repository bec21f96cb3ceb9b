package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	// DefaultLimit applies when a listing request names no limit.
	DefaultLimit = 50
	// MaxLimit is the hard ceiling for any listing request.
	MaxLimit = 200
)

// DocumentStore is the collection-parameterized access layer shared by all
// services. Implementations return ErrStorageUnavailable when no backing
// client exists and ErrNotFound on single-document misses.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	CreateDocuments(ctx context.Context, collection string, docs []any) (int, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	GetDocument(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error)
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Ping(ctx context.Context) error
}

// MongoRepo implements DocumentStore on a shared mongo client. A nil client
// is legal: every call then fails with ErrStorageUnavailable, which keeps a
// process without DATABASE_URL bootable for diagnostics.
type MongoRepo struct {
	client *mongo.Client
	dbName string
}

func NewMongoRepo(client *mongo.Client, dbName string) *MongoRepo {
	return &MongoRepo{client: client, dbName: dbName}
}

func (m *MongoRepo) collection(name string) (*mongo.Collection, error) {
	if m.client == nil {
		return nil, ErrStorageUnavailable
	}
	return m.client.Database(m.dbName).Collection(name), nil
}

func (m *MongoRepo) CreateDocument(ctx context.Context, collectionName string, doc any) (string, error) {
	col, err := m.collection(collectionName)
	if err != nil {
		return "", err
	}
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collectionName, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *MongoRepo) CreateDocuments(ctx context.Context, collectionName string, docs []any) (int, error) {
	col, err := m.collection(collectionName)
	if err != nil {
		return 0, err
	}
	res, err := col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert many into %s: %w", collectionName, err)
	}
	return len(res.InsertedIDs), nil
}

func (m *MongoRepo) GetDocuments(ctx context.Context, collectionName string, filter bson.M, limit int64) ([]bson.M, error) {
	col, err := m.collection(collectionName)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collectionName, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document from %s: %w", collectionName, err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error in %s: %w", collectionName, err)
	}
	return docs, nil
}

func (m *MongoRepo) GetDocument(ctx context.Context, collectionName string, filter bson.M) (bson.M, error) {
	col, err := m.collection(collectionName)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", collectionName, err)
	}
	return doc, nil
}

func (m *MongoRepo) CountDocuments(ctx context.Context, collectionName string, filter bson.M) (int64, error) {
	col, err := m.collection(collectionName)
	if err != nil {
		return 0, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collectionName, err)
	}
	return count, nil
}

func (m *MongoRepo) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if m.client == nil {
		return nil, ErrStorageUnavailable
	}
	names, err := m.client.Database(m.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	if m.client == nil {
		return ErrStorageUnavailable
	}
	return m.client.Ping(ctx, nil)
}
