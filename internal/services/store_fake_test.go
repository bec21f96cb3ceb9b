package services

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kujivinjari/backend/internal/models"
)

// memStore is an in-memory DocumentStore. Documents pass through a BSON
// round-trip on insert so values carry the same types a real cursor decode
// would produce.
type memStore struct {
	mu        sync.Mutex
	cols      map[string][]bson.M
	lastLimit int64
	err       error
}

func newMemStore() *memStore {
	return &memStore{cols: map[string][]bson.M{}}
}

func toDoc(v any) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if k == "$text" {
			term := ""
			if m, ok := v.(bson.M); ok {
				term, _ = m["$search"].(string)
			}
			if !textMatch(doc, term) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func textMatch(doc bson.M, term string) bool {
	term = strings.ToLower(term)
	for _, v := range doc {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func (f *memStore) CreateDocument(_ context.Context, collection string, doc any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	f.cols[collection] = append(f.cols[collection], m)
	return id.Hex(), nil
}

func (f *memStore) CreateDocuments(ctx context.Context, collection string, docs []any) (int, error) {
	for _, doc := range docs {
		if _, err := f.CreateDocument(ctx, collection, doc); err != nil {
			return 0, err
		}
	}
	return len(docs), nil
}

func (f *memStore) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}
	out := []bson.M{}
	for _, doc := range f.cols[collection] {
		if matches(doc, filter) {
			out = append(out, doc)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *memStore) GetDocument(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.cols[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *memStore) CountDocuments(_ context.Context, collection string, filter bson.M) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, doc := range f.cols[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (f *memStore) CollectionNames(_ context.Context, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.cols))
	for name := range f.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (f *memStore) Ping(context.Context) error {
	return f.err
}
