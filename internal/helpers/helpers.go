package helpers

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kujivinjari/backend/internal/models"
)

// PublicDocument reshapes a stored document for the wire: the internal _id is
// removed and re-inserted as the string field "id", and BSON datetimes are
// rendered as RFC3339 strings. Applied uniformly to every document returned
// to a client.
func PublicDocument(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = publicValue(v)
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		out["id"] = oid.Hex()
	}
	return out
}

func PublicDocuments(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, PublicDocument(doc))
	}
	return out
}

func publicValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case bson.M:
		out := bson.M{}
		for k, vv := range t {
			out[k] = publicValue(vv)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = publicValue(vv)
		}
		return out
	default:
		return v
	}
}

// ParseLimit reads a raw limit query value. Absent means DefaultLimit; any
// value above MaxLimit is clamped, never rejected.
func ParseLimit(raw string) (int64, error) {
	if raw == "" {
		return models.DefaultLimit, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", models.ErrValidation)
	}
	if n > models.MaxLimit {
		n = models.MaxLimit
	}
	return n, nil
}
