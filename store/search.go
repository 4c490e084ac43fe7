package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/schema"
)

// Searcher - free-text lookups of the non-location collections
type Searcher interface {
	SearchUsers(text string, limit int64) ([]schema.User, error)
	SearchEvents(text string, limit int64) ([]schema.Event, error)
	SearchPosts(text string, limit int64) ([]schema.Post, error)
}

// SearchUsers finds users whose name, username or bio contains text
func (m *mongoDB) SearchUsers(text string, limit int64) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := containsAny([]string{"name", "username", "bio"}, strings.TrimSpace(text))
	opts := options.Find().
		SetSort(bson.D{{"followerCount", -1}, {"_id", 1}}).
		SetLimit(limit)

	users := make([]schema.User, 0)
	if err := m.search(ctx, schema.UserCollection, query, opts, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// SearchEvents finds published events that have not ended yet and whose
// name or description contains text. Soonest events come first.
func (m *mongoDB) SearchEvents(text string, limit int64) ([]schema.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := bson.M{
		"$and": bson.A{
			bson.M{"status": consts.StatusPublished},
			containsAny([]string{"name", "description"}, strings.TrimSpace(text)),
			bson.M{"$or": bson.A{
				bson.M{"endDate": bson.M{"$gte": now}},
				bson.M{"endDate": bson.M{"$exists": false}, "startDate": bson.M{"$gte": now}},
			}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{"startDate", 1}, {"_id", 1}}).
		SetLimit(limit)

	events := make([]schema.Event, 0)
	if err := m.search(ctx, schema.EventCollection, query, opts, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// SearchPosts finds published posts whose title or content contains text,
// newest first
func (m *mongoDB) SearchPosts(text string, limit int64) ([]schema.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"$and": bson.A{
			bson.M{"status": consts.StatusPublished},
			containsAny([]string{"title", "content"}, strings.TrimSpace(text)),
		},
	}
	opts := options.Find().
		SetSort(bson.D{{"createdAt", -1}, {"_id", 1}}).
		SetLimit(limit)

	posts := make([]schema.Post, 0)
	if err := m.search(ctx, schema.PostCollection, query, opts, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *mongoDB) search(ctx context.Context, collection string, query bson.M, opts *options.FindOptions, results interface{}) error {
	c := m.client.Database(m.database).Collection(collection)

	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"collection": collection,
			"error":      err,
		}).Error("search collection")
		return err
	}

	return cur.All(ctx, results)
}
