package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/schema"
)

var (
	ErrLocationNotFound = fmt.Errorf("location not found")
)

// LocationReader - read operations of the location collection
type LocationReader interface {
	ListLocations(filter LocationFilter, sortBy string, skip, limit int64) ([]schema.Location, int64, error)
	FindLocationCandidates(filter LocationFilter, sortBy string, max int64) ([]schema.Location, error)
	GetLocation(idOrSlug string) (*schema.Location, error)
	ListLocationsByIDs(ids []string) ([]schema.Location, error)
}

// ListLocations returns one page of locations matching the filter in the
// given sort order, along with the total number of matches
func (m *mongoDB) ListLocations(filter LocationFilter, sortBy string, skip, limit int64) ([]schema.Location, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	query := BuildLocationFilter(filter)

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"filter": filter,
			"error":  err,
		}).Error("count locations")
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(LocationSort(sortBy)).
		SetSkip(skip).
		SetLimit(limit)

	locations, err := m.findLocations(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

// FindLocationCandidates returns at most max locations matching the
// filter, for queries that are refined in memory afterwards
func (m *mongoDB) FindLocationCandidates(filter LocationFilter, sortBy string, max int64) ([]schema.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(LocationSort(sortBy)).
		SetLimit(max)

	locations, err := m.findLocations(ctx, BuildLocationFilter(filter), opts)
	if err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("location candidates query gets %d records (max %d)", len(locations), max)

	return locations, nil
}

// GetLocation finds a published location by its id or by its slug
func (m *mongoDB) GetLocation(idOrSlug string) (*schema.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	ref := bson.A{bson.M{"slug": idOrSlug}}
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		ref = append(ref, bson.M{"_id": oid})
	}
	query := bson.M{
		"status": consts.StatusPublished,
		"$or":    ref,
	}

	var location schema.Location
	if err := c.FindOne(ctx, query).Decode(&location); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &location, nil
}

// ListLocationsByIDs returns the published locations of the given ids in
// the order of the ids. Unknown or unpublished ids are skipped.
func (m *mongoDB) ListLocationsByIDs(ids []string) ([]schema.Location, error) {
	if len(ids) == 0 {
		return []schema.Location{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).Warnf("skip invalid location id: %s", id)
			continue
		}
		oids = append(oids, oid)
	}

	// $in query doesn't guarantee order
	// use aggregation to sort the documents according to the query order
	pipeline := []bson.M{
		{"$match": bson.M{"_id": bson.M{"$in": oids}, "status": consts.StatusPublished}},
		{"$addFields": bson.M{"__order": bson.M{"$indexOfArray": bson.A{oids, "$_id"}}}},
		{"$sort": bson.M{"__order": 1}},
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	return decodeLocations(ctx, cursor)
}

func (m *mongoDB) findLocations(ctx context.Context, query bson.M, opts *options.FindOptions) ([]schema.Location, error) {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query locations")
		return nil, fmt.Errorf("location query with error: %s", err)
	}
	defer cur.Close(ctx)

	return decodeLocations(ctx, cur)
}

// decodeLocations reads every document of a cursor. Documents which no
// longer fit the location schema are logged and skipped.
func decodeLocations(ctx context.Context, cur *mongo.Cursor) ([]schema.Location, error) {
	locations := make([]schema.Location, 0)
	for cur.Next(ctx) {
		var l schema.Location
		if err := cur.Decode(&l); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"error":  err,
				"id":     cur.Current.Lookup("_id").String(),
			}).Warn("skip undecodable location")
			continue
		}
		locations = append(locations, l)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
