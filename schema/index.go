package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexLocationCollection())
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexEventCollection())
	panicIfError(m.IndexPostCollection())
}

// IndexLocationCollection indexes the fields used by the listing filters
// and every supported sort order
func (m *MongoDBIndexer) IndexLocationCollection() error {
	if err := m.createIndex(LocationCollection, mongo.IndexModel{
		Keys: bson.M{
			"slug": 1,
		},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}); err != nil {
		return err
	}

	for _, sortKey := range []string{"createdAt", "averageRating", "reviewCount"} {
		if err := m.createIndex(LocationCollection, mongo.IndexModel{
			Keys: bson.D{
				{"status", 1},
				{sortKey, -1},
			},
		}); err != nil {
			return err
		}
	}

	if err := m.createIndex(LocationCollection, mongo.IndexModel{
		Keys: bson.D{
			{"status", 1},
			{"name", 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(LocationCollection, mongo.IndexModel{
		Keys: bson.M{
			"categories": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"username": 1,
		},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
}

func (m *MongoDBIndexer) IndexEventCollection() error {
	return m.createIndex(EventCollection, mongo.IndexModel{
		Keys: bson.D{
			{"status", 1},
			{"startDate", 1},
		},
	})
}

func (m *MongoDBIndexer) IndexPostCollection() error {
	return m.createIndex(PostCollection, mongo.IndexModel{
		Keys: bson.D{
			{"status", 1},
			{"createdAt", -1},
		},
	})
}
