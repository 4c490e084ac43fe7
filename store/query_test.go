package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildLocationFilterPublishedOnly(t *testing.T) {
	assert.Equal(t, bson.M{"status": "published"}, BuildLocationFilter(LocationFilter{}))
	assert.Equal(t, bson.M{"status": "published"}, BuildLocationFilter(LocationFilter{Search: "   "}))
}

func TestBuildLocationFilterSearch(t *testing.T) {
	pattern := primitive.Regex{Pattern: `coffee \(downtown\)`, Options: "i"}

	assert.Equal(t, bson.M{
		"$and": []bson.M{
			{"status": "published"},
			{"$or": bson.A{
				bson.M{"name": pattern},
				bson.M{"description": pattern},
				bson.M{"shortDescription": pattern},
			}},
		},
	}, BuildLocationFilter(LocationFilter{Search: " coffee (downtown) "}))
}

func TestBuildLocationFilterCategory(t *testing.T) {
	f := BuildLocationFilter(LocationFilter{Category: "cafe"})

	assert.Equal(t, bson.M{
		"$and": []bson.M{
			{"status": "published"},
			{"$or": bson.A{
				bson.M{"categories": "cafe"},
				bson.M{"categories._id": "cafe"},
				bson.M{"categories.id": "cafe"},
				bson.M{"categories.slug": "cafe"},
			}},
		},
	}, f)
}

func TestBuildLocationFilterCategoryObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	f := BuildLocationFilter(LocationFilter{Category: oid.Hex()})

	conditions := f["$and"].([]bson.M)
	assert.Len(t, conditions, 2)

	or := conditions[1]["$or"].(bson.A)
	assert.Contains(t, or, bson.M{"categories": oid})
	assert.Contains(t, or, bson.M{"categories._id": oid})
	assert.Contains(t, or, bson.M{"categories": oid.Hex()})
}

func TestBuildLocationFilterAllCriteria(t *testing.T) {
	f := BuildLocationFilter(LocationFilter{
		Search:     "pizza",
		Category:   "food",
		PriceRange: "budget",
		MinRating:  4,
	})

	conditions := f["$and"].([]bson.M)
	assert.Len(t, conditions, 5)
	assert.Equal(t, bson.M{"status": "published"}, conditions[0])
	assert.Equal(t, bson.M{"priceRange": "budget"}, conditions[3])
	assert.Equal(t, bson.M{"averageRating": bson.M{"$gte": float64(4)}}, conditions[4])
}

func TestLocationSort(t *testing.T) {
	assert.Equal(t, bson.D{{"averageRating", -1}, {"_id", 1}}, LocationSort("rating"))
	assert.Equal(t, bson.D{{"reviewCount", -1}, {"_id", 1}}, LocationSort("popularity"))
	assert.Equal(t, bson.D{{"name", 1}, {"_id", 1}}, LocationSort("name"))
	assert.Equal(t, bson.D{{"createdAt", -1}, {"_id", 1}}, LocationSort("createdAt"))
	assert.Equal(t, bson.D{{"createdAt", -1}, {"_id", 1}}, LocationSort("distance"))
	assert.Equal(t, bson.D{{"createdAt", -1}, {"_id", 1}}, LocationSort(""))
}
