package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sacavia/sacavia-api/consts"
)

// LocationFilter holds the store-level criteria of a location query.
// Geographic criteria are not part of it; they are applied after fetching.
type LocationFilter struct {
	Search     string
	Category   string
	PriceRange string
	MinRating  float64
}

var locationSearchFields = []string{"name", "description", "shortDescription"}

// BuildLocationFilter translates a location filter into a mongo query.
// Only published locations are matched.
func BuildLocationFilter(f LocationFilter) bson.M {
	conditions := []bson.M{
		{"status": consts.StatusPublished},
	}

	if text := strings.TrimSpace(f.Search); text != "" {
		conditions = append(conditions, containsAny(locationSearchFields, text))
	}

	if category := strings.TrimSpace(f.Category); category != "" {
		conditions = append(conditions, categoryCondition(category))
	}

	if f.PriceRange != "" {
		conditions = append(conditions, bson.M{"priceRange": f.PriceRange})
	}

	if f.MinRating > 0 {
		conditions = append(conditions, bson.M{"averageRating": bson.M{"$gte": f.MinRating}})
	}

	if len(conditions) == 1 {
		return conditions[0]
	}

	return bson.M{"$and": conditions}
}

// LocationSort maps a sort key of the listing into a mongo sort document.
// The document id breaks ties so that pages never overlap.
func LocationSort(sortBy string) bson.D {
	switch sortBy {
	case consts.SortByRating:
		return bson.D{{"averageRating", -1}, {"_id", 1}}
	case consts.SortByPopularity:
		return bson.D{{"reviewCount", -1}, {"_id", 1}}
	case consts.SortByName:
		return bson.D{{"name", 1}, {"_id", 1}}
	default:
		return bson.D{{"createdAt", -1}, {"_id", 1}}
	}
}

// containsAny matches documents where any of the fields contains text,
// case-insensitively
func containsAny(fields []string, text string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}

	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: pattern})
	}

	return bson.M{"$or": or}
}

// categoryCondition matches a category relation stored as a string id, an
// object id, or a populated category document
func categoryCondition(category string) bson.M {
	or := bson.A{
		bson.M{"categories": category},
		bson.M{"categories._id": category},
		bson.M{"categories.id": category},
		bson.M{"categories.slug": category},
	}

	if oid, err := primitive.ObjectIDFromHex(category); err == nil {
		or = append(or,
			bson.M{"categories": oid},
			bson.M{"categories._id": oid},
		)
	}

	return bson.M{"$or": or}
}
