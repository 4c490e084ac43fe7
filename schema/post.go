package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PostCollection = "posts"
)

// Post is a user generated entry of the social feed
type Post struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Content      string             `bson:"content"`
	Status       string             `bson:"status"`
	RawAuthor    bson.RawValue      `bson:"author,omitempty"`
	RawLocation  bson.RawValue      `bson:"location,omitempty"`
	RawImage     bson.RawValue      `bson:"image,omitempty"`
	LikeCount    int64              `bson:"likeCount"`
	CommentCount int64              `bson:"commentCount"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// AuthorID returns the id of the post author whether the relation is
// populated or not
func (p Post) AuthorID() string {
	return RelationID(p.RawAuthor)
}

// LocationID returns the id of the tagged location, if any
func (p Post) LocationID() string {
	return RelationID(p.RawLocation)
}

func (p Post) Image() Media {
	return DecodeMedia(p.RawImage)
}
