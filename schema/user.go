package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

// User is the public profile of a platform user
type User struct {
	ID              primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"name"`
	Username        string             `bson:"username"`
	Bio             string             `bson:"bio"`
	RawProfileImage bson.RawValue      `bson:"profileImage,omitempty"`
	FollowerCount   int64              `bson:"followerCount"`
	IsVerified      bool               `bson:"isVerified"`
	IsCreator       bool               `bson:"isCreator"`
}

func (u User) ProfileImage() Media {
	return DecodeMedia(u.RawProfileImage)
}
