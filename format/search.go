package format

import (
	"time"

	"github.com/sacavia/sacavia-api/schema"
)

type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Bio           string `json:"bio,omitempty"`
	ProfileImage  *Image `json:"profileImage"`
	FollowerCount int64  `json:"followerCount"`
	IsVerified    bool   `json:"isVerified"`
	IsCreator     bool   `json:"isCreator"`
	IsFollowing   bool   `json:"isFollowing"`
}

type EventResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Description   string              `json:"description"`
	Category      string              `json:"category,omitempty"`
	Image         *Image              `json:"image"`
	StartDate     time.Time           `json:"startDate"`
	EndDate       *time.Time          `json:"endDate,omitempty"`
	Coordinates   *schema.Coordinates `json:"coordinates"`
	Distance      *float64            `json:"distance,omitempty"`
	AttendeeCount int64               `json:"attendeeCount"`
}

type PostResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Image        *Image    `json:"image"`
	AuthorID     string    `json:"authorId,omitempty"`
	LocationID   string    `json:"locationId,omitempty"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User shapes a user search hit. following is the set of user ids the
// requester follows and may be nil.
func User(u schema.User, following map[string]bool) UserResponse {
	return UserResponse{
		ID:            u.ID.Hex(),
		Name:          u.Name,
		Username:      u.Username,
		Bio:           u.Bio,
		ProfileImage:  image(u.ProfileImage()),
		FollowerCount: u.FollowerCount,
		IsVerified:    u.IsVerified,
		IsCreator:     u.IsCreator,
		IsFollowing:   following[u.ID.Hex()],
	}
}

func Event(e schema.Event, distance *float64) EventResponse {
	r := EventResponse{
		ID:            e.ID.Hex(),
		Name:          e.Name,
		Slug:          e.Slug,
		Description:   e.Description,
		Category:      e.Category,
		Image:         image(e.Image()),
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		AttendeeCount: e.AttendeeCount,
	}

	if p, ok := e.Point(); ok {
		r.Coordinates = &p
	}

	if distance != nil {
		d := Kilometres(*distance)
		r.Distance = &d
	}

	return r
}

func Post(p schema.Post) PostResponse {
	return PostResponse{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Content:      p.Content,
		Image:        image(p.Image()),
		AuthorID:     p.AuthorID(),
		LocationID:   p.LocationID(),
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}
