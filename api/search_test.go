package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sacavia/sacavia-api/format"
	"github.com/sacavia/sacavia-api/schema"
	"github.com/sacavia/sacavia-api/store"
)

type searchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Query   string `json:"query"`
		Type    string `json:"type"`
		Total   int    `json:"total"`
		Results struct {
			Users     []format.UserResponse     `json:"users"`
			Locations []format.LocationResponse `json:"locations"`
			Events    []format.EventResponse    `json:"events"`
			Posts     []format.PostResponse     `json:"posts"`
		} `json:"results"`
	} `json:"data"`
}

func decodeSearch(t *testing.T, body []byte) (searchResponse, map[string]json.RawMessage) {
	var resp searchResponse
	assert.Nil(t, json.Unmarshal(body, &resp), "wrong json unmarshal")

	var raw struct {
		Data struct {
			Results map[string]json.RawMessage `json:"results"`
		} `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(body, &raw), "wrong json unmarshal")

	return resp, raw.Data.Results
}

func TestSearchQueryValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, _, _ := newTestServer(ctl)

	cases := []struct {
		target  string
		message string
	}{
		{"/search", "q is required"},
		{"/search?q=+a+", "q must be at least 2 characters"},
		{"/search?q=coffee&type=places", "type must be one of: all, users, locations, events, posts"},
		{"/search?q=coffee&limit=51", "limit must be at most 50"},
		{"/search?q=coffee&longitude=10", "latitude and longitude must be provided together"},
	}

	for _, tc := range cases {
		w := serve(s.search, "/search", tc.target, "")

		assert.Equal(t, http.StatusBadRequest, w.Code, tc.target)

		resp := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Code, tc.target)
		assert.Equal(t, tc.message, resp.Error, tc.target)
	}
}

func TestSearchUsersOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, a, m, _ := newTestServer(ctl)

	followed := primitive.NewObjectID()
	a.EXPECT().GetAccount("user-1").Return(&schema.Account{
		ID:        "user-1",
		Following: []string{followed.Hex()},
	}, nil).Times(1)
	m.EXPECT().SearchUsers("ann", int64(10)).Return([]schema.User{
		{ID: followed, Name: "Ann"},
		{ID: primitive.NewObjectID(), Name: "Annie"},
	}, nil).Times(1)

	w := serve(s.search, "/search", "/search?q=ann&type=users", "user-1")

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	resp, raw := decodeSearch(t, w.Body.Bytes())
	assert.True(t, resp.Success)
	assert.Equal(t, "ann", resp.Data.Query)
	assert.Equal(t, "users", resp.Data.Type)
	assert.Equal(t, 2, resp.Data.Total)
	assert.True(t, resp.Data.Results.Users[0].IsFollowing)
	assert.False(t, resp.Data.Results.Users[1].IsFollowing)
	assert.Len(t, raw, 1)
}

func TestSearchAll(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, m, _ := newTestServer(ctl)

	m.EXPECT().SearchUsers("jazz", int64(5)).Return([]schema.User{}, nil).Times(1)
	m.EXPECT().
		ListLocations(store.LocationFilter{Search: "jazz"}, "createdAt", int64(0), int64(5)).
		Return([]schema.Location{zeroKm}, int64(1), nil).
		Times(1)
	m.EXPECT().SearchEvents("jazz", int64(5)).Return([]schema.Event{
		{ID: primitive.NewObjectID(), Name: "Jazz Night", StartDate: time.Date(2020, 6, 5, 20, 0, 0, 0, time.UTC)},
	}, nil).Times(1)
	m.EXPECT().SearchPosts("jazz", int64(5)).Return([]schema.Post{
		{ID: primitive.NewObjectID(), Title: "Jazz all night"},
		{ID: primitive.NewObjectID(), Title: "More jazz"},
	}, nil).Times(1)

	w := serve(s.search, "/search", "/search?q=+jazz+&limit=5", "")

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	resp, raw := decodeSearch(t, w.Body.Bytes())
	assert.Equal(t, "jazz", resp.Data.Query)
	assert.Equal(t, "all", resp.Data.Type)
	assert.Equal(t, 4, resp.Data.Total)
	assert.Len(t, raw, 4)
	assert.Equal(t, []string{"zero"}, names(resp.Data.Results.Locations))
	assert.Equal(t, "Jazz Night", resp.Data.Results.Events[0].Name)
	assert.Nil(t, resp.Data.Results.Events[0].Distance)
	assert.Len(t, resp.Data.Results.Posts, 2)
}

func TestSearchWithOrigin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, m, _ := newTestServer(ctl)

	nearLat, nearLng := threeKm.Coordinates.Latitude, threeKm.Coordinates.Longitude
	farLat, farLng := eightKm.Coordinates.Latitude, eightKm.Coordinates.Longitude

	m.EXPECT().SearchUsers("jazz", int64(10)).Return([]schema.User{}, nil).Times(1)
	m.EXPECT().SearchPosts("jazz", int64(10)).Return([]schema.Post{}, nil).Times(1)
	m.EXPECT().
		FindLocationCandidates(store.LocationFilter{Search: "jazz"}, "distance", int64(1000)).
		Return([]schema.Location{eightKm, threeKm, zeroKm}, nil).
		Times(1)
	m.EXPECT().SearchEvents("jazz", int64(10)).Return([]schema.Event{
		{ID: primitive.NewObjectID(), Name: "far", Latitude: &farLat, Longitude: &farLng},
		{ID: primitive.NewObjectID(), Name: "nowhere"},
		{ID: primitive.NewObjectID(), Name: "near", Latitude: &nearLat, Longitude: &nearLng},
	}, nil).Times(1)

	w := serve(s.search, "/search", "/search?q=jazz&type=all&latitude=42.36&longitude=-71.06&radius=5", "")

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	resp, _ := decodeSearch(t, w.Body.Bytes())
	assert.Equal(t, []string{"zero", "three"}, names(resp.Data.Results.Locations))
	assert.Len(t, resp.Data.Results.Events, 1)
	assert.Equal(t, "near", resp.Data.Results.Events[0].Name)
	assert.Equal(t, 3.0, *resp.Data.Results.Events[0].Distance)
}

func TestSearchStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, m, _ := newTestServer(ctl)

	m.EXPECT().SearchPosts("tacos", int64(10)).Return(nil, fmt.Errorf("server selection timeout")).Times(1)

	w := serve(s.search, "/search", "/search?q=tacos&type=posts", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, "SERVER_ERROR", decodeError(t, w).Code)
}
