package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/format"
	"github.com/sacavia/sacavia-api/geo"
	"github.com/sacavia/sacavia-api/store"
)

// search looks up users, locations, events and posts matching a text.
// Locations go through the same pipeline as the location listing.
func (s *Server) search(c *gin.Context) {
	s.track(c, "search")

	params := defaultSearchParams()
	if err := c.ShouldBindQuery(&params); err != nil {
		s.abortWithValidation(c, validationMessage(c, err), err)
		return
	}

	q := strings.TrimSpace(params.Query)
	if message := queryMessage(c, q); message != "" {
		s.abortWithValidation(c, message)
		return
	}

	if err := params.validate(); err != nil {
		s.abortWithValidation(c, validationMessage(c, err), err)
		return
	}

	origin, err := s.resolveOrigin(c, params.originParams)
	if s.originFailed(c, err) {
		return
	}

	account := s.currentAccount(c)
	limit := int64(params.Limit)
	results := gin.H{}
	total := 0

	if wants(params.Type, consts.SearchUsers) {
		users, err := s.mongoStore.SearchUsers(q, limit)
		if s.shouldInterupt(err, c) {
			return
		}

		var following map[string]bool
		if account != nil {
			following = account.FollowingSet()
		}

		formatted := make([]format.UserResponse, 0, len(users))
		for _, u := range users {
			formatted = append(formatted, format.User(u, following))
		}
		results["users"] = formatted
		total += len(formatted)
	}

	if wants(params.Type, consts.SearchLocations) {
		sortBy := consts.SortByCreatedAt
		if origin != nil {
			sortBy = consts.SortByDistance
		}

		result, err := s.queryLocations(locationQuery{
			filter: store.LocationFilter{Search: q},
			sortBy: sortBy,
			page:   1,
			limit:  params.Limit,
			origin: origin,
			radius: params.Radius,
		})
		if s.shouldInterupt(err, c) {
			return
		}

		formatted := s.formatLocations(result.items, account)
		results["locations"] = formatted
		total += len(formatted)
	}

	if wants(params.Type, consts.SearchEvents) {
		events, err := s.mongoStore.SearchEvents(q, limit)
		if s.shouldInterupt(err, c) {
			return
		}

		formatted := make([]format.EventResponse, 0, len(events))
		for _, e := range events {
			if origin == nil {
				formatted = append(formatted, format.Event(e, nil))
				continue
			}

			p, ok := e.Point()
			if !ok || !geo.ValidCoordinates(p) {
				continue
			}
			if d := geo.Distance(*origin, p); d <= params.Radius {
				formatted = append(formatted, format.Event(e, &d))
			}
		}
		results["events"] = formatted
		total += len(formatted)
	}

	if wants(params.Type, consts.SearchPosts) {
		posts, err := s.mongoStore.SearchPosts(q, limit)
		if s.shouldInterupt(err, c) {
			return
		}

		formatted := make([]format.PostResponse, 0, len(posts))
		for _, p := range posts {
			formatted = append(formatted, format.Post(p))
		}
		results["posts"] = formatted
		total += len(formatted)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": localize(c, "message.search"),
		"data": gin.H{
			"query":   q,
			"type":    params.Type,
			"results": results,
			"total":   total,
			"origin":  origin,
		},
	})
}

func wants(searchType, collection string) bool {
	return searchType == consts.SearchAll || searchType == collection
}
