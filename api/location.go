package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/format"
	"github.com/sacavia/sacavia-api/ranking"
	"github.com/sacavia/sacavia-api/schema"
	"github.com/sacavia/sacavia-api/store"
)

// locationQuery is a validated location listing request
type locationQuery struct {
	filter store.LocationFilter
	sortBy string
	page   int
	limit  int

	origin *schema.Coordinates
	radius float64
	isOpen *bool
}

type locationResult struct {
	items  []ranking.Ranked
	total  int64
	capped bool
}

type locationMeta struct {
	Search           string              `json:"search,omitempty"`
	Category         string              `json:"category,omitempty"`
	PriceRange       string              `json:"priceRange,omitempty"`
	Rating           *float64            `json:"rating,omitempty"`
	IsOpen           *bool               `json:"isOpen,omitempty"`
	SortBy           string              `json:"sortBy"`
	Origin           *schema.Coordinates `json:"origin,omitempty"`
	Radius           *float64            `json:"radius,omitempty"`
	CandidatesCapped bool                `json:"candidatesCapped"`
}

// queryLocations runs a location query. Plain queries are paginated by the
// store. Queries on distance or open state fetch a bounded candidate set
// and filter, sort and paginate it in memory, so their total counts the
// refined matches within the candidate set.
func (s *Server) queryLocations(q locationQuery) (locationResult, error) {
	if q.origin == nil && q.isOpen == nil {
		skip := int64((q.page - 1) * q.limit)
		locations, total, err := s.mongoStore.ListLocations(q.filter, q.sortBy, skip, int64(q.limit))
		if err != nil {
			return locationResult{}, err
		}

		return locationResult{
			items: ranking.Wrap(locations),
			total: total,
		}, nil
	}

	candidateCap := s.maxCandidates()
	candidates, err := s.mongoStore.FindLocationCandidates(q.filter, q.sortBy, candidateCap)
	if err != nil {
		return locationResult{}, err
	}

	var items []ranking.Ranked
	if q.origin != nil {
		items = ranking.WithinRadius(candidates, *q.origin, q.radius)
		if q.sortBy == consts.SortByDistance {
			ranking.SortByDistance(items)
		}
	} else {
		items = ranking.Wrap(candidates)
	}

	if q.isOpen != nil {
		items = ranking.FilterOpen(items, *q.isOpen, s.clock())
	}

	return locationResult{
		items:  ranking.Paginate(items, q.page, q.limit),
		total:  int64(len(items)),
		capped: int64(len(candidates)) >= candidateCap,
	}, nil
}

func (s *Server) formatLocations(items []ranking.Ranked, account *schema.Account) []format.LocationResponse {
	opts := format.Options{Now: s.clock()}
	if account != nil {
		opts.Saved = account.SavedSet()
	}

	locations := make([]format.LocationResponse, 0, len(items))
	for _, item := range items {
		var distance *float64
		if item.HasDistance {
			d := item.Distance
			distance = &d
		}
		locations = append(locations, format.Location(item.Location, distance, opts))
	}
	return locations
}

func (s *Server) getLocations(c *gin.Context) {
	s.track(c, "locations")
	started := time.Now()

	params := defaultLocationParams()
	if err := c.ShouldBindQuery(&params); err != nil {
		s.abortWithValidation(c, validationMessage(c, err), err)
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

	q := locationQuery{
		filter: store.LocationFilter{
			Search:     strings.TrimSpace(params.Search),
			Category:   strings.TrimSpace(params.Category),
			PriceRange: params.PriceRange,
		},
		sortBy: params.SortBy,
		page:   params.Page,
		limit:  params.Limit,
		origin: origin,
		radius: params.Radius,
		isOpen: params.IsOpen,
	}
	if params.Rating != nil {
		q.filter.MinRating = *params.Rating
	}

	result, err := s.queryLocations(q)
	if s.shouldInterupt(err, c) {
		return
	}

	if result.capped {
		s.countCapped(c)
		log.WithField("candidate_limit", s.maxCandidates()).Warn("location candidates capped")
	}

	meta := locationMeta{
		Search:           q.filter.Search,
		Category:         q.filter.Category,
		PriceRange:       q.filter.PriceRange,
		Rating:           params.Rating,
		IsOpen:           params.IsOpen,
		SortBy:           q.sortBy,
		Origin:           origin,
		CandidatesCapped: result.capped,
	}
	if origin != nil {
		meta.Radius = &q.radius
	}

	locations := s.formatLocations(result.items, s.currentAccount(c))
	s.recordPipeline(c, started)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": localize(c, "message.locations"),
		"data": gin.H{
			"locations":  locations,
			"pagination": ranking.NewPagination(q.page, q.limit, result.total),
			"meta":       meta,
		},
	})
}

// getLocation returns a single location by its id or slug
func (s *Server) getLocation(c *gin.Context) {
	s.track(c, "location")

	location, err := s.mongoStore.GetLocation(c.Param("id"))
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			s.abortWithCode(c, codeNotFound, err)
		default:
			s.abortWithServerError(c, err)
		}
		return
	}

	locations := s.formatLocations(ranking.Wrap([]schema.Location{*location}), s.currentAccount(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": localize(c, "message.location"),
		"data": gin.H{
			"location": locations[0],
		},
	})
}

// getSavedLocations lists the locations saved by the signed-in account,
// in the order they were saved
func (s *Server) getSavedLocations(c *gin.Context) {
	s.track(c, "saved_locations")

	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		s.abortWithServerError(c, errInvalidAccount)
		return
	}

	params := pageParams{
		Page:  1,
		Limit: consts.DefaultPageLimit,
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		s.abortWithValidation(c, validationMessage(c, err), err)
		return
	}

	saved, err := s.mongoStore.ListLocationsByIDs(account.SavedLocations)
	if s.shouldInterupt(err, c) {
		return
	}

	items := ranking.Wrap(saved)
	page := ranking.Paginate(items, params.Page, params.Limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": localize(c, "message.saved_locations"),
		"data": gin.H{
			"locations":  s.formatLocations(page, account),
			"pagination": ranking.NewPagination(params.Page, params.Limit, int64(len(items))),
		},
	})
}

func (s *Server) maxCandidates() int64 {
	if s.candidateLimit > 0 {
		return s.candidateLimit
	}
	return consts.DefaultCandidateLimit
}

func (s *Server) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
