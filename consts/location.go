package consts

const (
	// default page sizes of the mobile listing endpoints
	DefaultPageLimit   = 20
	DefaultSearchLimit = 10

	// default search radius in kilometres
	DefaultSearchRadius = 25

	// DefaultCandidateLimit caps the candidate set fetched from the store
	// when a query has to be refined in memory. Matches beyond the cap are
	// not surfaced.
	DefaultCandidateLimit = 1000

	// EarthRadiusKm is the mean earth radius used by the haversine formula
	EarthRadiusKm = 6371.0
)

const (
	StatusPublished = "published"
)

// sort keys accepted by the location listing
const (
	SortByDistance   = "distance"
	SortByRating     = "rating"
	SortByPopularity = "popularity"
	SortByName       = "name"
	SortByCreatedAt  = "createdAt"
)

// search types accepted by the search endpoint
const (
	SearchAll       = "all"
	SearchUsers     = "users"
	SearchLocations = "locations"
	SearchEvents    = "events"
	SearchPosts     = "posts"
)
