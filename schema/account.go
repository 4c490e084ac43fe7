package schema

import (
	"time"

	"github.com/lib/pq"
)

// Account is the relational record of a platform user. It carries the
// interaction lists used to personalize discovery responses.
type Account struct {
	ID             string         `json:"id" gorm:"primary_key"`
	Email          string         `json:"email" gorm:"unique_index"`
	Name           string         `json:"name"`
	SavedLocations pq.StringArray `json:"saved_locations" gorm:"type:text[];not null;default:'{}'"`
	Following      pq.StringArray `json:"following" gorm:"type:text[];not null;default:'{}'"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SavedSet returns the saved location ids as a set
func (a *Account) SavedSet() map[string]bool {
	return toSet(a.SavedLocations)
}

// FollowingSet returns the followed user ids as a set
func (a *Account) FollowingSet() map[string]bool {
	return toSet(a.Following)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
