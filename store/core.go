package store

//go:generate mockgen -destination=../api/mocks/store.go -package=mocks github.com/sacavia/sacavia-api/store AccountCore,MongoStore

import (
	"github.com/jinzhu/gorm"

	"github.com/sacavia/sacavia-api/schema"
)

// AccountCore is the relational datastore of platform accounts
type AccountCore interface {
	Ping() error

	GetAccount(accountID string) (*schema.Account, error)
}

// AccountStore is an implementation of AccountCore
type AccountStore struct {
	ormDB *gorm.DB
}

func NewAccountStore(ormDB *gorm.DB) *AccountStore {
	return &AccountStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *AccountStore) Ping() error {
	return s.ormDB.DB().Ping()
}
