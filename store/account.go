package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/sacavia/sacavia-api/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// GetAccount returns the account of a given id along with its saved
// locations and followed users
func (s *AccountStore) GetAccount(accountID string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", accountID).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
