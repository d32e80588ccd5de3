package repositories

import "shopgh/internal/models"

// AccountRepository defines the interface for account data access. The
// contract is whole-collection: Load returns the entire mapping and Save
// rewrites it in full.
type AccountRepository interface {
	Load() (models.Accounts, error)
	Save(accounts models.Accounts) error
}
