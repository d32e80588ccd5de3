package repositories

import (
	"sync"

	"shopgh/internal/models"
)

// MockAccountRepository is an in-memory implementation of AccountRepository.
type MockAccountRepository struct {
	accounts models.Accounts
	mu       sync.RWMutex
}

// NewMockAccountRepository creates a new instance of MockAccountRepository
// seeded with the bootstrap admin, matching the missing-file default of the
// file-backed repository.
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: models.Accounts{
			BootstrapAdminUsername: {Password: BootstrapAdminPassword, Role: models.RoleAdmin},
		},
	}
}

// Load returns a copy of the account mapping.
func (r *MockAccountRepository) Load() (models.Accounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(models.Accounts, len(r.accounts))
	for name, acc := range r.accounts {
		out[name] = acc
	}
	return out, nil
}

// Save replaces the stored mapping with a copy of the given one.
func (r *MockAccountRepository) Save(accounts models.Accounts) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(models.Accounts, len(accounts))
	for name, acc := range accounts {
		out[name] = acc
	}
	r.accounts = out
	return nil
}
