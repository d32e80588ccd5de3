package repositories

import "shopgh/internal/models"

// Bootstrap admin credentials used when no users file exists yet.
const (
	BootstrapAdminUsername = "admin"
	BootstrapAdminPassword = "admin123"
)

// FileAccountRepository is an AccountRepository backed by a single JSON file
// mapping username to account. Every Save rewrites the file in full.
type FileAccountRepository struct {
	path string
}

// NewFileAccountRepository creates an account repository backed by the file
// at path. The file is not created until the first Save.
func NewFileAccountRepository(path string) *FileAccountRepository {
	return &FileAccountRepository{path: path}
}

// Load reads the full account mapping. A missing file yields the bootstrap
// admin account; a malformed file is a fatal error for the caller.
func (r *FileAccountRepository) Load() (models.Accounts, error) {
	accounts := models.Accounts{}
	exists, err := readJSONFile(r.path, &accounts)
	if err != nil {
		return nil, err
	}
	if !exists {
		return models.Accounts{
			BootstrapAdminUsername: {Password: BootstrapAdminPassword, Role: models.RoleAdmin},
		}, nil
	}
	return accounts, nil
}

// Save overwrites the users file with the given mapping.
func (r *FileAccountRepository) Save(accounts models.Accounts) error {
	return writeJSONFile(r.path, accounts)
}
