package repositories

import "shopgh/internal/models"

// FileOrderRepository is an OrderRepository backed by a single JSON file
// holding the full order sequence as an array.
type FileOrderRepository struct {
	path string
}

// NewFileOrderRepository creates an order repository backed by the file at
// path. The file is not created until the first Save.
func NewFileOrderRepository(path string) *FileOrderRepository {
	return &FileOrderRepository{path: path}
}

// Load reads the full order sequence. A missing file yields an empty
// sequence; a malformed file is a fatal error for the caller.
func (r *FileOrderRepository) Load() ([]models.Order, error) {
	orders := []models.Order{}
	if _, err := readJSONFile(r.path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Save overwrites the orders file with the given sequence.
func (r *FileOrderRepository) Save(orders []models.Order) error {
	return writeJSONFile(r.path, orders)
}
