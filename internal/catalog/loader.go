package catalog

import (
	"encoding/json"
	"fmt"

	"marketplace/storefront/internal/domain"

	"github.com/spf13/afero"
)

// FromJSON decodes a product table from a raw JSON array.
func FromJSON(data []byte) (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode product dataset: %w", err)
	}
	return New(products), nil
}

// FromFile reads the product table from a JSON file on the given filesystem.
func FromFile(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product dataset %s: %w", path, err)
	}
	return FromJSON(data)
}
