// pkg/catalogfile/catalogfile.go

// Package catalogfile loads a career catalog from a JSON file, for
// deployments that ship their own catalog instead of the database-backed
// or built-in one.
package catalogfile

import (
	"context"
	"encoding/json"
	"os"

	"assessment-engine/internal/engine/careers"
	"assessment-engine/internal/models"
)

// CatalogFile is the on-disk format.
type CatalogFile struct {
	Version     string                    `json:"version"`
	LastUpdated string                    `json:"lastUpdated"`
	Careers     []models.CareerDefinition `json:"careers"`
}

// Load reads and verifies a catalog file. The careers come back in file
// order, which is also their tie-break order in ranking.
func Load(path string) ([]models.CareerDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if err := careers.VerifyCatalog(file.Careers); err != nil {
		return nil, err
	}
	return file.Careers, nil
}

// Static wraps a fixed catalog behind the loader interface the service
// consumes.
type Static struct {
	catalog []models.CareerDefinition
}

func NewStatic(catalog []models.CareerDefinition) *Static {
	return &Static{catalog: catalog}
}

func (s *Static) Load(ctx context.Context) ([]models.CareerDefinition, error) {
	return s.catalog, nil
}
