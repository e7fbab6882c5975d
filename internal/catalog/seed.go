package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"travel-agency/internal/data/entity"
)

//go:embed seed/catalog.json
var seedCatalog []byte

type seedDocument struct {
	Packages  []entity.Package  `json:"packages"`
	BlogPosts []entity.BlogPost `json:"blogPosts"`
}

// SeedSource serves the catalog bundled with the service.
type SeedSource struct {
	doc seedDocument
}

func NewSeedSource() (*SeedSource, error) {
	return ParseSeed(seedCatalog)
}

func ParseSeed(raw []byte) (*SeedSource, error) {
	var doc seedDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return &SeedSource{doc: doc}, nil
}

func (s *SeedSource) Packages(context.Context) ([]entity.Package, error) {
	return s.doc.Packages, nil
}

func (s *SeedSource) BlogPosts(context.Context) ([]entity.BlogPost, error) {
	return s.doc.BlogPosts, nil
}
