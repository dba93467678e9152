package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Document is a seed catalog: venues with their products, as stored in a
// JSON file on local disk or in S3. Identifiers are assigned at apply time.
type Document struct {
	Venues []VenueEntry `json:"venues"`
}

// VenueEntry describes one venue and its products in a seed document.
type VenueEntry struct {
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Description string         `json:"description"`
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Deal        string         `json:"deal"`
	Products    []ProductEntry `json:"products"`
}

// ProductEntry describes one product in a seed document.
type ProductEntry struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Loader defines the interface for reading seed catalog documents.
type Loader interface {
	// Load reads and parses a seed catalog document by path or key.
	Load(ctx context.Context, path string) (*Document, error)
}

// fileLoader implements Loader for reading catalog files from local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON catalog file from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Document, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed catalog")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	var doc Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse catalog file")
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filePath, err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("venues", len(doc.Venues)).
		Msg("seed catalog loaded successfully")

	return &doc, nil
}

// validateDocument rejects documents that would violate catalog invariants
// when applied (missing required fields, negative prices).
func validateDocument(doc *Document) error {
	for i, v := range doc.Venues {
		if v.Name == "" {
			return fmt.Errorf("venue %d: name is required", i)
		}
		if v.Deal == "" {
			return fmt.Errorf("venue %d (%s): deal is required", i, v.Name)
		}
		for j, p := range v.Products {
			if p.Name == "" {
				return fmt.Errorf("venue %s: product %d: name is required", v.Name, j)
			}
			if p.Price < 0 {
				return fmt.Errorf("venue %s: product %s: price must not be negative", v.Name, p.Name)
			}
		}
	}
	return nil
}
