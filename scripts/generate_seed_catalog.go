package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"dealmap/internal/seed"
)

// generateSeedCatalog writes a sample catalog file to data/catalog.json.
// The file matches the format expected by SEED_PATH at startup.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalog := seed.Document{
		Venues: []seed.VenueEntry{
			{
				Name:        "Cafe Aurora",
				City:        "Almaty",
				Description: "Cozy corner cafe near the park",
				Lat:         43.238949,
				Lng:         76.889709,
				Deal:        "-30% on pastries after 18:00",
				Products: []seed.ProductEntry{
					{Name: "Croissant", Price: 150, Description: "Butter croissant"},
					{Name: "Cheesecake", Price: 300, Description: "New York style"},
					{Name: "Latte", Price: 90},
				},
			},
			{
				Name:        "Burger Spot",
				City:        "Astana",
				Description: "Smash burgers and fries",
				Lat:         51.169392,
				Lng:         71.449074,
				Deal:        "2-for-1 burgers after 20:00",
				Products: []seed.ProductEntry{
					{Name: "Double Burger", Price: 1200},
					{Name: "Fries", Price: 400},
				},
			},
			{
				Name:        "Pizza Corner",
				City:        "Almaty",
				Description: "Wood-fired pizza",
				Lat:         43.25654,
				Lng:         76.92848,
				Deal:        "-20% on large pizzas before noon",
				Products: []seed.ProductEntry{
					{Name: "Margherita", Price: 1800},
					{Name: "Pepperoni", Price: 2200},
					{Name: "Lemonade", Price: 250},
				},
			},
		},
	}

	filePath := filepath.Join(dataDir, "catalog.json")

	if err := writeCatalogFile(filePath, &catalog); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	productCount := 0
	for _, v := range catalog.Venues {
		productCount += len(v.Products)
	}

	fmt.Printf("Created %s with %d venues and %d products\n", filePath, len(catalog.Venues), productCount)
}

func writeCatalogFile(filePath string, catalog *seed.Document) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(catalog); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return nil
}
