package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ArmanNagariya-Developer/azhari-attar/catalog"
	"github.com/ArmanNagariya-Developer/azhari-attar/models"
)

// main validates the embedded catalog data set.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application. Run it
// after editing catalog/products.json to catch bad records before they ship.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("AZHARI ATTAR - Catalog Checker")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("❌ Catalog failed to load: %v", err)
	}
	log.Printf("✓ Catalog parsed: %d products", cat.Len())

	bad := 0
	for _, p := range cat.All() {
		if p.Name == "" {
			fmt.Printf("❌ Product %d has no name\n", p.ID)
			bad++
		}
		if !models.IsValidCategory(p.Category) {
			fmt.Printf("❌ Product %d has unknown category %q\n", p.ID, p.Category)
			bad++
		}
		if !models.IsValidFragranceType(p.FragranceType) {
			fmt.Printf("❌ Product %d has unknown fragrance type %q\n", p.ID, p.FragranceType)
			bad++
		}
		if !models.IsValidMLSize(p.ML) {
			fmt.Printf("❌ Product %d has unknown size %d ML\n", p.ID, p.ML)
			bad++
		}
		if p.PriceINR <= 0 || p.Price <= 0 {
			fmt.Printf("❌ Product %d has a non-positive price\n", p.ID)
			bad++
		}
		if p.IsSale && p.OldPrice <= p.Price {
			fmt.Printf("❌ Product %d is on sale but old price is not higher\n", p.ID)
			bad++
		}
	}

	fmt.Println()
	for _, c := range models.Categories {
		log.Printf("✓ Category %-8s: %d products", c, cat.CountByCategory(c))
	}

	if bad > 0 {
		fmt.Printf("\n❌ %d problem(s) found\n", bad)
		os.Exit(1)
	}
	fmt.Println("\n✓ Catalog is clean")
}
