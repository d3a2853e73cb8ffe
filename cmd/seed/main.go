package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	catalogrepo "github.com/light-bringer/farmlink-service/internal/app/catalog/repo"
	"github.com/light-bringer/farmlink-service/internal/models/m_farmer"
	"github.com/light-bringer/farmlink-service/internal/models/m_product"
	"github.com/light-bringer/farmlink-service/internal/pkg/committer"
)

var spannerDB = flag.String("database",
	getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/farmlink-db"),
	"Full Spanner database path")

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

// run loads the built-in marketplace dataset into Spanner. Existing rows
// with the same keys are replaced, so the tool is safe to rerun.
func run(ctx context.Context) error {
	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	fixture := catalogrepo.NewFixtureCatalog()
	products, err := fixture.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fixture products: %w", err)
	}
	farmers, err := fixture.ListFarmers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fixture farmers: %w", err)
	}

	plan := committer.NewPlan()
	productModel := m_product.NewModel()
	farmerModel := m_farmer.NewModel()

	for _, farmer := range farmers {
		plan.Add(farmerModel.InsertMut(m_farmer.FromDomain(farmer)))
	}
	for _, product := range products {
		plan.Add(productModel.InsertMut(m_product.FromDomain(product)))
	}

	log.Printf("Seeding %d farmers and %d products into %s", len(farmers), len(products), *spannerDB)

	comm := committer.NewCommitter(client)
	if err := comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to apply seed plan: %w", err)
	}

	count, err := catalogrepo.NewSpannerCatalog(client).CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count seeded products: %w", err)
	}

	log.Printf("Seed complete, %d products in catalog", count)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
