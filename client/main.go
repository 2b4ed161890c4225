package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"seller-dashboard-api/internal/config"
	"seller-dashboard-api/internal/database"
	productRepository "seller-dashboard-api/internal/repository/product"

	"github.com/rs/zerolog/log"
)

// Dumps products from Firestore into a local json file. Read-only.
func main() {

	var (
		id     = flag.String("id", "", "export a single product by id")
		vendor = flag.String("vendor", "", "only export products of this vendor")
		limit  = flag.Int("limit", productRepository.DefaultLimit, "max number of products")
		sortBy = flag.String("sort_by", "", "name, price or createdAt")
		order  = flag.String("order", productRepository.OrderAsc, "asc or desc")
		out    = flag.String("out", "products.json", "output file")
	)
	flag.Parse()

	cnf := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firestoreClient, err := database.NewFirestoreClient(ctx, cnf.Firebase)
	if err != nil {
		panic(err)
	}
	defer firestoreClient.Close()

	productRepo := productRepository.New(firestoreClient)

	if *id != "" {
		err = saveProductAsJson(ctx, productRepo, *id, *out)
	} else {
		err = saveProductsAsJson(ctx, productRepo, productRepository.ListQuery{
			Limit:    *limit,
			SortBy:   *sortBy,
			Order:    *order,
			VendorId: *vendor,
		}, *out)
	}
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		firestoreClient.Close()
		os.Exit(1)
	}
}

func saveProductAsJson(ctx context.Context, productRepo productRepository.IRepository, productId, path string) error {
	p, err := productRepo.GetById(ctx, productId)
	if err != nil {
		return err
	}
	return writeJson(path, p)
}

func saveProductsAsJson(ctx context.Context, productRepo productRepository.IRepository, q productRepository.ListQuery, path string) error {
	products, err := productRepo.List(ctx, q)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(products)).Str("query", q.String()).Msg("products fetched")
	return writeJson(path, products)
}

func writeJson(path string, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("file", path).Msg("export written")
	return nil
}
