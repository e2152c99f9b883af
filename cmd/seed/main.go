package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/meatdelivery/backend/internal/domain/catalog"
	"github.com/meatdelivery/backend/internal/infrastructure/config"
	"github.com/meatdelivery/backend/internal/infrastructure/logger"
	"github.com/meatdelivery/backend/internal/infrastructure/persistence"
)

const chickenImage = "https://images.unsplash.com/photo-1587593810167-a84920ea0781?crop=entropy&cs=srgb&fm=jpg&q=85"
const muttonImage = "https://images.unsplash.com/photo-1690983321750-ad6f6d59a84b?crop=entropy&cs=srgb&fm=jpg&q=85"
const fishImage = "https://images.unsplash.com/photo-1563557908-b7787229f123?crop=entropy&cs=srgb&fm=jpg&q=85"
const seafoodImage = "https://images.unsplash.com/photo-1615141982883-c7ad0e69fd62?crop=entropy&cs=srgb&fm=jpg&q=85"

// sampleProducts is the starter catalog loaded into an empty store
var sampleProducts = []catalog.ProductInput{
	{
		Name:        "Fresh Chicken Breast (Boneless)",
		Description: "Premium quality chicken breast, skinless and boneless. Perfect for grilling, pan-frying, or curry preparations.",
		Price:       decimal.NewFromFloat(299.0),
		Category:    "chicken",
		Image:       chickenImage,
		Stock:       50,
		Weight:      "500g",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Mutton Curry Cut (Goat)",
		Description: "Fresh goat meat cut into medium pieces, ideal for traditional Indian curry preparations. Tender and flavorful.",
		Price:       decimal.NewFromFloat(699.0),
		Category:    "mutton",
		Image:       muttonImage,
		Stock:       30,
		Weight:      "500g",
		Origin:      "Local Farm",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Fresh Chicken Whole (Skinless)",
		Description: "Farm-fresh whole chicken, cleaned and skinless. Perfect for roasting or making stock.",
		Price:       decimal.NewFromFloat(249.0),
		Category:    "chicken",
		Image:       chickenImage,
		Stock:       25,
		Weight:      "1kg",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Fresh Pomfret Fish",
		Description: "Fresh pomfret fish, cleaned and ready to cook. Perfect for frying or steaming with minimal bones.",
		Price:       decimal.NewFromFloat(549.0),
		Category:    "fish",
		Image:       fishImage,
		Stock:       20,
		Weight:      "500g",
		Origin:      "Fresh Catch",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Fresh Prawns (Large)",
		Description: "Large fresh prawns, deveined and cleaned. Perfect for curries, biryani, or grilling.",
		Price:       decimal.NewFromFloat(899.0),
		Category:    "seafood",
		Image:       seafoodImage,
		Stock:       15,
		Weight:      "500g",
		Origin:      "Fresh Catch",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Chicken Drumsticks",
		Description: "Fresh chicken drumsticks, perfect for tandoori, BBQ, or curry preparations. Juicy and tender.",
		Price:       decimal.NewFromFloat(199.0),
		Category:    "chicken",
		Image:       chickenImage,
		Stock:       40,
		Weight:      "500g",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Mutton Keema (Minced Goat)",
		Description: "Fresh minced goat meat, perfect for keema curry, kebabs, or stuffing. Finely minced and fresh.",
		Price:       decimal.NewFromFloat(649.0),
		Category:    "mutton",
		Image:       muttonImage,
		Stock:       35,
		Weight:      "500g",
		Origin:      "Local Farm",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Fresh Eggs (Farm Fresh)",
		Description: "Farm fresh brown eggs, rich in protein and nutrients. Perfect for daily consumption.",
		Price:       decimal.NewFromFloat(89.0),
		Category:    "eggs",
		Image:       fishImage,
		Stock:       100,
		Weight:      "12 pieces",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Fresh Rohu Fish Cut",
		Description: "Fresh rohu fish cut into medium pieces, perfect for Bengali fish curry or frying.",
		Price:       decimal.NewFromFloat(399.0),
		Category:    "fish",
		Image:       seafoodImage,
		Stock:       25,
		Weight:      "500g",
		Origin:      "Fresh Catch",
		Storage:     "Keep refrigerated",
	},
	{
		Name:        "Chicken Wings",
		Description: "Fresh chicken wings, perfect for parties, BBQ, or as appetizers. Crispy when fried.",
		Price:       decimal.NewFromFloat(179.0),
		Category:    "chicken",
		Image:       chickenImage,
		Stock:       60,
		Weight:      "500g",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := persistence.NewDatabase(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close(ctx)
	}()

	productRepo := persistence.NewMongoProductRepository(db.DB)

	count, err := productRepo.Count(ctx)
	if err != nil {
		log.Fatal("Failed to count products", zap.Error(err))
	}
	if count > 0 {
		log.Info("Catalog already populated, nothing to seed", zap.Int64("products", count))
		return
	}

	seeded := 0
	for _, input := range sampleProducts {
		product, err := catalog.NewProduct(input)
		if err != nil {
			log.Fatal("Invalid sample product", zap.String("name", input.Name), zap.Error(err))
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatal("Failed to insert product", zap.String("name", input.Name), zap.Error(err))
		}
		log.Info("Seeded product",
			zap.String("name", product.Name),
			zap.String("price", product.Price.String()))
		seeded++
	}

	log.Info("Sample catalog seeded", zap.Int("products", seeded))
}
