package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"pethotel/database"
	hotelinfra "pethotel/internal/hotel/infrastructure"
)

func main() {
	// Charge .env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using default values")
	}

	opts := database.DefaultSeedOptions()
	opts.Seed = int64(getEnvInt("SEED_RANDOM_SEED", int(opts.Seed)))
	opts.Pets = getEnvInt("SEED_PETS", opts.Pets)
	opts.Stays = getEnvInt("SEED_STAYS", opts.Stays)
	opts.Purchases = getEnvInt("SEED_PURCHASES", opts.Purchases)

	ds := database.GenerateDataset(opts)
	fmt.Printf("🌱 Generated %d pets, %d stays, %d products, %d purchases\n",
		len(ds.Pets), len(ds.Stays), len(ds.Products), len(ds.Purchases))

	target := getEnv("SEED_TARGET", "xlsx")
	switch target {
	case "xlsx":
		path := getEnv("SEED_OUTPUT", "data/Conjuntodedados.xlsx")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatal("❌ Failed to create output directory:", err)
		}
		if err := hotelinfra.WriteWorkbook(path, ds.Tables()); err != nil {
			log.Fatal("❌ Failed to write workbook:", err)
		}
		fmt.Println("✅ Workbook written to", path)

	case "csv":
		dir := getEnv("SEED_OUTPUT", "data/csv")
		if err := hotelinfra.WriteCSVDir(dir, ds.Tables()); err != nil {
			log.Fatal("❌ Failed to write csv files:", err)
		}
		fmt.Println("✅ CSV files written to", dir)

	case "sql":
		driver := getEnv("SEED_DRIVER", "postgres")
		dsn := getEnv("SEED_DSN", "")
		if dsn == "" && driver == "postgres" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				getEnv("DB_HOST", "localhost"),
				getEnv("DB_PORT", "5432"),
				getEnv("DB_USER", "pethotel"),
				getEnv("DB_PASSWORD", "pethotel"),
				getEnv("DB_NAME", "pethotel"),
				getEnv("DB_SSLMODE", "disable"),
			)
		}
		if dsn == "" {
			log.Fatal("❌ SEED_DSN is required for driver ", driver)
		}

		ctx := context.Background()
		db, err := database.Open(ctx, driver, dsn)
		if err != nil {
			log.Fatal("❌ Database connection error:", err)
		}
		defer db.Close()
		fmt.Printf("✅ Connected to %s\n", driver)

		if err := database.SeedDatabase(ctx, db, ds); err != nil {
			log.Fatal("❌ Seed failed:", err)
		}
		fmt.Println("✅ Database seeded")

	default:
		log.Fatalf("❌ Unknown SEED_TARGET %q (expected xlsx, csv or sql)", target)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
