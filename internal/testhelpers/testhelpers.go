package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"pethotel/database"
	hotelinfra "pethotel/internal/hotel/infrastructure"
)

// TestContext contient les trois supports de la même fixture
// Note: ne contient PAS les services pour éviter les import cycles
type TestContext struct {
	Dataset      *database.Dataset
	WorkbookPath string
	CSVDir       string

	// DB est nil quand SQLite n'est pas disponible (binaire compilé sans cgo)
	DB *sql.DB
}

// FixtureDataset jeu de données réduit aux résultats connus:
//   - ventes par paiement: Pix 280, Cartão de crédito 125.5, Dinheiro 106.5
//   - produits par quantité: Brinquedo Mordedor 6, Shampoo Neutro 4, Ração Premium 3
//   - coût des séjours: Rex 500, Thor 500, Mia 150
//
// Les lignes orphelines (paiement 9, pet 7) et le produit sans nom doivent être ignorés.
func FixtureDataset() *database.Dataset {
	return &database.Dataset{
		PaymentMethodTypes: []database.PaymentMethodType{
			{ID: 1, Nome: "Pix"},
			{ID: 2, Nome: "Cartão de crédito"},
			{ID: 3, Nome: "Dinheiro"},
		},
		Products: []database.Product{
			{ID: 10, Name: "Ração Premium", Price: 90},
			{ID: 11, Name: "Shampoo Neutro", Price: 35.5},
			{ID: 12, Name: "Brinquedo Mordedor", Price: 20},
			{ID: 13, Name: "", Price: 15},
		},
		Purchases: []database.Purchase{
			{ID: 1, ProductID: 10, Quantity: 2, TotalValue: 180, PaymentMethod: 1},
			{ID: 2, ProductID: 11, Quantity: 1, TotalValue: 35.5, PaymentMethod: 2},
			{ID: 3, ProductID: 12, Quantity: 5, TotalValue: 100, PaymentMethod: 1},
			{ID: 4, ProductID: 10, Quantity: 1, TotalValue: 90, PaymentMethod: 2},
			{ID: 5, ProductID: 11, Quantity: 3, TotalValue: 106.5, PaymentMethod: 3},
			{ID: 6, ProductID: 12, Quantity: 1, TotalValue: 20, PaymentMethod: 9},
			{ID: 7, ProductID: 13, Quantity: 4, TotalValue: 60, PaymentMethod: 9},
		},
		Pets: []database.Pet{
			{ID: 1, Name: "Rex", Species: "cachorro"},
			{ID: 2, Name: "Mia", Species: "gato"},
			{ID: 3, Name: "Thor", Species: "cachorro"},
			{ID: 4, Name: "Luna", Species: "gato"},
		},
		Stays: []database.Stay{
			{ID: 1, PetID: 1, Nights: 3, Cost: 300},
			{ID: 2, PetID: 2, Nights: 2, Cost: 150},
			{ID: 3, PetID: 1, Nights: 2, Cost: 200},
			{ID: 4, PetID: 3, Nights: 5, Cost: 500},
			{ID: 5, PetID: 7, Nights: 9, Cost: 999},
		},
	}
}

// WriteFixtureWorkbook écrit la fixture dans un classeur temporaire et retourne son chemin
func WriteFixtureWorkbook(tb testing.TB) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "Conjuntodedados.xlsx")
	if err := hotelinfra.WriteWorkbook(path, FixtureDataset().Tables()); err != nil {
		tb.Fatalf("Failed to write fixture workbook: %v", err)
	}
	return path
}

// WriteFixtureCSV écrit la fixture dans un répertoire CSV temporaire
func WriteFixtureCSV(tb testing.TB) string {
	tb.Helper()

	dir := filepath.Join(tb.TempDir(), "csv")
	if err := hotelinfra.WriteCSVDir(dir, FixtureDataset().Tables()); err != nil {
		tb.Fatalf("Failed to write fixture csv: %v", err)
	}
	return dir
}

// SetupTestDB ouvre une base SQLite temporaire peuplée avec la fixture.
// Le test est sauté si SQLite n'est pas utilisable.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	db, err := openFixtureSQLite(tb)
	if err != nil {
		tb.Skip("SQLite not available:", err)
	}
	return db
}

func openFixtureSQLite(tb testing.TB) (*sql.DB, error) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(tb.TempDir(), "pethotel.db")

	db, err := database.Open(ctx, "sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	tb.Cleanup(func() { db.Close() })

	if err := database.SeedDatabase(ctx, db, FixtureDataset()); err != nil {
		tb.Fatalf("Failed to seed fixture database: %v", err)
	}
	return db, nil
}

// SetupTestContext prépare classeur, CSV et base SQLite sur la même fixture
func SetupTestContext(tb testing.TB) *TestContext {
	tb.Helper()

	tc := &TestContext{
		Dataset:      FixtureDataset(),
		WorkbookPath: WriteFixtureWorkbook(tb),
		CSVDir:       WriteFixtureCSV(tb),
	}
	if db, err := openFixtureSQLite(tb); err == nil {
		tc.DB = db
	}
	return tc
}

// SetupPostgresDB se connecte à la base PostgreSQL de test (variables DB_*),
// recrée les tables et y charge la fixture. Sauté si la base est absente.
func SetupPostgresDB(tb testing.TB) *sql.DB {
	tb.Helper()

	// Charger les variables d'environnement
	_ = godotenv.Load("../../.env")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "pethotel"),
		getEnv("DB_PASSWORD", "pethotel"),
		getEnv("DB_NAME", "pethotel_test"),
		getEnv("DB_SSLMODE", "disable"),
	)

	ctx := context.Background()
	db, err := database.Open(ctx, "postgres", connStr)
	if err != nil {
		tb.Skip("Database not available:", err)
	}
	tb.Cleanup(func() { db.Close() })

	for _, table := range []string{"pet", "stay", "product", "purchase", "payment_method_type"} {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			tb.Fatalf("Failed to reset table %s: %v", table, err)
		}
	}
	if err := database.SeedDatabase(ctx, db, FixtureDataset()); err != nil {
		tb.Fatalf("Failed to seed fixture database: %v", err)
	}
	return db
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
