package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix préfixe des variables d'environnement (PETHOTEL_SOURCE_KIND, ...)
const EnvPrefix = "PETHOTEL"

var defaults = map[string]interface{}{
	"app.name":                "Pet Hotel Chatbot API",
	"app.version":             "1.0",
	"app.environment":         "development",
	"server.address":          ":5000",
	"server.read_timeout":     "15s",
	"server.write_timeout":    "30s",
	"server.shutdown_timeout": "10s",
	"source.kind":             SourceKindXLSX,
	"source.path":             "data/Conjuntodedados.xlsx",
	"source.driver":           "postgres",
	"source.dsn":              "",
	"source.load_workers":     5,
	"logging.level":           "info",
	"logging.format":          "console",
}

// Load lit .env, configs/config.yaml puis les variables d'environnement.
// configPaths remplace les répertoires de recherche par défaut.
func Load(configPaths ...string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile charge le premier .env trouvé (répertoire courant, parents, racine du module)
func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Source.LoadWorkers <= 0 {
		cfg.Source.LoadWorkers = 1
	}
	cfg.Source.Kind = strings.ToLower(strings.TrimSpace(cfg.Source.Kind))
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return errors.New("server.address is required")
	}

	switch cfg.Source.Kind {
	case SourceKindXLSX, SourceKindCSV:
		if cfg.Source.Path == "" {
			return fmt.Errorf("source.path is required for %s sources", cfg.Source.Kind)
		}
	case SourceKindSQL:
		if cfg.Source.Driver != "postgres" && cfg.Source.Driver != "sqlite3" {
			return fmt.Errorf("unsupported source.driver: %q", cfg.Source.Driver)
		}
		if cfg.Source.DSN == "" {
			return errors.New("source.dsn is required for sql sources")
		}
	default:
		return fmt.Errorf("unsupported source.kind: %q", cfg.Source.Kind)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", cfg.Logging.Level)
	}

	return nil
}
