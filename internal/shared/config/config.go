package config

import (
	"fmt"
	"time"
)

// Types de source tabulaire supportés
const (
	SourceKindXLSX = "xlsx"
	SourceKindCSV  = "csv"
	SourceKindSQL  = "sql"
)

// Config configuration principale de l'application
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Source  SourceConfig  `mapstructure:"source"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SourceConfig décrit d'où sont lues les cinq tables.
// Path est un classeur pour xlsx, un répertoire pour csv; Driver et DSN servent pour sql.
type SourceConfig struct {
	Kind        string `mapstructure:"kind"`
	Path        string `mapstructure:"path"`
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	LoadWorkers int    `mapstructure:"load_workers"`
}

// Describe retourne une description sans secret de la source
func (s SourceConfig) Describe() string {
	if s.Kind == SourceKindSQL {
		return fmt.Sprintf("%s (%s)", s.Kind, s.Driver)
	}
	return fmt.Sprintf("%s (%s)", s.Kind, s.Path)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
