// Package bootstrap assemble les composants à partir de la configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"pethotel/database"
	analyticsapp "pethotel/internal/analytics/application"
	chatapp "pethotel/internal/chat/application"
	chatdomain "pethotel/internal/chat/domain"
	hotelinfra "pethotel/internal/hotel/infrastructure"
	"pethotel/internal/shared/config"
	"pethotel/internal/shared/logger"
)

// App composants partagés par le serveur HTTP et la ligne de commande
type App struct {
	Source   hotelinfra.Source
	Matcher  *chatapp.Matcher
	Executor *analyticsapp.Executor

	db *sql.DB
}

// NewSource construit la source décrite par la configuration.
// Pour une source SQL, la connexion ouverte est retournée; l'appelant la ferme.
func NewSource(ctx context.Context, cfg config.SourceConfig) (hotelinfra.Source, *sql.DB, error) {
	switch cfg.Kind {
	case config.SourceKindXLSX:
		return hotelinfra.NewXLSXSource(cfg.Path), nil, nil
	case config.SourceKindCSV:
		return hotelinfra.NewCSVSource(cfg.Path, cfg.LoadWorkers), nil, nil
	case config.SourceKindSQL:
		db, err := database.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return hotelinfra.NewSQLSource(db, cfg.Driver, cfg.LoadWorkers), db, nil
	}
	return nil, nil, fmt.Errorf("unsupported source kind: %q", cfg.Kind)
}

// New assemble source, matcher et executor
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	source, db, err := NewSource(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}

	repo := hotelinfra.NewSnapshotQueryRepository(source)
	return &App{
		Source:   source,
		Matcher:  chatapp.NewMatcher(chatdomain.DefaultCatalog()),
		Executor: analyticsapp.NewExecutor(repo, log.With(map[string]interface{}{"component": "executor"})),
		db:       db,
	}, nil
}

// Close libère la connexion SQL éventuelle
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
