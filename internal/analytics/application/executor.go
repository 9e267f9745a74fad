package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pethotel/internal/analytics/domain"
	hoteldomain "pethotel/internal/hotel/domain"
	apperrors "pethotel/internal/shared/errors"
	"pethotel/internal/shared/logger"
	"pethotel/internal/shared/metrics"
)

// SnapshotLoader fournit un snapshot frais des cinq tables
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (*hoteldomain.Snapshot, error)
}

// Executor exécute les trois agrégations prédéfinies
type Executor struct {
	repo   SnapshotLoader
	logger logger.Logger
	tracer trace.Tracer
}

// NewExecutor crée une nouvelle instance d'Executor
func NewExecutor(repo SnapshotLoader, log logger.Logger) *Executor {
	return &Executor{
		repo:   repo,
		logger: log,
		tracer: otel.Tracer("pethotel/internal/analytics"),
	}
}

// Execute relit la source puis calcule l'agrégation demandée.
// Les échecs sont rendus sous forme de descripteur d'erreur, jamais comme erreur Go.
func (e *Executor) Execute(ctx context.Context, rawQueryType string) (result domain.Result) {
	start := time.Now()

	ctx, span := e.tracer.Start(ctx, "analytics.Execute",
		trace.WithAttributes(attribute.String("query_type", rawQueryType)))
	defer span.End()

	qt, ok := domain.ParseQueryType(rawQueryType)
	if !ok {
		err := apperrors.NewUnknownQueryTypeError(rawQueryType)
		e.fail(span, "unknown", err)
		return domain.ErrorResult(apperrors.ErrUnknownQueryType.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			err := apperrors.NewQueryExecutionError(fmt.Errorf("panic: %v", r))
			e.fail(span, string(qt), err)
			result = domain.ErrorResult(err.Error())
		}
		metrics.QueryExecutionDuration.WithLabelValues(string(qt)).Observe(time.Since(start).Seconds())
	}()

	groups, err := e.run(ctx, qt)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceNotFound) {
			e.fail(span, string(qt), err)
			return domain.ErrorResult(apperrors.ErrSourceNotFound.Error())
		}
		execErr := apperrors.NewQueryExecutionError(err)
		e.fail(span, string(qt), execErr)
		return domain.ErrorResult(execErr.Error())
	}

	result = domain.NewResult(groups)
	metrics.QueryExecutionsTotal.WithLabelValues(string(qt), "success").Inc()
	span.SetAttributes(attribute.Int("groups", len(groups)))
	e.logger.Debug("query executed", map[string]interface{}{
		"query_type":  string(qt),
		"groups":      len(groups),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return result
}

func (e *Executor) run(ctx context.Context, qt domain.QueryType) ([]domain.Group, error) {
	snapshot, err := e.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch qt {
	case domain.QuerySalesByPayment:
		return SalesByPayment(snapshot), nil
	case domain.QueryTopProductsByQuantity:
		return TopProductsByQuantity(snapshot), nil
	case domain.QueryStayCostByPet:
		return StayCostByPet(snapshot), nil
	}
	return nil, apperrors.NewUnknownQueryTypeError(string(qt))
}

func (e *Executor) fail(span trace.Span, queryType string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.QueryExecutionsTotal.WithLabelValues(queryType, string(apperrors.CodeOf(err))).Inc()
	e.logger.WithError(err).Warn("query failed", map[string]interface{}{
		"query_type": queryType,
		"code":       string(apperrors.CodeOf(err)),
	})
}
