package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	analyticsdomain "pethotel/internal/analytics/domain"
	chatdomain "pethotel/internal/chat/domain"
	apperrors "pethotel/internal/shared/errors"
	"pethotel/internal/shared/logger"
	"pethotel/internal/shared/metrics"
)

// maxBodyBytes taille maximale d'un corps de requête
const maxBodyBytes = 1 << 20

// QuestionMatcher associe une question à une réponse préparée
type QuestionMatcher interface {
	Match(raw string) chatdomain.MatchResult
	Questions() []string
	QueryTypes() []string
}

// QueryExecutor exécute une agrégation
type QueryExecutor interface {
	Execute(ctx context.Context, queryType string) analyticsdomain.Result
}

// ServiceInfo identité du service exposée sur GET /
type ServiceInfo struct {
	Name    string
	Version string
	// Debug expose les profils pprof sous /debug/pprof/
	Debug bool
}

// Handlers contient tous les handlers HTTP du service
type Handlers struct {
	matcher  QuestionMatcher
	executor QueryExecutor
	info     ServiceInfo
	logger   logger.Logger
	now      func() time.Time
}

// NewHandlers crée une nouvelle instance des handlers
func NewHandlers(matcher QuestionMatcher, executor QueryExecutor, info ServiceInfo, log logger.Logger) *Handlers {
	return &Handlers{
		matcher:  matcher,
		executor: executor,
		info:     info,
		logger:   log,
		now:      time.Now,
	}
}

// Routes construit le routeur et la chaîne de middlewares
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("POST /execute-query", h.ExecuteQuery)
	mux.Handle("GET /metrics", promhttp.Handler())

	if h.info.Debug {
		mux.HandleFunc("GET /debug/pprof/", pprof.Index)
		mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	}

	return Chain(mux,
		RequestID(),
		CORS(),
		AccessLog(h.logger),
		Recover(h.logger),
	)
}

// Index handler pour GET /
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    h.info.Name,
		"version": h.info.Version,
		"endpoints": map[string]string{
			"/":              "GET - Service description",
			"/health":        "GET - Service status",
			"/questions":     "GET - List the known questions and query types",
			"/chat":          "POST - Send a question to the chatbot",
			"/execute-query": "POST - Run one of the predefined aggregations",
			"/metrics":       "GET - Prometheus metrics",
		},
	})
}

// Health handler pour GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339Nano),
	})
}

// ListQuestions handler pour GET /questions
func (h *Handlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"questions":   h.matcher.Questions(),
		"query_types": h.matcher.QueryTypes(),
	})
}

// Chat handler pour POST /chat
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeBody(w, r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "internal server error: "+err.Error(), err)
		return
	}

	if err := validateRequest(chatSchema, doc, "question"); err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			h.fail(w, r, http.StatusBadRequest, err.Error(), err)
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "internal server error: "+err.Error(), err)
		return
	}

	question := doc.(map[string]interface{})["question"].(string)
	result := h.matcher.Match(question)
	metrics.ChatQuestionsTotal.WithLabelValues(string(result.Status)).Inc()

	writeJSON(w, http.StatusOK, result)
}

// executeQueryResponse réponse de POST /execute-query
type executeQueryResponse struct {
	QueryType string                 `json:"query_type"`
	Result    analyticsdomain.Result `json:"result"`
	Status    string                 `json:"status"`
}

// ExecuteQuery handler pour POST /execute-query.
// Un échec de l'agrégation reste une réponse 200 avec le descripteur dans result.
func (h *Handlers) ExecuteQuery(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeBody(w, r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "error executing query: "+err.Error(), err)
		return
	}

	if err := validateRequest(executeQuerySchema, doc, "query_type"); err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			h.fail(w, r, http.StatusBadRequest, err.Error(), err)
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "error executing query: "+err.Error(), err)
		return
	}

	queryType := doc.(map[string]interface{})["query_type"].(string)
	result := h.executor.Execute(r.Context(), queryType)

	writeJSON(w, http.StatusOK, executeQueryResponse{
		QueryType: queryType,
		Result:    result,
		Status:    "success",
	})
}

// decodeBody lit un corps JSON quelconque; la validation de forme est faite ensuite
func decodeBody(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return doc, nil
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	fields := map[string]interface{}{
		"path":       r.URL.Path,
		"status":     status,
		"code":       string(apperrors.CodeOf(err)),
		"request_id": RequestIDFromContext(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed", fields)
	} else {
		h.logger.Debug("request rejected", fields)
	}
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
