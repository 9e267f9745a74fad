// Package errors fournit les erreurs standardisées du service.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode code d'erreur interne
type ErrorCode string

const (
	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeSourceNotFound       ErrorCode = "SOURCE_NOT_FOUND"
	ErrCodeUnknownQueryType     ErrorCode = "UNKNOWN_QUERY_TYPE"
	ErrCodeQueryExecutionFailed ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// Sentinelles comparables avec errors.Is
var (
	ErrValidationFailed     = errors.New("validation failed")
	ErrSourceNotFound       = errors.New("data source not found")
	ErrUnknownQueryType     = errors.New("unrecognized query type")
	ErrQueryExecutionFailed = errors.New("error executing query")
)

var sentinels = map[ErrorCode]error{
	ErrCodeValidationFailed:     ErrValidationFailed,
	ErrCodeSourceNotFound:       ErrSourceNotFound,
	ErrCodeUnknownQueryType:     ErrUnknownQueryType,
	ErrCodeQueryExecutionFailed: ErrQueryExecutionFailed,
}

// StandardError erreur applicative structurée
type StandardError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	cause   error
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// Unwrap expose la cause et la sentinelle associée au code
func (e *StandardError) Unwrap() []error {
	var out []error
	if s, ok := sentinels[e.Code]; ok {
		out = append(out, s)
	}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

// NewValidationError champ de requête manquant ou invalide
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:    ErrCodeValidationFailed,
		Message: message,
	}
}

// NewSourceNotFoundError source tabulaire injoignable
func NewSourceNotFoundError(location string, err error) *StandardError {
	return &StandardError{
		Code:    ErrCodeSourceNotFound,
		Message: ErrSourceNotFound.Error(),
		Details: location,
		cause:   err,
	}
}

// NewUnknownQueryTypeError type de requête non reconnu
func NewUnknownQueryTypeError(queryType string) *StandardError {
	return &StandardError{
		Code:    ErrCodeUnknownQueryType,
		Message: ErrUnknownQueryType.Error(),
		Details: fmt.Sprintf("queryType: %s", queryType),
	}
}

// NewQueryExecutionError échec de chargement, jointure ou agrégation
func NewQueryExecutionError(err error) *StandardError {
	return &StandardError{
		Code:    ErrCodeQueryExecutionFailed,
		Message: ErrQueryExecutionFailed.Error(),
		Details: err.Error(),
		cause:   err,
	}
}

// NewInternalError erreur inattendue
func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:    ErrCodeInternal,
		Message: message,
		Details: details,
		cause:   err,
	}
}

// CodeOf retourne le code d'une erreur, INTERNAL_ERROR si elle n'est pas standardisée
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}
