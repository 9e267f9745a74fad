package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "pethotel/internal/shared/errors"
)

const chatRequestSchema = `{
	"type": "object",
	"required": ["question"],
	"properties": {
		"question": {"type": "string"}
	}
}`

const executeQueryRequestSchema = `{
	"type": "object",
	"required": ["query_type"],
	"properties": {
		"query_type": {"type": "string"}
	}
}`

var (
	chatSchema         = mustSchema(chatRequestSchema)
	executeQuerySchema = mustSchema(executeQueryRequestSchema)
)

func mustSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return schema
}

// validateRequest vérifie un corps déjà décodé.
// Un corps qui n'est pas un objet ou sans le champ requis donne une erreur de validation (400);
// un champ du mauvais type donne une erreur interne (500) avec le détail du schéma.
func validateRequest(schema *gojsonschema.Schema, doc interface{}, field string) error {
	if _, ok := doc.(map[string]interface{}); !ok {
		return apperrors.NewValidationError(fmt.Sprintf("'%s' field is required", field))
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return apperrors.NewInternalError("invalid request body", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		if e.Type() == "required" || (e.Field() == "(root)" && e.Type() == "invalid_type") {
			return apperrors.NewValidationError(fmt.Sprintf("'%s' field is required", field))
		}
		details = append(details, e.String())
	}
	return apperrors.NewInternalError("invalid request body", fmt.Errorf("%s", strings.Join(details, "; ")))
}
