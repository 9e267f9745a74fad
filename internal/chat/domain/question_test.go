package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  QUAL O Custo  ":    "qual o custo",
		"\tÉ O PREÇO?\n":      "é o preço?",
		"já  normalizado":     "já  normalizado",
		"":                    "",
		"   ":                 "",
		"ESTADIAS POR PET?  ": "estadias por pet?",
	}

	for raw, want := range tests {
		assert.Equal(t, want, Normalize(raw), "raw %q", raw)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"  Qual O Total?  ", "ÇÃO", "x"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 3)

	assert.Equal(t, "qual o total de vendas de produtos por tipo de pagamento?", catalog[0].Canonical())
	assert.Equal(t, "quais os produtos mais vendidos em termos de quantidade?", catalog[1].Canonical())
	assert.Equal(t, "qual o custo total das estadias por pet?", catalog[2].Canonical())

	assert.Contains(t, catalog[0].QueryText(), "payment_method_type")
	assert.Contains(t, catalog[1].QueryText(), "product")
	assert.Contains(t, catalog[2].QueryText(), "stay")

	for _, q := range catalog {
		assert.Equal(t, Normalize(q.Canonical()), q.Canonical())
		assert.NotEmpty(t, q.Restated())
		assert.NotEmpty(t, q.QueryType())
	}
}

func TestMatchResult_JSON(t *testing.T) {
	data, err := json.Marshal(NotMatched("oi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"original_question": "oi",
		"query_text": null,
		"restated_question": null,
		"status": "failure",
		"message": "Não foi possível encontrar uma resposta para esta pergunta."
	}`, string(data))

	var fields map[string]interface{}
	data, err = json.Marshal(Matched("Q", DefaultCatalog()[2]))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 4)
	assert.Equal(t, "success", fields["status"])
	assert.Equal(t, "Qual o custo acumulado das estadias para cada pet?", fields["restated_question"])
}
