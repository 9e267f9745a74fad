package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel/internal/chat/domain"
)

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	result := m.Match("qual o total de vendas de produtos por tipo de pagamento?")

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "qual o total de vendas de produtos por tipo de pagamento?", result.OriginalQuestion)
	require.NotNil(t, result.QueryText)
	assert.Contains(t, *result.QueryText, "payment_method_type")
	require.NotNil(t, result.RestatedQuestion)
	assert.Equal(t, "Qual o total de vendas de produtos agrupado por tipo de pagamento?", *result.RestatedQuestion)
	assert.Empty(t, result.Message)
}

func TestMatcher_CaseAndWhitespaceInsensitive(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	reference := m.Match("qual o custo total das estadias por pet?")
	variant := m.Match("  QUAL O CUSTO TOTAL DAS ESTADIAS POR PET?\n")

	assert.Equal(t, domain.StatusSuccess, variant.Status)
	assert.Equal(t, "  QUAL O CUSTO TOTAL DAS ESTADIAS POR PET?\n", variant.OriginalQuestion)
	assert.Equal(t, *reference.QueryText, *variant.QueryText)
	assert.Equal(t, *reference.RestatedQuestion, *variant.RestatedQuestion)
}

func TestMatcher_Miss(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	for _, raw := range []string{"", "   ", "qual o custo total das estadias por pet", "quais  os produtos mais vendidos em termos de quantidade?"} {
		result := m.Match(raw)
		assert.Equal(t, domain.StatusFailure, result.Status, "raw %q", raw)
		assert.Equal(t, raw, result.OriginalQuestion)
		assert.Nil(t, result.QueryText)
		assert.Nil(t, result.RestatedQuestion)
		assert.Equal(t, domain.NoAnswerMessage, result.Message)
	}
}

func TestMatcher_QuestionsAndQueryTypes(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	assert.Equal(t, []string{
		"Qual o total de vendas de produtos por tipo de pagamento?",
		"Quais os produtos mais vendidos em termos de quantidade?",
		"Qual o custo total das estadias por pet?",
	}, m.Questions())
	assert.Equal(t, []string{"sales_by_payment", "top_products_by_quantity", "stay_cost_by_pet"}, m.QueryTypes())

	// chaque question affichée est reconnue
	for _, q := range m.Questions() {
		assert.Equal(t, domain.StatusSuccess, m.Match(q).Status)
	}
}

func TestMatcher_Lookup(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	q, ok := m.Lookup(" Qual o custo total das estadias por pet? ")
	require.True(t, ok)
	assert.Equal(t, "stay_cost_by_pet", string(q.QueryType()))

	_, ok = m.Lookup("oi")
	assert.False(t, ok)
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m := NewMatcher(domain.DefaultCatalog())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, domain.StatusSuccess, m.Match("QUAIS OS PRODUTOS MAIS VENDIDOS EM TERMOS DE QUANTIDADE?").Status)
		}()
	}
	wg.Wait()
}
