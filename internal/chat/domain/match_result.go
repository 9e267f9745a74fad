package domain

// NoAnswerMessage message renvoyé quand aucune question ne correspond
const NoAnswerMessage = "Não foi possível encontrar uma resposta para esta pergunta."

// Status issue d'une recherche
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// MatchResult réponse du chatbot
type MatchResult struct {
	OriginalQuestion string  `json:"original_question"`
	QueryText        *string `json:"query_text"`
	RestatedQuestion *string `json:"restated_question"`
	Status           Status  `json:"status"`
	Message          string  `json:"message,omitempty"`
}

// Matched réponse positive
func Matched(original string, q KnownQuestion) MatchResult {
	queryText := q.QueryText()
	restated := q.Restated()
	return MatchResult{
		OriginalQuestion: original,
		QueryText:        &queryText,
		RestatedQuestion: &restated,
		Status:           StatusSuccess,
	}
}

// NotMatched réponse négative
func NotMatched(original string) MatchResult {
	return MatchResult{
		OriginalQuestion: original,
		Status:           StatusFailure,
		Message:          NoAnswerMessage,
	}
}
