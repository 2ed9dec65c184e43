package gemini

// promptData is the template context for the flashcard prompt.
type promptData struct {
	Topic string
	Count int
}

// cardSchema mirrors one flashcard object in the model's JSON response.
type cardSchema struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// responseSchema mirrors the JSON document the model is instructed to
// return: {"flashcards": [{"front": ..., "back": ...}, ...]}.
type responseSchema struct {
	Flashcards []cardSchema `json:"flashcards"`
}
