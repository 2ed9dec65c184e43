package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when card generation fails for any
	// general reason (endpoint error, transport failure).
	ErrGenerationFailed = errors.New("failed to generate flashcards")

	// ErrInvalidResponse is returned when the model response cannot be
	// parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyTopic is returned when the topic text is empty.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrInvalidCount is returned when the requested card count is not positive.
	ErrInvalidCount = errors.New("card count must be positive")
)
