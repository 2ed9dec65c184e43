// Package generation defines the boundary between the application core and
// external language-model services that produce flashcard candidates.
package generation
