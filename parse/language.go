// Package parse compiles tokenized property values into bytecode.
//
// Every grammar rule follows the same contract: on success the cursor points
// past consumed tokens, on failure it is left exactly where it was on entry.
// Callers may therefore try alternative rules at the same position.
package parse

import (
	"errors"

	"go.uber.org/zap"

	"cssbc/stylesheet"
)

var (
	// ErrInvalid is returned when input does not match property grammar.
	ErrInvalid = errors.New("invalid input")
	// ErrUnknownProperty is returned for properties without handler.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrNoMem is returned when stylesheet could not allocate the result.
	ErrNoMem = stylesheet.ErrNoMem
)

// Language is the parsing context bound to a stylesheet receiving results.
type Language struct {
	sheet *stylesheet.Stylesheet
	log   *zap.Logger
}

// NewLanguage creates parsing context for sheet.
func NewLanguage(sheet *stylesheet.Stylesheet, log *zap.Logger) *Language {
	if log == nil {
		log = zap.NewNop()
	}
	return &Language{sheet: sheet, log: log.Named("parse")}
}

// Sheet returns stylesheet results are allocated from.
func (l *Language) Sheet() *stylesheet.Stylesheet {
	return l.sheet
}
