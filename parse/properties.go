package parse

import (
	"fmt"
	"strings"

	"cssbc/css"
	"cssbc/stylesheet"
)

// Handler compiles the value of a single property starting at *pos.
type Handler func(l *Language, v css.Vector, pos *int) (*stylesheet.Style, error)

// Handlers maps property names to their compilers.
var Handlers = map[string]Handler{
	"margin-top":    (*Language).ParseMarginTop,
	"margin-right":  (*Language).ParseMarginRight,
	"margin-bottom": (*Language).ParseMarginBottom,
	"margin-left":   (*Language).ParseMarginLeft,
	"top":           (*Language).ParseTop,
	"right":         (*Language).ParseRight,
	"bottom":        (*Language).ParseBottom,
	"left":          (*Language).ParseLeft,
}

// ParseDeclaration compiles complete value of the named property: leading
// whitespace, the value itself, optional "!important" and trailing
// whitespace. Anything else left in v makes the declaration invalid.
func (l *Language) ParseDeclaration(property string, v css.Vector) (*stylesheet.Style, error) {
	name := strings.ToLower(property)
	handler, ok := Handlers[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", property, ErrUnknownProperty)
	}

	pos := 0
	css.ConsumeWhitespace(v, &pos)

	style, err := handler(l, v, &pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	important, err := l.parseImportant(v, &pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if important {
		if err := style.MakeImportant(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return style, nil
}

// parseImportant consumes the rest of a declaration value:
//
//	S* [ '!' S* IDENT(important) S* ]
//
// It fails on any other trailing token leaving the cursor unchanged.
func (l *Language) parseImportant(v css.Vector, pos *int) (bool, error) {
	orig := *pos

	css.ConsumeWhitespace(v, pos)
	token := v.Iterate(pos)
	if token == nil {
		return false, nil
	}
	if token.Type != css.TokenDelim || token.Data != "!" {
		*pos = orig
		return false, fmt.Errorf("unexpected %s: %w", token, ErrInvalid)
	}

	css.ConsumeWhitespace(v, pos)
	token = v.Iterate(pos)
	if !token.Is(css.KeywordImportant) {
		*pos = orig
		return false, fmt.Errorf("expected important after '!', got %s: %w", describe(token), ErrInvalid)
	}

	css.ConsumeWhitespace(v, pos)
	if token = v.Peek(*pos); token != nil {
		*pos = orig
		return false, fmt.Errorf("unexpected %s after !important: %w", token, ErrInvalid)
	}
	return true, nil
}
