package css

// Vector is an ordered, randomly indexable token sequence. It never changes
// once built, all iteration state lives in the caller owned position.
type Vector []Token

// Len returns number of tokens in the vector.
func (v Vector) Len() int {
	return len(v)
}

// Peek returns token at pos without consuming it or nil if pos is out of range.
func (v Vector) Peek(pos int) *Token {
	if pos < 0 || pos >= len(v) {
		return nil
	}
	return &v[pos]
}

// Iterate returns token at *pos and advances *pos past it. At the end of the
// vector it returns nil and leaves *pos alone.
func (v Vector) Iterate(pos *int) *Token {
	t := v.Peek(*pos)
	if t != nil {
		*pos++
	}
	return t
}

// ConsumeWhitespace advances *pos over any whitespace tokens.
func ConsumeWhitespace(v Vector, pos *int) {
	for t := v.Peek(*pos); t != nil && t.Type == TokenWhitespace; t = v.Peek(*pos) {
		*pos++
	}
}

// Tokens is a convenience constructor, mostly useful in tests.
func Tokens(toks ...Token) Vector {
	return Vector(toks)
}

func Ident(s string) Token     { return NewToken(TokenIdent, s) }
func Number(s string) Token    { return NewToken(TokenNumber, s) }
func Percent(s string) Token   { return NewToken(TokenPercentage, s) }
func Dimension(s string) Token { return NewToken(TokenDimension, s) }
func Delim(s string) Token     { return NewToken(TokenDelim, s) }
func Space() Token             { return NewToken(TokenWhitespace, " ") }
