package css

import "strings"

// TokenType classifies a lexical unit of a property value.
type TokenType int

const (
	TokenOther      TokenType = iota // anything the tokenizer produced that grammar rules never match
	TokenIdent                       // margin, auto, inherit
	TokenNumber                      // 0, -1.5
	TokenPercentage                  // 50%
	TokenDimension                   // 10px, 5deg
	TokenWhitespace
	TokenDelim // single code point, e.g. '!'
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "IDENT"
	case TokenNumber:
		return "NUMBER"
	case TokenPercentage:
		return "PERCENTAGE"
	case TokenDimension:
		return "DIMENSION"
	case TokenWhitespace:
		return "S"
	case TokenDelim:
		return "DELIM"
	default:
		return "OTHER"
	}
}

// Keyword is the interned identity of a case-folded identifier. Grammar rules
// compare keywords instead of strings.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordInherit
	KeywordAuto
	KeywordImportant
)

var keywords = map[string]Keyword{
	"inherit":   KeywordInherit,
	"auto":      KeywordAuto,
	"important": KeywordImportant,
}

func (k Keyword) String() string {
	switch k {
	case KeywordInherit:
		return "inherit"
	case KeywordAuto:
		return "auto"
	case KeywordImportant:
		return "important"
	default:
		return ""
	}
}

// Token is an immutable lexical unit. Lower holds case-folded Data for
// identifiers and dimensions, Keyword is resolved for identifiers only.
type Token struct {
	Type    TokenType
	Data    string
	Lower   string
	Keyword Keyword
}

// NewToken creates token of requested type, folding case and resolving
// keyword identity where it matters.
func NewToken(typ TokenType, data string) Token {
	t := Token{Type: typ, Data: data, Lower: data}
	switch typ {
	case TokenIdent:
		t.Lower = strings.ToLower(data)
		t.Keyword = keywords[t.Lower]
	case TokenDimension:
		t.Lower = strings.ToLower(data)
	}
	return t
}

// Is reports whether token is the identifier kw.
func (t *Token) Is(kw Keyword) bool {
	return t != nil && t.Type == TokenIdent && kw != KeywordNone && t.Keyword == kw
}

func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Type.String() + ":" + t.Data
}
