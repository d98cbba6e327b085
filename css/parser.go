package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single "property: value" pair with its value tokens.
type Declaration struct {
	Property string // lower-cased property name
	Value    Vector
}

// Parser turns CSS text into token vectors ready for property compilation.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Tokenize splits a single property value into tokens. Comments are dropped.
func (p *Parser) Tokenize(value []byte) Vector {
	lexer := css.NewLexer(parse.NewInputBytes(value))

	var v Vector
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS tokenizer error", zap.Error(err))
			}
			return v
		}
		if tt == css.CommentToken {
			continue
		}
		v = append(v, convertToken(tt, data))
	}
}

// ParseDeclarations parses declaration list (the inside of a rule block or a
// style attribute). Declarations without values are skipped, custom
// properties are ignored.
func (p *Parser) ParseDeclarations(data []byte, source ...string) []Declaration {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing declarations", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInputBytes(data), true)

	var decls []Declaration
	for {
		gt, _, name := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) == 0 {
				p.log.Debug("Skipping empty declaration", zap.ByteString("property", name))
				continue
			}
			decl := Declaration{
				Property: strings.ToLower(string(name)),
				Value:    make(Vector, 0, len(values)),
			}
			for _, t := range values {
				if t.TokenType == css.CommentToken {
					continue
				}
				decl.Value = append(decl.Value, convertToken(t.TokenType, t.Data))
			}
			decls = append(decls, decl)

		case css.CustomPropertyGrammar:
			continue

		default:
			p.log.Debug("Skipping unexpected grammar", zap.Stringer("grammar", gt), zap.ByteString("data", name))
		}
	}
}

func convertToken(tt css.TokenType, data []byte) Token {
	// lexer reuses its buffer, string() copies
	s := string(data)
	switch tt {
	case css.IdentToken:
		return NewToken(TokenIdent, s)
	case css.NumberToken:
		return NewToken(TokenNumber, s)
	case css.PercentageToken:
		return NewToken(TokenPercentage, s)
	case css.DimensionToken:
		return NewToken(TokenDimension, s)
	case css.WhitespaceToken:
		return NewToken(TokenWhitespace, s)
	case css.DelimToken:
		return NewToken(TokenDelim, s)
	default:
		return NewToken(TokenOther, s)
	}
}
