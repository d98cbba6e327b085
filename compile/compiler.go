// Package compile drives compilation of CSS declaration lists into bytecode.
package compile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssbc/config"
	"cssbc/css"
	"cssbc/parse"
	"cssbc/stylesheet"
)

// Compiler compiles declarations into a single stylesheet. It is not safe for
// concurrent use.
type Compiler struct {
	parser *css.Parser
	sheet  *stylesheet.Stylesheet
	budget *stylesheet.Budget
	lang   *parse.Language
	log    *zap.Logger
}

// Stats summarizes a single Compile call.
type Stats struct {
	Compiled int
	Skipped  int
	Failed   int
}

// New creates compiler configured according to cfg.
func New(cfg *config.ParserConfig, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("compile")

	budget := stylesheet.NewBudget(cfg.MaxBytecodeBytes)
	sheet := stylesheet.New(
		stylesheet.WithAllocator(budget),
		stylesheet.WithQuirks(cfg.Quirks),
		stylesheet.WithLogger(log),
	)
	return &Compiler{
		parser: css.NewParser(log),
		sheet:  sheet,
		budget: budget,
		lang:   parse.NewLanguage(sheet, log),
		log:    log,
	}
}

// Sheet returns stylesheet accumulating compiled styles.
func (c *Compiler) Sheet() *stylesheet.Stylesheet {
	return c.sheet
}

// Compile compiles every declaration in data. Declarations of properties
// without handler are skipped. Invalid declarations do not stop compilation,
// their errors are combined and returned together.
func (c *Compiler) Compile(ctx context.Context, data []byte, source string) (stats Stats, err error) {
	decls := c.parser.ParseDeclarations(data, source)
	c.log.Debug("Compiling declarations", zap.String("source", source), zap.Int("count", len(decls)))

	for i, decl := range decls {
		if cerr := ctx.Err(); cerr != nil {
			return stats, multierr.Append(err, cerr)
		}

		style, perr := c.lang.ParseDeclaration(decl.Property, decl.Value)
		switch {
		case perr == nil:
			c.sheet.Append(style)
			stats.Compiled++
		case errors.Is(perr, parse.ErrUnknownProperty):
			c.log.Debug("Property is not supported, skipping", zap.String("property", decl.Property))
			stats.Skipped++
		default:
			c.log.Warn("Unable to compile declaration", zap.Int("index", i), zap.String("property", decl.Property), zap.Error(perr))
			stats.Failed++
			err = multierr.Append(err, fmt.Errorf("declaration %d: %w", i+1, perr))
			if errors.Is(perr, stylesheet.ErrNoMem) {
				// budget is exhausted, nothing else will fit
				return stats, err
			}
		}
	}

	if c.sheet.QuirksUsed {
		c.log.Warn("Non-standard input accepted in quirks mode", zap.String("source", source))
	}
	c.log.Debug("Compilation done",
		zap.Int("compiled", stats.Compiled), zap.Int("skipped", stats.Skipped), zap.Int("failed", stats.Failed),
		zap.Int("bytes", c.sheet.Size()), zap.Int("allocated", c.budget.Used()))
	return stats, err
}
