package compile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"cssbc/config"
	"cssbc/state"
)

// stdio is used in place of file name to read from STDIN or write to STDOUT.
const stdio = "-"

// Run is compile subcommand action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = stdio
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Output.Format
	if cmd.IsSet("format") {
		if format, err = config.ParseOutputFormat(cmd.String("format")); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Output.Format), zap.Error(err))
			format = env.Cfg.Output.Format
		}
	}
	if cmd.Bool("quirks") {
		env.Cfg.Parser.Quirks = true
	}
	env.Overwrite = cmd.Bool("overwrite")

	// Without explicit charset input encoding is sniffed (BOM, then UTF-8
	// validity)
	if cp := cmd.String("charset"); len(cp) > 0 {
		env.Charset, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.Charset == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.Charset = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.Charset)
			log.Debug("Forcefully decoding input", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, env, log)
}

// process handles compilation independently of CLI framework.
func process(ctx context.Context, src, dst string, format config.OutputFormat, env *state.LocalEnv, log *zap.Logger) error {
	data, err := readSource(src, env.Charset)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("source/"+sourceName(src), data)
	}

	c := New(&env.Cfg.Parser, log)
	stats, cerr := c.Compile(ctx, data, src)
	log.Info("Declarations processed",
		zap.Int("compiled", stats.Compiled), zap.Int("skipped", stats.Skipped), zap.Int("failed", stats.Failed))

	// whatever was compiled is written out even when some declarations failed
	out := new(bytes.Buffer)
	if err := Write(out, c.Sheet().Bytecode(), format); err != nil {
		return multierr.Append(cerr, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("result/"+sourceName(src)+"."+format.String(), out.Bytes())
	}
	if err := writeDestination(dst, out.Bytes(), env.Overwrite, log); err != nil {
		return multierr.Append(cerr, err)
	}
	if cerr != nil {
		return fmt.Errorf("unable to compile %d declaration(s): %w", stats.Failed, cerr)
	}
	return nil
}

// Dump is dump subcommand action: it prints listing of binary bytecode file.
func Dump(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no bytecode file has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		code []byte
		err  error
	)
	if src == stdio {
		code, err = io.ReadAll(os.Stdin)
	} else {
		code, err = os.ReadFile(src)
	}
	if err != nil {
		return fmt.Errorf("unable to read bytecode: %w", err)
	}
	log.Debug("Disassembling", zap.String("source", src), zap.Int("bytes", len(code)))

	return disassemble(os.Stdout, code, src)
}

// disassemble refuses to list files of well known types, otherwise garbage
// would be reported as corrupted bytecode.
func disassemble(w io.Writer, code []byte, src string) error {
	if kind, err := filetype.Match(code); err == nil && kind != filetype.Unknown {
		return fmt.Errorf("'%s' is not a bytecode file, detected %s", src, kind.MIME.Value)
	}
	return WriteHex(w, code)
}

func readSource(src string, enc encoding.Encoding) ([]byte, error) {
	var r io.Reader = os.Stdin
	if src != stdio {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open source: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := decodeSource(r, enc)
	if err != nil {
		return nil, fmt.Errorf("unable to read source '%s': %w", src, err)
	}
	return data, nil
}

// sniffLen is how much of the input is looked at to detect its encoding.
const sniffLen = 1024

// decodeSource returns UTF-8 content of r. When enc is nil encoding is
// detected from the content. Byte order mark always wins and never makes it
// to the output.
func decodeSource(r io.Reader, enc encoding.Encoding) ([]byte, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	if enc == nil {
		prefix, err := br.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		enc, _, _ = charset.DetermineEncoding(prefix, "text/css")
	}
	return io.ReadAll(transform.NewReader(br, unicode.BOMOverride(enc.NewDecoder())))
}

func writeDestination(dst string, data []byte, overwrite bool, log *zap.Logger) error {
	if dst == stdio {
		_, err := os.Stdout.Write(data)
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write destination: %w", err)
	}
	return nil
}

func sourceName(src string) string {
	if src == stdio {
		return "stdin"
	}
	return filepath.Base(src)
}
