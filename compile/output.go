package compile

import (
	"fmt"
	"io"

	"cssbc/bytecode"
	"cssbc/config"
)

// WriteBinary writes raw bytecode.
func WriteBinary(w io.Writer, code []byte) error {
	if _, err := w.Write(code); err != nil {
		return fmt.Errorf("unable to write bytecode: %w", err)
	}
	return nil
}

// WriteHex writes disassembly listing of code, one instruction per line:
// offset, instruction bytes and decoded instruction. Listing stops at the
// first undecodable instruction.
func WriteHex(w io.Writer, code []byte) error {
	for offset := 0; offset < len(code); {
		in, n, err := bytecode.Decode(code[offset:])
		if err != nil {
			return fmt.Errorf("unable to disassemble at offset %d: %w", offset, err)
		}
		if _, err := fmt.Fprintf(w, "%08x  %-35s  %s\n", offset, fmt.Sprintf("% x", code[offset:offset+n]), in); err != nil {
			return fmt.Errorf("unable to write listing: %w", err)
		}
		offset += n
	}
	return nil
}

// Write writes code in requested format.
func Write(w io.Writer, code []byte, format config.OutputFormat) error {
	switch format {
	case config.OutputFormatBinary:
		return WriteBinary(w, code)
	case config.OutputFormatHex:
		return WriteHex(w, code)
	}
	return fmt.Errorf("unsupported output format %s", format)
}
