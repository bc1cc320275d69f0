package main

import (
	"fmt"
	"io"

	"github.com/charliexp/asinine"
	"github.com/charliexp/asinine/internal/cliutil"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Print the TLV tree of a DER/BER file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p, err := asinine.NewParser(data)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	return dump(cmd.OutOrStdout(), p)
}

// dump prints the TLV tree of p's input to w: the root token, then
// (if it is constructed) everything nested beneath it.
func dump(w io.Writer, p *asinine.Parser) error {
	root, err := p.Next()
	if err != nil {
		return fmt.Errorf("reading root token: %w", err)
	}
	cliutil.PrintTokenHeader(w, 0, root)

	if !root.Compound() {
		printLeaf(w, root, 0)
		return nil
	}

	// Pin the cursor inside the root's content so a structural bug that
	// would otherwise silently walk past it surfaces as an error instead.
	if err := p.Descend(); err != nil {
		return fmt.Errorf("descending into root: %w", err)
	}
	// The root's level of constraint stays held: Ascend cannot release the
	// last level.
	return dumpChildren(w, p, 1)
}

// dumpChildren walks every descendant of the token the caller just
// Descend-ed into, in a single flat Next loop. It tracks which constructed
// ancestors are still open, both to compute indentation and to keep the
// parser's constraint in step: it Descends into every constructed token
// it reads and Ascends by one level once IsWithin reports that token's
// content fully read.
func dumpChildren(w io.Writer, p *asinine.Parser, baseDepth int) error {
	var open []asinine.Token

	for {
		tok, err := p.Next()
		if err == asinine.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}

		depth := baseDepth + len(open)
		cliutil.PrintTokenHeader(w, depth, tok)

		if tok.Compound() {
			if err := p.Descend(); err != nil {
				return err
			}
			open = append(open, tok)
		} else {
			printLeaf(w, tok, depth)
		}

		for len(open) > 0 && !p.IsWithin(open[len(open)-1]) {
			open = open[:len(open)-1]
			if err := p.Ascend(1); err != nil {
				return err
			}
		}
	}
}

func printLeaf(w io.Writer, tok asinine.Token, depth int) {
	switch {
	case asinine.Is(tok, asinine.ClassUniversal, asinine.TagOID):
		oid, err := asinine.DecodeOID(tok)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "OID", oid.String())
			return
		}
	case asinine.Is(tok, asinine.ClassUniversal, asinine.TagInteger):
		v, err := asinine.DecodeInteger(tok)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "INTEGER", fmt.Sprintf("%d", v))
			return
		}
	case asinine.Is(tok, asinine.ClassUniversal, asinine.TagBoolean):
		v, err := asinine.DecodeBoolean(tok)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "BOOLEAN", fmt.Sprintf("%t", v))
			return
		}
	case asinine.IsTime(tok):
		v, err := asinine.DecodeTime(tok)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "UTCTIME", fmt.Sprintf("%d", v))
			return
		}
	case asinine.IsString(tok):
		buf := make([]byte, tok.Length()+1)
		n, err := asinine.DecodeString(tok, buf)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "STRING", string(buf[:n]))
			return
		}
	case tok.Tag() == asinine.TagBitString && tok.Class() == asinine.ClassUniversal:
		buf := make([]byte, tok.Length())
		n, err := asinine.DecodeBitString(tok, buf)
		if err == nil {
			cliutil.PrintLeafValue(w, depth, "BITSTRING", cliutil.HexDump(buf[:n], 32))
			return
		}
	}

	cliutil.PrintLeafValue(w, depth, "RAW", cliutil.HexDump(tok.Data(), 32))
}
