package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charliexp/asinine"
	"github.com/spf13/cobra"
)

func newVerifyOIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-oid FILE DOTTED-OID",
		Short: "Check whether a file's first OID token equals a dotted-notation OID",
		Args:  cobra.ExactArgs(2),
		RunE:  runVerifyOID,
	}
}

func runVerifyOID(cmd *cobra.Command, args []string) error {
	want, err := parseDottedOID(args[1])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[1], err)
	}

	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p, err := asinine.NewParser(data)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	matched, err := verifyOID(cmd.OutOrStdout(), p, want)
	if err != nil {
		return err
	}
	if !matched {
		os.Exit(1)
	}
	return nil
}

// verifyOID looks for the first OID token in p's input and reports to w
// whether it equals want. Its bool result is the match outcome, not an
// error signal.
func verifyOID(w io.Writer, p *asinine.Parser, want asinine.OID) (bool, error) {
	got, ok, err := firstOID(p)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(w, "no OID token found")
		return false, nil
	}

	if got.Equal(want) {
		fmt.Fprintf(w, "match: %s\n", got.String())
		return true, nil
	}
	fmt.Fprintf(w, "mismatch: found %s, want %s\n", got.String(), want.String())
	return false, nil
}

// firstOID walks the entire file depth-first, including into the root
// token's content when it is constructed, and returns the first token
// tagged as an OID.
func firstOID(p *asinine.Parser) (asinine.OID, bool, error) {
	root, err := p.Next()
	if err != nil {
		return asinine.OID{}, false, err
	}
	if oid, ok := tryOID(root); ok {
		return oid, true, nil
	}
	if !root.Compound() {
		return asinine.OID{}, false, nil
	}

	if err := p.Descend(); err != nil {
		return asinine.OID{}, false, err
	}
	var open []asinine.Token
	for {
		tok, err := p.Next()
		if err == asinine.ErrEOF {
			return asinine.OID{}, false, nil
		}
		if err != nil {
			return asinine.OID{}, false, err
		}
		if oid, ok := tryOID(tok); ok {
			return oid, true, nil
		}
		if tok.Compound() {
			if err := p.Descend(); err != nil {
				return asinine.OID{}, false, err
			}
			open = append(open, tok)
		}
		for len(open) > 0 && !p.IsWithin(open[len(open)-1]) {
			open = open[:len(open)-1]
			if err := p.Ascend(1); err != nil {
				return asinine.OID{}, false, err
			}
		}
	}
}

func tryOID(tok asinine.Token) (asinine.OID, bool) {
	if !asinine.Is(tok, asinine.ClassUniversal, asinine.TagOID) {
		return asinine.OID{}, false
	}
	oid, err := asinine.DecodeOID(tok)
	if err != nil {
		return asinine.OID{}, false
	}
	return oid, true
}

// parseDottedOID parses a string like "1.2.840.113549.1.1.11" into an OID.
func parseDottedOID(s string) (asinine.OID, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return asinine.OID{}, errors.New("an OID needs at least two arcs")
	}

	if len(parts) > len(asinine.OID{}.Arcs) {
		return asinine.OID{}, fmt.Errorf("too many arcs: got %d, max %d", len(parts), len(asinine.OID{}.Arcs))
	}

	var oid asinine.OID
	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return asinine.OID{}, fmt.Errorf("invalid arc %q: %w", part, err)
		}
		oid.Arcs[oid.Num] = uint32(v)
		oid.Num++
	}
	return oid, nil
}
