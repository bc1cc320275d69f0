package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charliexp/asinine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_SequenceOfTwoIntegers(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x05, 0x02, 0x01, 0x07}
	p, err := asinine.NewParser(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, p))

	out := buf.String()
	assert.Contains(t, out, "SEQUENCE")
	assert.Contains(t, out, "INTEGER: 5")
	assert.Contains(t, out, "INTEGER: 7")
}

func TestDump_NestedSequence(t *testing.T) {
	// SEQUENCE { SEQUENCE { INTEGER 1 } OID 1.2.840 }
	data := []byte{
		0x30, 0x0A,
		0x30, 0x03, 0x02, 0x01, 0x01,
		0x06, 0x03, 0x2A, 0x86, 0x48,
	}
	p, err := asinine.NewParser(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, p))

	out := buf.String()
	assert.Contains(t, out, "OID: 1.2.840")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6) // outer SEQUENCE, inner SEQUENCE, INTEGER header, its INTEGER leaf, OID header, OID leaf
	assert.True(t, strings.HasPrefix(lines[0], "SEQUENCE"))
	assert.True(t, strings.HasPrefix(lines[1], "  SEQUENCE"))
	assert.True(t, strings.HasPrefix(lines[3], "      -> INTEGER: 1"))
	assert.True(t, strings.HasPrefix(lines[4], "  OBJECT IDENTIFIER"))
}

func TestDump_PrimitiveRoot(t *testing.T) {
	data := []byte{0x01, 0x01, 0xFF}
	p, err := asinine.NewParser(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, p))
	assert.Contains(t, buf.String(), "BOOLEAN: true")
}
