package asinine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolToken(data []byte) Token {
	return Token{class: ClassUniversal, tag: TagBoolean, value: data, end: len(data)}
}

func TestDecodeBoolean_ConcreteScenario(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    bool
		wantErr bool
	}{
		{"0xFF is true", []byte{0xFF}, true, false},
		{"0x00 is false", []byte{0x00}, false, false},
		{"0x01 is invalid under DER", []byte{0x01}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBoolean(boolToken(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBoolean_RejectsWrongLength(t *testing.T) {
	_, err := DecodeBoolean(boolToken([]byte{0xFF, 0x00}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeBoolean_RejectsWrongTag(t *testing.T) {
	tok := Token{class: ClassUniversal, tag: TagInteger, value: []byte{0xFF}}
	_, err := DecodeBoolean(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}
