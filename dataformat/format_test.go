package dataformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adblockgo/adblockgo/blocker"
	"github.com/adblockgo/adblockgo/cosmetic"
)

func TestHeaderRejection(t *testing.T) {
	wrongMagic := append([]byte("NOTADAT"), formatVersion)
	wrongMagic = append(wrongMagic, 0x80) // empty array payload

	wrongVersion := append([]byte{}, datMagic...)
	wrongVersion = append(wrongVersion, 0xff, 0x80)

	tests := []struct {
		name  string
		input []byte
	}{
		{"nil input", nil},
		{"empty input", []byte{}},
		{"shorter than header", datMagic[:3]},
		{"magic only, no version", datMagic},
		{"wrong magic", wrongMagic},
		{"wrong version", wrongVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnrecognizedFormat)
		})
	}
}

func TestHeaderRejectionUnsupportedVersion(t *testing.T) {
	input := append([]byte{}, datMagic...)
	input = append(input, formatVersion+1, 0x80)

	_, err := Deserialize(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestTruncationRejection(t *testing.T) {
	b := blocker.New(true)
	c := cosmetic.NewFilterCache()
	c.SimpleClassRules["ad"] = struct{}{}
	c.ComplexClassRules["k"] = []string{"v1", "v2"}

	blob, err := NewSerializeFormat(&b, c).Serialize()
	require.NoError(t, err)

	for i := 0; i < len(blob); i++ {
		_, err := Deserialize(blob[:i])
		assert.Errorf(t, err, "truncation at offset %d must not decode", i)
	}

	_, err = Deserialize(blob)
	require.NoError(t, err)
}
