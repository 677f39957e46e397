package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDeterministicMapOrder(t *testing.T) {
	a := map[string][]string{}
	a["zeta"] = []string{"z1"}
	a["alpha"] = []string{"a1", "a2"}
	a["mid"] = []string{"m1"}

	b := map[string][]string{}
	b["mid"] = []string{"m1"}
	b["alpha"] = []string{"a1", "a2"}
	b["zeta"] = []string{"z1"}

	ba, err := Marshal(a)
	require.NoError(t, err)
	bb, err := Marshal(b)
	require.NoError(t, err)

	assert.Equal(t, ba, bb, "insertion order must not leak into encoded bytes")
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	type payload struct {
		Name  string   `cbor:"name"`
		Count uint64   `cbor:"count"`
		Tags  []string `cbor:"tags"`
	}

	in := payload{Name: "resource", Count: 42, Tags: []string{"b", "a"}}

	data, err := Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestStreamEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode("first"))
	require.NoError(t, enc.Encode(map[string][]string{"k": {"v1", "v2"}}))

	dec := NewDecoder(&buf)

	var s string
	require.NoError(t, dec.Decode(&s))
	assert.Equal(t, "first", s)

	var m map[string][]string
	require.NoError(t, dec.Decode(&m))
	assert.Equal(t, map[string][]string{"k": {"v1", "v2"}}, m)

	require.ErrorIs(t, dec.Decode(&s), io.EOF)
}

func TestUnmarshalRawMessageElements(t *testing.T) {
	data, err := Marshal([]any{"first", uint64(7), true})
	require.NoError(t, err)

	var record []RawMessage
	require.NoError(t, Unmarshal(data, &record))
	require.Len(t, record, 3)

	var s string
	require.NoError(t, Unmarshal(record[0], &s))
	assert.Equal(t, "first", s)

	var n uint64
	require.NoError(t, Unmarshal(record[1], &n))
	assert.Equal(t, uint64(7), n)

	var flag bool
	require.NoError(t, Unmarshal(record[2], &flag))
	assert.True(t, flag)
}
