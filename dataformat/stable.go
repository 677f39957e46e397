package dataformat

// Hash-based collections iterate in nondeterministic order, but the
// serialized bytes must be identical across runs for semantically equal
// engines. The wrappers here externalize each collection to a canonically
// sorted sequence at the encoding boundary and rebuild the unordered form
// on decode. Native iteration order is never written.

import (
	"sort"

	"github.com/adblockgo/adblockgo/codec"
)

// stableStringSet encodes a hash set as a sorted array of its elements.
// The sort order exists only on the wire; membership semantics are
// restored on decode.
type stableStringSet map[string]struct{}

func (s stableStringSet) MarshalCBOR() ([]byte, error) {
	elems := make([]string, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	sort.Strings(elems)
	return codec.Marshal(elems)
}

func (s *stableStringSet) UnmarshalCBOR(data []byte) error {
	var elems []string
	if err := codec.Unmarshal(data, &elems); err != nil {
		return err
	}
	set := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}
	*s = set
	return nil
}

// selectorMapEntry is the wire form of one complex-selector map entry:
// a [key, selectors] pair.
type selectorMapEntry struct {
	_ struct{} `cbor:",toarray"`

	Key       string
	Selectors []string
}

// stableSelectorMap encodes a hash map as an array of entries sorted by
// key. Each per-key selector slice is written as-is: its internal order is
// significant and must round-trip exactly.
type stableSelectorMap map[string][]string

func (m stableSelectorMap) MarshalCBOR() ([]byte, error) {
	entries := make([]selectorMapEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, selectorMapEntry{Key: k, Selectors: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return codec.Marshal(entries)
}

func (m *stableSelectorMap) UnmarshalCBOR(data []byte) error {
	var entries []selectorMapEntry
	if err := codec.Unmarshal(data, &entries); err != nil {
		return err
	}
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Selectors
	}
	*m = out
	return nil
}
