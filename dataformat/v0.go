// Package dataformat converts live engine state to and from the versioned
// binary interchange format, so a compiled rule set can be cached or
// shipped without re-parsing filter list text.
//
// Blob layout: a fixed magic constant, one schema version byte, then a
// single CBOR-encoded positional record. The record's field order is the
// binary schema: new fields may only ever be appended after the last
// existing one, and positions are never reused. A reader fills fields an
// older writer did not emit with their zero defaults and ignores trailing
// fields it does not know about.
package dataformat

import (
	"bytes"

	"github.com/adblockgo/adblockgo/blocker"
	"github.com/adblockgo/adblockgo/codec"
	"github.com/adblockgo/adblockgo/cosmetic"
	"github.com/adblockgo/adblockgo/filters"
	"github.com/adblockgo/adblockgo/resources"
)

// SerializeFormat aggregates references into live engine data for
// allocation-free serialization. It is transient: construct it, call
// Serialize once, discard it. The referenced state must not be mutated
// concurrently.
type SerializeFormat struct {
	_ struct{} `cbor:",toarray"`

	CSP           *blocker.NetworkFilterList
	Exceptions    *blocker.NetworkFilterList
	Importants    *blocker.NetworkFilterList
	Redirects     *blocker.NetworkFilterList
	FiltersTagged *blocker.NetworkFilterList
	Filters       *blocker.NetworkFilterList
	GenericHide   *blocker.NetworkFilterList

	TaggedFiltersAll []filters.NetworkFilter

	EnableOptimizations bool

	Resources *resources.RedirectResourceStorage

	SimpleClassRules  stableStringSet
	SimpleIDRules     stableStringSet
	ComplexClassRules stableSelectorMap
	ComplexIDRules    stableSelectorMap

	SpecificRules *cosmetic.HostnameRuleDb

	MiscGenericSelectors stableStringSet

	Scriptlets *resources.ScriptletResourceStorage
}

// NewSerializeFormat builds a borrowing view over the two engine halves.
// No collection is copied; hash-based collections are externalized to
// sorted sequences only while encoding.
func NewSerializeFormat(b *blocker.Blocker, c *cosmetic.FilterCache) *SerializeFormat {
	return &SerializeFormat{
		CSP:           &b.CSP,
		Exceptions:    &b.Exceptions,
		Importants:    &b.Importants,
		Redirects:     &b.Redirects,
		FiltersTagged: &b.FiltersTagged,
		Filters:       &b.Filters,
		GenericHide:   &b.GenericHide,

		TaggedFiltersAll: b.TaggedFiltersAll,

		EnableOptimizations: b.EnableOptimizations,

		Resources: &b.Resources,

		SimpleClassRules:  stableStringSet(c.SimpleClassRules),
		SimpleIDRules:     stableStringSet(c.SimpleIDRules),
		ComplexClassRules: stableSelectorMap(c.ComplexClassRules),
		ComplexIDRules:    stableSelectorMap(c.ComplexIDRules),

		SpecificRules: &c.SpecificRules,

		MiscGenericSelectors: stableStringSet(c.MiscGenericSelectors),

		Scriptlets: &c.Scriptlets,
	}
}

// Serialize emits the framing header followed by the encoded record.
func (f *SerializeFormat) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(datMagic)
	buf.WriteByte(formatVersion)
	if err := codec.NewEncoder(&buf).Encode(f); err != nil {
		return nil, &SerializationError{cause: err}
	}
	return buf.Bytes(), nil
}

// DeserializeFormat owns engine data decoded from a serialized blob, one
// field per schema position. It is consumed by Split, which moves the
// fields into the two engine halves without copying.
type DeserializeFormat struct {
	CSP           blocker.NetworkFilterList
	Exceptions    blocker.NetworkFilterList
	Importants    blocker.NetworkFilterList
	Redirects     blocker.NetworkFilterList
	FiltersTagged blocker.NetworkFilterList
	Filters       blocker.NetworkFilterList
	GenericHide   blocker.NetworkFilterList

	TaggedFiltersAll []filters.NetworkFilter

	EnableOptimizations bool

	Resources resources.RedirectResourceStorage

	SimpleClassRules  map[string]struct{}
	SimpleIDRules     map[string]struct{}
	ComplexClassRules map[string][]string
	ComplexIDRules    map[string][]string

	SpecificRules cosmetic.HostnameRuleDb

	MiscGenericSelectors map[string]struct{}

	Scriptlets resources.ScriptletResourceStorage
}

// Deserialize parses a serialized engine blob. The framing header is
// validated before any payload decoding; a record written by an older
// schema revision leaves its missing trailing fields at their defaults,
// and trailing fields from a newer revision are ignored.
func Deserialize(data []byte) (*DeserializeFormat, error) {
	if err := validateHeader(data); err != nil {
		return nil, err
	}

	var record []codec.RawMessage
	if err := codec.Unmarshal(data[headerLen:], &record); err != nil {
		return nil, &DeserializationError{cause: err}
	}

	f := &DeserializeFormat{}
	fields := []struct {
		name string
		dst  any
	}{
		{"csp", &f.CSP},
		{"exceptions", &f.Exceptions},
		{"importants", &f.Importants},
		{"redirects", &f.Redirects},
		{"filters_tagged", &f.FiltersTagged},
		{"filters", &f.Filters},
		{"generic_hide", &f.GenericHide},
		{"tagged_filters_all", &f.TaggedFiltersAll},
		{"enable_optimizations", &f.EnableOptimizations},
		{"resources", &f.Resources},
		{"simple_class_rules", (*stableStringSet)(&f.SimpleClassRules)},
		{"simple_id_rules", (*stableStringSet)(&f.SimpleIDRules)},
		{"complex_class_rules", (*stableSelectorMap)(&f.ComplexClassRules)},
		{"complex_id_rules", (*stableSelectorMap)(&f.ComplexIDRules)},
		{"specific_rules", &f.SpecificRules},
		{"misc_generic_selectors", (*stableStringSet)(&f.MiscGenericSelectors)},
		{"scriptlets", &f.Scriptlets},
	}
	for i, fd := range fields {
		if i >= len(record) {
			// Older writer: the remaining fields keep their defaults.
			break
		}
		if err := codec.Unmarshal(record[i], fd.dst); err != nil {
			return nil, &DeserializationError{Field: fd.name, cause: err}
		}
	}
	// record may carry more elements than fields; those were appended by
	// a newer schema revision and are ignored.

	return f, nil
}

// Split consumes the parsed format into the network and cosmetic engine
// halves. Runtime-only state that is never persisted (the tag activation
// set) starts out empty.
func (f *DeserializeFormat) Split() (blocker.Blocker, cosmetic.FilterCache) {
	// Trailing fields absent from an older revision decode as nil maps.
	// Restore the initialized-collection invariant so callers can add
	// selectors to the restored state right away.
	if f.SimpleClassRules == nil {
		f.SimpleClassRules = make(map[string]struct{})
	}
	if f.SimpleIDRules == nil {
		f.SimpleIDRules = make(map[string]struct{})
	}
	if f.ComplexClassRules == nil {
		f.ComplexClassRules = make(map[string][]string)
	}
	if f.ComplexIDRules == nil {
		f.ComplexIDRules = make(map[string][]string)
	}
	if f.MiscGenericSelectors == nil {
		f.MiscGenericSelectors = make(map[string]struct{})
	}

	b := blocker.Blocker{
		CSP:           f.CSP,
		Exceptions:    f.Exceptions,
		Importants:    f.Importants,
		Redirects:     f.Redirects,
		FiltersTagged: f.FiltersTagged,
		Filters:       f.Filters,
		GenericHide:   f.GenericHide,

		TagsEnabled:      make(map[string]struct{}),
		TaggedFiltersAll: f.TaggedFiltersAll,

		EnableOptimizations: f.EnableOptimizations,

		Resources: f.Resources,
	}
	c := cosmetic.FilterCache{
		SimpleClassRules:  f.SimpleClassRules,
		SimpleIDRules:     f.SimpleIDRules,
		ComplexClassRules: f.ComplexClassRules,
		ComplexIDRules:    f.ComplexIDRules,

		SpecificRules: f.SpecificRules,

		MiscGenericSelectors: f.MiscGenericSelectors,

		Scriptlets: f.Scriptlets,
	}
	return b, c
}
