// Package blocker holds the network-filtering half of the engine state:
// the categorized rule buckets consulted during request matching. The
// matching algorithm itself lives with the engine; this package defines
// the state the persistence layer reads and rebuilds.
package blocker

import (
	"github.com/adblockgo/adblockgo/filters"
	"github.com/adblockgo/adblockgo/resources"
)

// NetworkFilterList is an order-significant bucket of compiled rules.
// Evaluation order within a bucket is part of matching semantics, so the
// slice order round-trips exactly through serialization.
type NetworkFilterList struct {
	Filters []filters.NetworkFilter `cbor:"filters"`
}

// Push appends a rule to the bucket, preserving evaluation order.
func (l *NetworkFilterList) Push(f filters.NetworkFilter) {
	l.Filters = append(l.Filters, f)
}

// Len returns the number of rules in the bucket.
func (l *NetworkFilterList) Len() int { return len(l.Filters) }

// Blocker is the network request blocking state.
type Blocker struct {
	CSP           NetworkFilterList
	Exceptions    NetworkFilterList
	Importants    NetworkFilterList
	Redirects     NetworkFilterList
	FiltersTagged NetworkFilterList
	Filters       NetworkFilterList
	GenericHide   NetworkFilterList

	// TagsEnabled is the active tag set. It is derived at runtime from
	// UseTags and never persisted; deserialization resets it to empty.
	TagsEnabled map[string]struct{}

	// TaggedFiltersAll pools every tag-gated rule; FiltersTagged holds the
	// subset whose tags are currently enabled.
	TaggedFiltersAll []filters.NetworkFilter

	// EnableOptimizations records whether rule-merging optimizations were
	// applied when the buckets were built. It affects matching semantics
	// and must survive a round trip.
	EnableOptimizations bool

	Resources resources.RedirectResourceStorage
}

// New returns a Blocker with empty buckets and an initialized tag set.
func New(enableOptimizations bool) Blocker {
	return Blocker{
		TagsEnabled:         make(map[string]struct{}),
		EnableOptimizations: enableOptimizations,
	}
}

// UseTags replaces the active tag set and rebuilds the tagged bucket from
// the pooled rules.
func (b *Blocker) UseTags(tags []string) {
	enabled := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		enabled[t] = struct{}{}
	}
	b.TagsEnabled = enabled

	b.FiltersTagged = NetworkFilterList{}
	for _, f := range b.TaggedFiltersAll {
		if !f.HasTag() {
			continue
		}
		if _, ok := enabled[f.Tag]; ok {
			b.FiltersTagged.Push(f)
		}
	}
}

// TagEnabled reports whether a tag is currently active.
func (b *Blocker) TagEnabled(tag string) bool {
	_, ok := b.TagsEnabled[tag]
	return ok
}
