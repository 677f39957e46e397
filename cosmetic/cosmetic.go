// Package cosmetic holds the element-hiding half of the engine state. The
// selector matching logic lives with the engine; this package defines the
// state the persistence layer reads and rebuilds.
package cosmetic

import (
	"github.com/adblockgo/adblockgo/resources"
)

// StyleInjection pairs a selector with the style override applied to it.
type StyleInjection struct {
	Selector string `cbor:"selector"`
	Style    string `cbor:"style"`
}

// HostnameRuleDb stores per-hostname cosmetic rules keyed by hostname
// hash. The persistence layer round-trips it as a unit.
type HostnameRuleDb struct {
	Hide         map[uint64][]string         `cbor:"hide"`
	Style        map[uint64][]StyleInjection `cbor:"style"`
	InjectScript map[uint64][]string         `cbor:"inject_script"`
}

// FilterCache is the cosmetic-filtering engine state.
type FilterCache struct {
	// Simple selectors match by bare class or id and are keyed by that
	// string alone. Membership only; no meaningful order.
	SimpleClassRules map[string]struct{}
	SimpleIDRules    map[string]struct{}

	// Complex selectors carry extended match expressions. Map keys are
	// unordered; each per-key slice keeps its original order.
	ComplexClassRules map[string][]string
	ComplexIDRules    map[string][]string

	SpecificRules HostnameRuleDb

	// MiscGenericSelectors holds hostname-independent selectors not
	// covered by the simple sets.
	MiscGenericSelectors map[string]struct{}

	Scriptlets resources.ScriptletResourceStorage
}

// NewFilterCache returns a FilterCache with all collections initialized.
func NewFilterCache() *FilterCache {
	return &FilterCache{
		SimpleClassRules:     make(map[string]struct{}),
		SimpleIDRules:        make(map[string]struct{}),
		ComplexClassRules:    make(map[string][]string),
		ComplexIDRules:       make(map[string][]string),
		MiscGenericSelectors: make(map[string]struct{}),
	}
}
