// Package filters defines the compiled network rule representation shared
// between the request matcher and the persistence layer. Compiling filter
// list text into these rules is the parser's job; this package is the data
// contract only.
package filters

// FilterMask packs the boolean properties of a compiled rule into a single
// word. The on-wire value is the raw integer, so existing bits must never
// be renumbered.
type FilterMask uint32

const (
	// MaskThirdParty restricts the rule to third-party requests.
	MaskThirdParty FilterMask = 1 << iota
	// MaskFirstParty restricts the rule to first-party requests.
	MaskFirstParty
	// MaskIsException marks an exception (unblocking) rule.
	MaskIsException
	// MaskIsImportant marks a rule that overrides exceptions.
	MaskIsImportant
	// MaskIsRedirect marks a rule that answers with an inline resource.
	MaskIsRedirect
	// MaskIsCSP marks a rule that injects a Content-Security-Policy.
	MaskIsCSP
	// MaskIsGenericHide disables generic cosmetic rules for a site.
	MaskIsGenericHide
	// MaskMatchCase requires case-sensitive pattern matching.
	MaskMatchCase
	// MaskIsHostnameAnchor anchors the pattern to a hostname boundary.
	MaskIsHostnameAnchor
	// MaskIsRegex marks a pattern that is a regular expression source.
	MaskIsRegex
)

// NetworkFilter is one compiled network-matching rule.
type NetworkFilter struct {
	Mask           FilterMask `cbor:"mask"`
	Pattern        string     `cbor:"pattern,omitempty"`
	Hostname       string     `cbor:"hostname,omitempty"`
	IncludeDomains []uint64   `cbor:"include_domains,omitempty"`
	ExcludeDomains []uint64   `cbor:"exclude_domains,omitempty"`
	Redirect       string     `cbor:"redirect,omitempty"`
	CSP            string     `cbor:"csp,omitempty"`
	Tag            string     `cbor:"tag,omitempty"`
	ID             uint64     `cbor:"id"`
}

// HasTag reports whether the rule is gated behind an activation tag.
func (f *NetworkFilter) HasTag() bool { return f.Tag != "" }

// IsException reports whether the rule unblocks matching requests.
func (f *NetworkFilter) IsException() bool { return f.Mask&MaskIsException != 0 }

// IsImportant reports whether the rule overrides exception rules.
func (f *NetworkFilter) IsImportant() bool { return f.Mask&MaskIsImportant != 0 }

// IsRedirect reports whether the rule serves an inline redirect resource.
func (f *NetworkFilter) IsRedirect() bool { return f.Mask&MaskIsRedirect != 0 }
