// Package resources holds the redirect and scriptlet resource tables. The
// persistence layer round-trips both tables as opaque units; serving
// redirects and expanding scriptlet templates happen elsewhere.
package resources

// RedirectResource is an inline response payload served in place of a
// blocked request.
type RedirectResource struct {
	ContentType string `cbor:"content_type"`
	Data        string `cbor:"data"`
}

// RedirectResourceStorage maps resource names to redirect payloads.
type RedirectResourceStorage struct {
	Resources map[string]RedirectResource `cbor:"resources"`
}

// Add stores a redirect resource under name, replacing any previous entry.
func (s *RedirectResourceStorage) Add(name string, r RedirectResource) {
	if s.Resources == nil {
		s.Resources = make(map[string]RedirectResource)
	}
	s.Resources[name] = r
}

// Get looks up a redirect resource by name.
func (s *RedirectResourceStorage) Get(name string) (RedirectResource, bool) {
	r, ok := s.Resources[name]
	return r, ok
}

// ScriptletResource is an injectable script template keyed by name.
type ScriptletResource struct {
	Scriptlet string `cbor:"scriptlet"`
}

// ScriptletResourceStorage maps scriptlet names to script templates.
type ScriptletResourceStorage struct {
	Resources map[string]ScriptletResource `cbor:"resources"`
}

// Add stores a scriptlet under name, replacing any previous entry.
func (s *ScriptletResourceStorage) Add(name string, r ScriptletResource) {
	if s.Resources == nil {
		s.Resources = make(map[string]ScriptletResource)
	}
	s.Resources[name] = r
}

// Get looks up a scriptlet by name.
func (s *ScriptletResourceStorage) Get(name string) (ScriptletResource, bool) {
	r, ok := s.Resources[name]
	return r, ok
}
