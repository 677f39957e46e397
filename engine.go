package adblockgo

import (
	"github.com/adblockgo/adblockgo/blocker"
	"github.com/adblockgo/adblockgo/cosmetic"
	"github.com/adblockgo/adblockgo/dataformat"
)

// Engine owns the compiled filtering state and converts it to and from its
// serialized form. Parsing filter lists and matching requests live with
// the engine's other components; Engine is the unit that persists and
// restores their state.
type Engine struct {
	blocker  blocker.Blocker
	cosmetic cosmetic.FilterCache
	logger   *Logger
}

// New returns an Engine with empty state.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{
		blocker:  blocker.New(o.enableOptimizations),
		cosmetic: *cosmetic.NewFilterCache(),
		logger:   o.logger,
	}
}

// FromParts assembles an Engine around already-built state halves. The
// halves are moved in, not copied.
func FromParts(b blocker.Blocker, c cosmetic.FilterCache, opts ...Option) *Engine {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{
		blocker:  b,
		cosmetic: c,
		logger:   o.logger,
	}
}

// Blocker exposes the network-filtering half of the state.
func (e *Engine) Blocker() *blocker.Blocker { return &e.blocker }

// Cosmetic exposes the element-hiding half of the state.
func (e *Engine) Cosmetic() *cosmetic.FilterCache { return &e.cosmetic }

// Serialize converts the engine state into a self-contained binary blob.
// It only reads through the state, so it is safe to run alongside other
// readers, but callers must not mutate the state concurrently.
func (e *Engine) Serialize() ([]byte, error) {
	data, err := dataformat.NewSerializeFormat(&e.blocker, &e.cosmetic).Serialize()
	e.logger.LogSerialize(len(data), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Deserialize replaces the engine state with the contents of a serialized
// blob. On error the existing state is left untouched. Runtime-only state
// such as the active tag set resets to empty; call UseTags on the blocker
// afterwards to re-activate tags.
func (e *Engine) Deserialize(data []byte) error {
	f, err := dataformat.Deserialize(data)
	e.logger.LogDeserialize(len(data), err)
	if err != nil {
		return err
	}
	e.blocker, e.cosmetic = f.Split()
	return nil
}
