package finder

import (
	"iter"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/breadcrumb"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/store"
)

// IndexedEffect is one inactive effect and its position in its own list.
type IndexedEffect struct {
	// Effect is the effect record exactly as stored.
	Effect map[string]any
	// EffectName is the registry name of the effect type, or the raw type id
	// when the registry does not know it.
	EffectName string
	// Index is the 0-based position within the containing effect list.
	Index int
}

// DisabledEffect is an inactive effect plus where it was found.
type DisabledEffect struct {
	IndexedEffect
	// Source is the key of the Source that produced it.
	Source string
	Path   breadcrumb.Path
}

// Source is one persisted store the finder knows how to walk.
type Source struct {
	Key   string
	Name  string
	Store string
	// Effects lazily walks the store. It never fails: problems are logged
	// and the sequence ends early or is empty.
	Effects func() iter.Seq[DisabledEffect]
}

// StoreOpener opens a store by its path relative to the profile directory.
type StoreOpener interface {
	Open(path string) (*store.Document, error)
}
