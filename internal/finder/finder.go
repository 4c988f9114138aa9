// Package finder scans a profile's stores for effects that have been turned
// off and reports where each one lives.
package finder

import (
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/cache"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/effecttype"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/logging"
)

// resultsKey is the cache key for the aggregated scan.
const resultsKey = "findDisabledEvents"

// Finder drives the scan over every registered source.
type Finder struct {
	stores  StoreOpener
	types   effecttype.Registry
	results *cache.Store[[]DisabledEffect]
	log     logging.Logger
	sources []Source
}

// New creates a finder. A nil registry falls back to the built-in effect
// catalog, a nil cache disables result caching, a nil logger discards.
func New(stores StoreOpener, types effecttype.Registry, results *cache.Store[[]DisabledEffect], log logging.Logger) *Finder {
	if types == nil {
		types = effecttype.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	f := &Finder{
		stores:  stores,
		types:   types,
		results: results,
		log:     log,
	}
	f.sources = f.defaultSources()
	return f
}

// Sources returns the registered sources in scan order.
func (f *Finder) Sources() []Source {
	out := make([]Source, len(f.sources))
	copy(out, f.sources)
	return out
}

// FindDisabled returns every disabled effect across all sources, in source
// order. Results are cached for the cache's TTL; within that window stores
// are not read again.
func (f *Finder) FindDisabled() []DisabledEffect {
	if hit, ok := f.results.Get(resultsKey); ok {
		f.log.Debugf("findDisabledEvents using cached findDisabledEvents data.")
		return hit
	}

	results := []DisabledEffect{}
	for _, src := range f.sources {
		results = append(results, f.collect(src)...)
	}
	f.log.Debugf("findDisabledEvents found %d disabled effects across all sources.", len(results))
	f.results.Set(resultsKey, results)
	return results
}

// Invalidate drops the cached aggregate so the next call rescans.
func (f *Finder) Invalidate() {
	f.results.Invalidate(resultsKey)
}

// collect drains one source. A source that panics contributes nothing.
func (f *Finder) collect(src Source) (found []DisabledEffect) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Warnf("There was an error scanning %s (%s): %v", src.Name, src.Store, r)
			found = nil
		}
	}()
	for d := range src.Effects() {
		found = append(found, d)
	}
	return found
}
