package store

import (
	"fmt"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/cache"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/logging"
)

// Opener loads stores from a profile filesystem and keeps parsed documents
// in a short-lived cache keyed by store path.
type Opener struct {
	fs   billy.Filesystem
	docs *cache.Store[*Document]
	log  logging.Logger
}

// NewOpener creates an opener rooted at fs. Paths given to Open are relative
// to that root. docs may be nil to disable caching.
func NewOpener(fs billy.Filesystem, docs *cache.Store[*Document], log logging.Logger) *Opener {
	if log == nil {
		log = logging.Nop()
	}
	return &Opener{fs: fs, docs: docs, log: log}
}

// CacheKey is the cache key used for the store at path.
func CacheKey(path string) string {
	return "file:" + path
}

// Open returns the parsed store at path. Failures are not cached, so a store
// that appears later is picked up on the next call.
func (o *Opener) Open(path string) (*Document, error) {
	if doc, ok := o.docs.Get(CacheKey(path)); ok {
		o.log.Debugf("Using cached store for %s", path)
		return doc, nil
	}

	data, err := util.ReadFile(o.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", o.describe(path), err)
	}
	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	o.log.Debugf("Loaded store at %s", o.describe(path))
	o.docs.Set(CacheKey(path), doc)
	return doc, nil
}

// Invalidate drops the cached document for path.
func (o *Opener) Invalidate(path string) {
	o.docs.Invalidate(CacheKey(path))
}

// Root returns the filesystem root, for diagnostics.
func (o *Opener) Root() string {
	return o.fs.Root()
}

func (o *Opener) describe(path string) string {
	return o.fs.Join(o.fs.Root(), path)
}
