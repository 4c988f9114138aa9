// Package breadcrumb models the ordered chain of named locations that leads
// to an effect list, e.g. Event > Some Group > Some Event.
package breadcrumb

import (
	"encoding/json"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Path is an insertion-ordered mapping from segment key to location.
// A Path is never modified after construction: Extend returns a copy,
// so a base path can be shared by sibling items safely.
// The zero value is an empty path.
type Path struct {
	m *orderedmap.OrderedMap[string, api.SourceInfo]
}

// Segment is shorthand for a keyed location without an index.
func Segment(key, id, title string) api.SourceEntry {
	return api.SourceEntry{Key: key, SourceInfo: api.SourceInfo{ID: id, Title: title}}
}

// New builds a path from segments in display order. A repeated key keeps its
// first position and takes the last value.
func New(segments ...api.SourceEntry) Path {
	m := orderedmap.New[string, api.SourceInfo](len(segments))
	for _, s := range segments {
		m.Set(s.Key, detach(s.SourceInfo))
	}
	return Path{m: m}
}

// Extend returns a new path with key appended. If key is already present its
// value is replaced in place, keeping keys unique.
func (p Path) Extend(key string, info api.SourceInfo) Path {
	m := p.clone()
	m.Set(key, detach(info))
	return Path{m: m}
}

// Len returns the number of segments.
func (p Path) Len() int {
	if p.m == nil {
		return 0
	}
	return p.m.Len()
}

// Get returns the location stored under key.
func (p Path) Get(key string) (api.SourceInfo, bool) {
	if p.m == nil {
		return api.SourceInfo{}, false
	}
	info, ok := p.m.Get(key)
	return detach(info), ok
}

// Has reports whether the path contains a segment with the given key.
func (p Path) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the segment keys in order.
func (p Path) Keys() []string {
	keys := make([]string, 0, p.Len())
	for _, e := range p.Entries() {
		keys = append(keys, e.Key)
	}
	return keys
}

// Entries returns the segments in order.
func (p Path) Entries() []api.SourceEntry {
	if p.m == nil {
		return []api.SourceEntry{}
	}
	out := make([]api.SourceEntry, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, api.SourceEntry{Key: pair.Key, SourceInfo: detach(pair.Value)})
	}
	return out
}

// Titles returns every segment title in order, including empty ones.
func (p Path) Titles() []string {
	titles := make([]string, 0, p.Len())
	for _, e := range p.Entries() {
		titles = append(titles, e.Title)
	}
	return titles
}

// Map returns a copy of the underlying ordered mapping.
func (p Path) Map() *orderedmap.OrderedMap[string, api.SourceInfo] {
	return p.clone()
}

// MarshalJSON encodes the path as a JSON object in segment order.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.clone())
}

func (p Path) clone() *orderedmap.OrderedMap[string, api.SourceInfo] {
	m := orderedmap.New[string, api.SourceInfo](p.Len() + 1)
	if p.m == nil {
		return m
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Key, detach(pair.Value))
	}
	return m
}

// detach gives info its own Index so callers cannot reach the path's copy.
func detach(info api.SourceInfo) api.SourceInfo {
	if info.Index != nil {
		info.Index = api.IndexOf(*info.Index)
	}
	return info
}
