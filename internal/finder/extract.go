package finder

import (
	"fmt"
	"iter"
	"math"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/breadcrumb"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/store"
)

// Item is an owning item: anything that holds an effect list.
type Item struct {
	// Key is the member name for items stored in an object, empty for items
	// stored in an array.
	Key string
	// Data is nil when the stored value is not an object.
	Data map[string]any
}

// Resolver extracts an id or title from an owning item.
type Resolver func(Item) string

// walk describes how to label the items of one owning list.
type walk struct {
	source  string
	segment string
	base    breadcrumb.Path
	id      Resolver
	title   Resolver
}

// extract yields the inactive effects of every item, each carrying base
// extended by one segment for its item. Items without inactive effects add
// no segment and yield nothing.
func (f *Finder) extract(w walk, items []Item) iter.Seq[DisabledEffect] {
	return func(yield func(DisabledEffect) bool) {
		for index, item := range items {
			list, ok := effectList(item.Data)
			if !ok {
				f.log.Warnf("No effects or effect list found for item at index %d in source %s.", index, w.segment)
				continue
			}

			var path breadcrumb.Path
			extended := false
			for effect := range f.inactiveEffects(list, w.segment, index) {
				if !extended {
					title := w.title(item)
					if title == "" {
						title = fmt.Sprintf("<unknown %s>", w.segment)
					}
					path = w.base.Extend(w.segment, api.SourceInfo{ID: w.id(item), Title: title, Index: api.IndexOf(index)})
					extended = true
				}
				if !yield(DisabledEffect{IndexedEffect: effect, Source: w.source, Path: path}) {
					return
				}
			}
		}
	}
}

// inactiveEffects yields every effect of list whose active flag is not set,
// in list order and with its original index.
func (f *Finder) inactiveEffects(list []any, segment string, item int) iter.Seq[IndexedEffect] {
	return func(yield func(IndexedEffect) bool) {
		for index, raw := range list {
			effect, ok := raw.(map[string]any)
			if !ok {
				f.log.Warnf("Skipping effect at index %d of item %d in source %s: expected an object, found %T.", index, item, segment, raw)
				continue
			}
			if truthy(effect["active"]) {
				continue
			}
			if !yield(IndexedEffect{Effect: effect, EffectName: f.effectName(effect["type"]), Index: index}) {
				return
			}
		}
	}
}

func (f *Finder) effectName(typ any) string {
	id := stringOf(typ)
	if def, ok := f.types.EffectByID(id); ok {
		return def.Name
	}
	f.log.Warnf("Effect with ID %s not found.", id)
	return id
}

func effectList(data map[string]any) ([]any, bool) {
	effects, ok := data["effects"].(map[string]any)
	if !ok {
		return nil, false
	}
	list, ok := effects["list"].([]any)
	return list, ok
}

func arrayItems(values []any) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		data, _ := v.(map[string]any)
		items[i] = Item{Data: data}
	}
	return items
}

func entryItems(entries []store.Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		data, _ := e.Value.(map[string]any)
		items[i] = Item{Key: e.Key, Data: data}
	}
	return items
}

// field resolves a top-level member of the item, following nested members
// when more than one name is given.
func field(names ...string) Resolver {
	return func(item Item) string {
		var v any = item.Data
		for _, name := range names {
			m, ok := v.(map[string]any)
			if !ok {
				return ""
			}
			v = m[name]
		}
		return stringOf(v)
	}
}

func entryKey(item Item) string {
	return item.Key
}

// truthy follows the host's notion of a set flag: false, 0, "", null and a
// missing value are unset; everything else is set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int64:
		return t != 0
	case int:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64, int, float64, bool:
		return fmt.Sprint(t)
	default:
		return ""
	}
}
