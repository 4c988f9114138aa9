package finder

import (
	"fmt"
	"strings"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
)

// Separator joins breadcrumb titles in descriptions.
const Separator = " > "

// Describe renders d as "Title > Title > #N. Effect Name". Empty titles are
// left out and N is 1-based.
func Describe(d DisabledEffect) string {
	parts := make([]string, 0, d.Path.Len()+1)
	for _, title := range d.Path.Titles() {
		if title != "" {
			parts = append(parts, title)
		}
	}
	parts = append(parts, fmt.Sprintf("#%d. %s", d.Index+1, d.EffectName))
	return strings.Join(parts, Separator)
}

// Matches reports whether d belongs to category. An empty category matches
// everything. Otherwise the category may name the source key ("events"),
// the top-level id ("event") or any breadcrumb key ("group").
//
// Source keys are not breadcrumb keys, so a result matched by "timers" does
// not carry a "timers" segment. Its breadcrumb does carry the "top" segment
// whose id names the source ("timer").
func (d DisabledEffect) Matches(category string) bool {
	if category == "" || d.Source == category || d.Path.Has(category) {
		return true
	}
	top, ok := d.Path.Get("top")
	return ok && top.ID == category
}

// Raw converts d to its structured record.
func (d DisabledEffect) Raw() api.RawRecord {
	return api.RawRecord{
		Source:     d.Source,
		Effect:     d.Effect,
		EffectName: d.EffectName,
		Index:      d.Index,
		SourceMap:  d.Path.Map(),
		SourceList: d.Path.Entries(),
	}
}
