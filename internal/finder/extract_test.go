package finder

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/breadcrumb"
)

func testWalk() walk {
	return walk{
		source:  "timers",
		segment: "timer",
		base:    breadcrumb.New(breadcrumb.Segment("top", "timer", "Timer")),
		id:      entryKey,
		title:   field("name"),
	}
}

func effects(list ...any) map[string]any {
	return map[string]any{"list": list}
}

func TestExtract_OnlyInactiveEffects(t *testing.T) {
	f, _, _ := newObservedFinder(t, nil, time.Minute)

	items := []Item{
		{Key: "a", Data: map[string]any{"name": "All On", "effects": effects(
			map[string]any{"type": "firebot:chat", "active": true},
		)}},
		{Key: "b", Data: map[string]any{"name": "Mixed", "effects": effects(
			map[string]any{"type": "firebot:chat", "active": true},
			map[string]any{"type": "firebot:delay", "active": false},
			map[string]any{"type": "firebot:playsound"},
		)}},
	}

	got := slices.Collect(f.extract(testWalk(), items))
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "Delay", got[0].EffectName)
	assert.Equal(t, 2, got[1].Index, "effect index is its position in the original list")
	assert.Equal(t, "Play Sound", got[1].EffectName)

	for _, d := range got {
		assert.Equal(t, "timers", d.Source)
		assert.Equal(t, []string{"top", "timer"}, d.Path.Keys())
		entry, _ := d.Path.Get("timer")
		assert.Equal(t, "b", entry.ID)
		assert.Equal(t, "Mixed", entry.Title)
		assert.Equal(t, 1, *entry.Index)
	}
	assert.Equal(t, got[0].Path.Entries(), got[1].Path.Entries())
}

func TestExtract_BaseIsNotModified(t *testing.T) {
	f, _, _ := newObservedFinder(t, nil, time.Minute)
	w := testWalk()

	items := []Item{{Key: "x", Data: map[string]any{"effects": effects(map[string]any{"type": "firebot:chat", "active": false})}}}
	got := slices.Collect(f.extract(w, items))

	require.Len(t, got, 1)
	assert.Equal(t, 1, w.base.Len())
	assert.Equal(t, 2, got[0].Path.Len())
}

func TestExtract_UnknownTitle(t *testing.T) {
	f, _, _ := newObservedFinder(t, nil, time.Minute)

	items := []Item{{Key: "x", Data: map[string]any{"effects": effects(map[string]any{"type": "firebot:chat", "active": false})}}}
	got := slices.Collect(f.extract(testWalk(), items))

	require.Len(t, got, 1)
	entry, _ := got[0].Path.Get("timer")
	assert.Equal(t, "<unknown timer>", entry.Title)
}

func TestExtract_MalformedItems(t *testing.T) {
	f, _, logs := newObservedFinder(t, nil, time.Minute)

	items := []Item{
		{Key: "no-effects", Data: map[string]any{"name": "Nothing"}},
		{Key: "no-list", Data: map[string]any{"effects": map[string]any{"id": "x"}}},
		{Key: "not-an-object"},
		{Key: "ok", Data: map[string]any{"effects": effects(
			"garbage",
			map[string]any{"type": "firebot:chat", "active": false},
		)}},
	}

	got := slices.Collect(f.extract(testWalk(), items))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)

	warns := logs.FilterLevelExact(zapcore.WarnLevel)
	for _, index := range []string{"index 0", "index 1", "index 2"} {
		assert.Equal(t, 1, warns.FilterMessageSnippet("No effects or effect list found for item at "+index+" in source timer").Len())
	}
	assert.Equal(t, 1, warns.FilterMessageSnippet("Skipping effect at index 0 of item 3").Len())
}

func TestExtract_UnknownEffectType(t *testing.T) {
	f, _, logs := newObservedFinder(t, nil, time.Minute)

	items := []Item{{Key: "x", Data: map[string]any{"effects": effects(
		map[string]any{"type": "thirdparty:thing", "active": false},
		map[string]any{"active": false},
	)}}}

	got := slices.Collect(f.extract(testWalk(), items))
	require.Len(t, got, 2)
	assert.Equal(t, "thirdparty:thing", got[0].EffectName)
	assert.Equal(t, "", got[1].EffectName)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Effect with ID thirdparty:thing not found.").Len())
}

func TestExtract_StopsWhenConsumerStops(t *testing.T) {
	f, _, _ := newObservedFinder(t, nil, time.Minute)

	items := []Item{{Key: "x", Data: map[string]any{"effects": effects(
		map[string]any{"type": "firebot:chat"},
		map[string]any{"type": "firebot:chat"},
		map[string]any{"type": "firebot:chat"},
	)}}}

	n := 0
	for range f.extract(testWalk(), items) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", int64(0), false},
		{"one int", int64(1), true},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"float", 0.5, true},
		{"empty string", "", false},
		{"string", "false", true},
		{"object", map[string]any{}, true},
		{"array", []any{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy(tt.in))
		})
	}
}

func TestField(t *testing.T) {
	item := Item{Data: map[string]any{
		"name":       "Hydrate",
		"count":      int64(3),
		"twitchData": map[string]any{"title": "Drink Water"},
	}}

	assert.Equal(t, "Hydrate", field("name")(item))
	assert.Equal(t, "3", field("count")(item))
	assert.Equal(t, "Drink Water", field("twitchData", "title")(item))
	assert.Equal(t, "", field("twitchData", "missing")(item))
	assert.Equal(t, "", field("name", "deeper")(item))
	assert.Equal(t, "", field("name")(Item{}))
}
