package finder

import (
	"errors"
	"iter"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/breadcrumb"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/store"
)

// Store paths, relative to the profile directory.
const (
	EventsStore            = "events/events.json"
	PresetEffectListsStore = "effects/preset-effect-lists.json"
	CommandsStore          = "chat/commands.json"
	ChannelRewardsStore    = "channel-rewards.json"
	TimersStore            = "timers.json"
	ScheduledTasksStore    = "scheduled-tasks.json"
)

// Source keys, in scan order.
const (
	SourceEvents            = "events"
	SourcePresetEffectLists = "presetEffectLists"
	SourceCommands          = "commands"
	SourceChannelRewards    = "channelRewards"
	SourceTimers            = "timers"
	SourceScheduledTasks    = "scheduledTasks"
)

// commandTypes are the sections of the commands store that hold command
// definitions. System commands are stored as overrides and are not scanned.
var commandTypes = []struct{ key, title string }{
	{key: "customCommands", title: "Custom Commands"},
}

// keyedSource is a store whose top level maps ids to owning items.
type keyedSource struct {
	key     string
	name    string
	store   string
	top     api.SourceEntry
	segment string
	title   Resolver
}

func (f *Finder) defaultSources() []Source {
	presets := keyedSource{
		key:     SourcePresetEffectLists,
		name:    "Preset Effect Lists",
		store:   PresetEffectListsStore,
		top:     breadcrumb.Segment("top", "presetEffectList", "Preset Effect List"),
		segment: "presetEffectList",
		title:   field("name"),
	}
	rewards := keyedSource{
		key:     SourceChannelRewards,
		name:    "Channel Rewards",
		store:   ChannelRewardsStore,
		top:     breadcrumb.Segment("top", "channelReward", "Channel Reward"),
		segment: "channelReward",
		title:   field("twitchData", "title"),
	}
	timers := keyedSource{
		key:     SourceTimers,
		name:    "Timers",
		store:   TimersStore,
		top:     breadcrumb.Segment("top", "timer", "Timer"),
		segment: "timer",
		title:   field("name"),
	}
	tasks := keyedSource{
		key:     SourceScheduledTasks,
		name:    "Scheduled Tasks",
		store:   ScheduledTasksStore,
		top:     breadcrumb.Segment("top", "scheduledTask", "Scheduled Task"),
		segment: "scheduledTask",
		title:   field("name"),
	}

	return []Source{
		{Key: SourceEvents, Name: "Events", Store: EventsStore, Effects: f.eventEffects},
		f.keyed(presets),
		{Key: SourceCommands, Name: "Commands", Store: CommandsStore, Effects: f.commandEffects},
		f.keyed(rewards),
		f.keyed(timers),
		f.keyed(tasks),
	}
}

// eventEffects walks the main event list and then every active group.
// A disabled group silences everything inside it, so its events are not
// reported even when individually disabled.
func (f *Finder) eventEffects() iter.Seq[DisabledEffect] {
	return func(yield func(DisabledEffect) bool) {
		doc, err := f.stores.Open(EventsStore)
		if err != nil {
			f.log.Warnf("There was an error reading events data file %s: %v", EventsStore, err)
			return
		}

		top := breadcrumb.Segment("top", "event", "Event")

		if main, err := doc.Get("/mainEvents"); err == nil {
			if events, ok := main.([]any); ok {
				w := walk{
					source:  SourceEvents,
					segment: "event",
					base:    breadcrumb.New(top),
					id:      field("eventId"),
					title:   field("name"),
				}
				if !yieldAll(f.extract(w, arrayItems(events)), yield) {
					return
				}
			}
		}

		groups, err := doc.Entries("/groups")
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				f.log.Debugf("Skipping event groups: %v", err)
			}
			return
		}
		for gIndex, entry := range groups {
			group, _ := entry.Value.(map[string]any)
			if !truthy(group["active"]) {
				continue
			}
			events, ok := group["events"].([]any)
			if !ok {
				continue
			}

			title := stringOf(group["name"])
			if title == "" {
				title = "<unknown group>"
			}
			w := walk{
				source:  SourceEvents,
				segment: "event",
				base: breadcrumb.New(top, api.SourceEntry{
					Key:        "group",
					SourceInfo: api.SourceInfo{ID: stringOf(group["id"]), Title: title, Index: api.IndexOf(gIndex)},
				}),
				id:    field("eventId"),
				title: field("name"),
			}
			if !yieldAll(f.extract(w, arrayItems(events)), yield) {
				return
			}
		}
	}
}

// commandEffects walks every command section. A section that cannot be read
// is logged and the remaining sections are still scanned.
func (f *Finder) commandEffects() iter.Seq[DisabledEffect] {
	return func(yield func(DisabledEffect) bool) {
		doc, err := f.stores.Open(CommandsStore)
		if err != nil {
			f.log.Warnf("There was an error reading commands data file %s: %v", CommandsStore, err)
			return
		}

		for _, ct := range commandTypes {
			entries, err := doc.Entries("/" + ct.key)
			if err != nil {
				f.log.Warnf("There was an error reading %s from commands data file %s: %v", ct.key, CommandsStore, err)
				continue
			}
			w := walk{
				source:  SourceCommands,
				segment: "command",
				base: breadcrumb.New(
					breadcrumb.Segment("top", "command", "Command"),
					breadcrumb.Segment("commandType", ct.key, ct.title),
				),
				id:    entryKey,
				title: field("trigger"),
			}
			if !yieldAll(f.extract(w, entryItems(entries)), yield) {
				return
			}
		}
	}
}

func (f *Finder) keyed(ks keyedSource) Source {
	effects := func() iter.Seq[DisabledEffect] {
		return func(yield func(DisabledEffect) bool) {
			doc, err := f.stores.Open(ks.store)
			if err != nil {
				f.log.Warnf("There was an error reading %s data file %s: %v", ks.name, ks.store, err)
				return
			}
			entries, err := doc.Entries("/")
			if err != nil {
				f.log.Warnf("There was an error reading %s data file %s: %v", ks.name, ks.store, err)
				return
			}
			w := walk{
				source:  ks.key,
				segment: ks.segment,
				base:    breadcrumb.New(ks.top),
				id:      entryKey,
				title:   ks.title,
			}
			yieldAll(f.extract(w, entryItems(entries)), yield)
		}
	}
	return Source{Key: ks.key, Name: ks.name, Store: ks.store, Effects: effects}
}

func yieldAll(seq iter.Seq[DisabledEffect], yield func(DisabledEffect) bool) bool {
	for d := range seq {
		if !yield(d) {
			return false
		}
	}
	return true
}
