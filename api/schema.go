package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SourceInfo is one named location on the way to an effect list.
type SourceInfo struct {
	// ID is the stable identifier of the location (event id, command id, ...).
	ID string `json:"id"`
	// Title is the display name. May be empty.
	Title string `json:"title"`
	// Index is the 0-based position among siblings, when the location has one.
	Index *int `json:"index,omitempty"`
}

// IndexOf returns a pointer suitable for SourceInfo.Index.
func IndexOf(i int) *int {
	return &i
}

// SourceEntry is a SourceInfo flattened together with its breadcrumb key.
// It exists for consumers that cannot keep the order of a JSON object.
type SourceEntry struct {
	Key string `json:"key"`
	SourceInfo
}

// RawRecord is the structured form of one disabled effect.
type RawRecord struct {
	// Source is the key of the effect source that found the effect.
	Source string `json:"source"`
	// Effect is the effect exactly as stored.
	Effect map[string]any `json:"effect"`
	// EffectName is the display name of the effect type.
	EffectName string `json:"effectName"`
	// Index is the 0-based position of the effect in its own list.
	Index int `json:"index"`
	// SourceMap maps breadcrumb keys to locations, in breadcrumb order.
	SourceMap *orderedmap.OrderedMap[string, SourceInfo] `json:"sourceMap"`
	// SourceList holds the same breadcrumb as an ordered list.
	SourceList []SourceEntry `json:"sourceList"`
}

// VariableUsage documents one way of calling a variable.
type VariableUsage struct {
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

// VariableDefinition describes a query that a host can evaluate by handle.
type VariableDefinition struct {
	Handle             string          `json:"handle"`
	Description        string          `json:"description"`
	Examples           []VariableUsage `json:"examples,omitempty"`
	Categories         []string        `json:"categories"`
	PossibleDataOutput []string        `json:"possibleDataOutput"`
}
