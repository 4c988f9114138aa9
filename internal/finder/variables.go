package finder

import (
	"context"
	"fmt"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/variable"
)

const (
	HandleDisabledEffects    = "disabledEffects"
	HandleDisabledEffectsRaw = "disabledEffectsRaw"
)

// DisabledEffects returns a description of every disabled effect in
// category, or of all of them when category is empty. It never fails: any
// error is logged and an empty list returned.
func (f *Finder) DisabledEffects(category string) (descriptions []string) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Warnf("There was an error evaluating the %s variable: %v", HandleDisabledEffects, r)
			descriptions = []string{}
		}
	}()

	descriptions = []string{}
	for _, d := range f.FindDisabled() {
		if d.Matches(category) {
			descriptions = append(descriptions, Describe(d))
		}
	}
	f.log.Debugf("%s found %d disabled effects for event type '%s'.", HandleDisabledEffects, len(descriptions), category)
	return descriptions
}

// DisabledEffectsRaw returns every disabled effect as a structured record.
// Like DisabledEffects it never fails.
func (f *Finder) DisabledEffectsRaw() (records []api.RawRecord) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Warnf("There was an error evaluating the %s variable: %v", HandleDisabledEffectsRaw, r)
			records = []api.RawRecord{}
		}
	}()

	found := f.FindDisabled()
	records = make([]api.RawRecord, 0, len(found))
	for _, d := range found {
		records = append(records, d.Raw())
	}
	f.log.Debugf("%s found %d disabled effects.", HandleDisabledEffectsRaw, len(records))
	return records
}

// Variables returns the host variable definitions backed by f.
func (f *Finder) Variables() []variable.Variable {
	return []variable.Variable{
		{
			Definition: api.VariableDefinition{
				Handle:      HandleDisabledEffects,
				Description: "Gets the effects that are disabled in your Firebot setup.",
				Examples: []api.VariableUsage{
					{
						Usage:       HandleDisabledEffects,
						Description: "Returns a list of all disabled effects as an array of strings.",
					},
					{
						Usage:       HandleDisabledEffects + "[events]",
						Description: "Returns a list of all disabled effects within events as an array of strings.",
					},
				},
				Categories:         []string{"common"},
				PossibleDataOutput: []string{"array"},
			},
			Evaluator: func(_ context.Context, _ variable.Trigger, args ...string) (any, error) {
				category := ""
				if len(args) > 0 {
					category = args[0]
				}
				return f.DisabledEffects(category), nil
			},
		},
		{
			Definition: api.VariableDefinition{
				Handle:             HandleDisabledEffectsRaw,
				Description:        "Gets the effects that are disabled in your Firebot setup as a JSON array (see documentation).",
				Categories:         []string{"common"},
				PossibleDataOutput: []string{"array"},
			},
			Evaluator: func(_ context.Context, _ variable.Trigger, _ ...string) (any, error) {
				return f.DisabledEffectsRaw(), nil
			},
		},
	}
}

// RegisterVariables registers both variables with m.
func (f *Finder) RegisterVariables(m *variable.Manager) error {
	for _, v := range f.Variables() {
		if err := m.Register(v); err != nil {
			return fmt.Errorf("register disabled effect variables: %w", err)
		}
	}
	return nil
}
