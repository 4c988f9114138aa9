// Package variable is a registry of named queries that a host evaluates by
// handle, e.g. $disabledEffects[events] in a chat message template.
package variable

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
)

var (
	ErrUnknownHandle   = errors.New("unknown variable handle")
	ErrDuplicateHandle = errors.New("variable handle already registered")
)

// Trigger carries what the host knows about why a variable is evaluated.
type Trigger struct {
	Type     string
	Metadata map[string]any
}

// Evaluator computes a variable's value.
type Evaluator func(ctx context.Context, trigger Trigger, args ...string) (any, error)

// Variable pairs a definition with its evaluator.
type Variable struct {
	Definition api.VariableDefinition
	Evaluator  Evaluator
}

// Manager holds registered variables in registration order.
type Manager struct {
	mu    sync.RWMutex
	order []string
	vars  map[string]Variable
}

func NewManager() *Manager {
	return &Manager{vars: make(map[string]Variable)}
}

// Register adds v. Handles must be non-empty and unique.
func (m *Manager) Register(v Variable) error {
	handle := v.Definition.Handle
	if handle == "" {
		return fmt.Errorf("register variable: empty handle")
	}
	if v.Evaluator == nil {
		return fmt.Errorf("register variable %s: nil evaluator", handle)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vars[handle]; exists {
		return fmt.Errorf("register variable %s: %w", handle, ErrDuplicateHandle)
	}
	m.vars[handle] = v
	m.order = append(m.order, handle)
	return nil
}

// Get returns the variable registered under handle.
func (m *Manager) Get(handle string) (Variable, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[handle]
	return v, ok
}

// Variables returns all variables in registration order.
func (m *Manager) Variables() []Variable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Variable, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, m.vars[h])
	}
	return out
}

// Evaluate runs the variable registered under handle.
func (m *Manager) Evaluate(ctx context.Context, handle string, trigger Trigger, args ...string) (any, error) {
	v, ok := m.Get(handle)
	if !ok {
		return nil, fmt.Errorf("evaluate %s: %w", handle, ErrUnknownHandle)
	}
	return v.Evaluator(ctx, trigger, args...)
}
