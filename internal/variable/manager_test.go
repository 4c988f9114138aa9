package variable

import (
	"context"
	"strings"
	"testing"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(handle string) Variable {
	return Variable{
		Definition: api.VariableDefinition{Handle: handle, Categories: []string{"common"}},
		Evaluator: func(_ context.Context, _ Trigger, args ...string) (any, error) {
			return strings.Join(args, ","), nil
		},
	}
}

func TestManager_RegisterAndEvaluate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(echo("b")))
	require.NoError(t, m.Register(echo("a")))

	var handles []string
	for _, v := range m.Variables() {
		handles = append(handles, v.Definition.Handle)
	}
	assert.Equal(t, []string{"b", "a"}, handles)

	got, err := m.Evaluate(context.Background(), "a", Trigger{Type: "manual"}, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x,y", got)
}

func TestManager_RegisterErrors(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(echo("dup")))

	err := m.Register(echo("dup"))
	assert.ErrorIs(t, err, ErrDuplicateHandle)

	assert.Error(t, m.Register(echo("")))
	assert.Error(t, m.Register(Variable{Definition: api.VariableDefinition{Handle: "nil"}}))
	assert.Len(t, m.Variables(), 1)
}

func TestManager_EvaluateUnknown(t *testing.T) {
	_, err := NewManager().Evaluate(context.Background(), "missing", Trigger{})
	assert.ErrorIs(t, err, ErrUnknownHandle)
}
