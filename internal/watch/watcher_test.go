package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(stores []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, stores)
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		out = append(out, c...)
	}
	return out
}

func TestWatcher_ReportsStoreChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "events"), 0o755))

	rec := &recorder{}
	w, err := New(dir, []string{"events/events.json", "timers.json"}, rec.record, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events", "events.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "timers.json"), []byte(`{}`), 0o644))

	assert.Eventually(t, func() bool {
		seen := rec.seen()
		return assert.ObjectsAreEqual([]string{"events/events.json", "timers.json"}, dedupe(seen))
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotContains(t, rec.seen(), "unrelated.json")
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()

	rec := &recorder{}
	w, err := New(dir, []string{"timers.json"}, rec.record, nil)
	require.NoError(t, err)
	w.SetDebounce(200 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	path := filepath.Join(dir, "timers.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return len(rec.seen()) > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"timers.json"}, rec.seen())
}

func TestWatcher_MissingDirectoriesAreSkipped(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, []string{"chat/commands.json", "timers.json"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{dir, filepath.Join(dir, "chat")}, w.Dirs())

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
}

func TestWatcher_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w, err := New(t.TempDir(), nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	w.Stop()
	w.Stop()
}

func dedupe(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
