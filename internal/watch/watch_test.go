package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/sketch/internal/sketch"
)

type result struct {
	w   *sketch.Window
	err error
}

func startWatcher(t *testing.T, path string) (<-chan result, context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(path, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan result, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(win *sketch.Window, err error) {
			results <- result{win, err}
		})
	}()
	return results, cancel, done
}

func next(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return result{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.sketch")
	require.NoError(t, os.WriteFile(path, []byte("window = \"A\":\n  width = 10%\n"), 0644))

	results, cancel, done := startWatcher(t, path)
	defer cancel()

	require.NoError(t, os.WriteFile(path, []byte("window = \"B\":\n  fullscreen\n"), 0644))
	r := next(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, "B", r.w.Title())
	assert.True(t, r.w.Fullscreen())

	require.NoError(t, os.WriteFile(path, []byte("window = \"C\":\n  width 10%\n"), 0644))
	r = next(t, results)
	require.Error(t, r.err)
	assert.Nil(t, r.w)
	assert.Equal(t, sketch.SyntaxError, sketch.KindOf(r.err))

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sketch")
	require.NoError(t, os.WriteFile(path, []byte("window = \"A\":\n  centered\n"), 0644))

	results, cancel, _ := startWatcher(t, path)
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.sketch"), []byte("junk"), 0644))
	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "main.sketch"), nil)
	assert.Error(t, err)
}
