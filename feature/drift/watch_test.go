package drift

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"wiring-guard/feature/drift/checks"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newOsRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("// ../templates/index.tera\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "templates", "index.tera"), nil, 0o644))
	return root
}

func TestWatcher_Run(t *testing.T) {
	root := newOsRepo(t)
	svc := NewService(afero.NewBasePathFs(afero.NewOsFs(), root), checks.DefaultLayout(), zap.NewNop())

	out := &syncBuffer{}
	w := NewWatcher(svc, root, out, zap.NewNop())
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the initial check a moment; everything is wired so nothing is printed.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, out.String())

	require.NoError(t, os.WriteFile(filepath.Join(root, "templates", "new.tera"), nil, 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "template new.tera missing from main.rs")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Run_DirectoryCreatedLater(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.rs"), []byte("// ../static/a.css\n"), 0o644))
	svc := NewService(afero.NewBasePathFs(afero.NewOsFs(), root), checks.DefaultLayout(), zap.NewNop())

	out := &syncBuffer{}
	w := NewWatcher(svc, root, out, zap.NewNop())
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Mkdir(filepath.Join(root, "static"), 0o755))

	// Let the watcher add the new directory before writing into it.
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, out.String())
	require.NoError(t, os.WriteFile(filepath.Join(root, "static", "b.css"), nil, 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "static file b.css missing from main.rs")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Dirs(t *testing.T) {
	svc := NewService(afero.NewMemMapFs(), checks.DefaultLayout(), zap.NewNop())
	w := NewWatcher(svc, ".", &bytes.Buffer{}, zap.NewNop())

	assert.Equal(t, []string{"src", "templates", "static"}, w.Dirs())
}

func TestWatcher_Relevant(t *testing.T) {
	svc := NewService(afero.NewMemMapFs(), checks.DefaultLayout(), zap.NewNop())
	w := NewWatcher(svc, "repo", &bytes.Buffer{}, zap.NewNop())

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"Source Written", fsnotify.Event{Name: "repo/src/main.rs", Op: fsnotify.Write}, true},
		{"Other Source File", fsnotify.Event{Name: "repo/src/lib.rs", Op: fsnotify.Write}, false},
		{"Template Created", fsnotify.Event{Name: "repo/templates/a.tera", Op: fsnotify.Create}, true},
		{"Static Removed", fsnotify.Event{Name: "repo/static/a.css", Op: fsnotify.Remove}, true},
		{"Static Renamed", fsnotify.Event{Name: "repo/static/a.css", Op: fsnotify.Rename}, true},
		{"Chmod Only", fsnotify.Event{Name: "repo/static/a.css", Op: fsnotify.Chmod}, false},
		{"Editor Swap File", fsnotify.Event{Name: "repo/templates/.a.tera.swp", Op: fsnotify.Create}, false},
		{"Static Dir Created", fsnotify.Event{Name: "repo/static", Op: fsnotify.Create}, true},
		{"Templates Dir Removed", fsnotify.Event{Name: "repo/templates", Op: fsnotify.Remove}, true},
		{"Unrelated Root File", fsnotify.Event{Name: "repo/README.md", Op: fsnotify.Write}, false},
		{"Nested Asset", fsnotify.Event{Name: "repo/static/img/a.png", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}
