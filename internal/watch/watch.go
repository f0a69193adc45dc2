// Package watch reports changes to keymap files under a packages directory.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/llehouerou/cheatsheet/internal/scan"
)

// DefaultDebounce groups bursts of events (editors write files in
// several steps) into one notification.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches Root and every package directory directly below it.
type Watcher struct {
	Root     string
	Debounce time.Duration
	Logger   *log.Logger
}

// Watch starts watching and returns a channel that receives one value per
// debounced burst of relevant changes. The channel is closed when ctx is
// done or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(w.Root); err != nil {
		fsw.Close()
		return nil, err
	}
	dirents, err := os.ReadDir(w.Root)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	for _, d := range dirents {
		if d.IsDir() {
			w.add(fsw, filepath.Join(w.Root, d.Name()))
		}
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer fsw.Close()

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(fsw, ev) {
				continue
			}
			w.logger().Debug("keymap change", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger().Warn("watch error", "err", err)
		case <-timer.C:
			select {
			case out <- struct{}{}:
			default: // a notification is already pending
			}
		}
	}
}

// relevant reports whether ev may change the scan result. New package
// directories are added to the watch list as a side effect.
func (w *Watcher) relevant(fsw *fsnotify.Watcher, ev fsnotify.Event) bool {
	if filepath.Dir(ev.Name) == filepath.Clean(w.Root) {
		// A package directory appeared, vanished or was renamed.
		if ev.Has(fsnotify.Create) {
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				w.add(fsw, ev.Name)
				return true
			}
			return false
		}
		return ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
	}
	if !scan.IsKeymapFile(filepath.Base(ev.Name)) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) add(fsw *fsnotify.Watcher, dir string) {
	if err := fsw.Add(dir); err != nil {
		w.logger().Warn("watch package", "dir", dir, "err", err)
	}
}

func (w *Watcher) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.Default()
}
