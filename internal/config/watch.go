package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// Reload is delivered by Watcher after the watched file changed.
// Err is set when the new content could not be loaded; Config is then zero.
type Reload struct {
	Config FlappyConfig
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
// The parent directory is watched so atomic rename-on-save works.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes Reloads.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Reload once the file has been quiet for reloadDebounce.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			cfg, err := LoadFlappy(w.path)
			w.send(Reload{Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: err})
		case <-w.closeCh:
			return
		}
	}
}

// send drops the reload if nobody is listening and the buffer is full.
func (w *Watcher) send(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	default:
	}
}
