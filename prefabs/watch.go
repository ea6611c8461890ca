package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says which piece of configuration an edited file belongs to.
type ChangeKind int

const (
	ChangeWorld ChangeKind = iota + 1
	ChangeTile
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeWorld:
		return "world"
	case ChangeTile:
		return "tile"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one settled edit. Name is the file's base name.
type Change struct {
	Kind ChangeKind
	Name string
}

// ClassifyChange maps a path to the configuration it affects. Unrelated files
// report false.
func ClassifyChange(path string) (Change, bool) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tengo":
		return Change{Kind: ChangeScript, Name: name}, true
	case ".yaml", ".yml":
	default:
		return Change{}, false
	}
	switch name {
	case WorldSpecFile:
		return Change{Kind: ChangeWorld, Name: name}, true
	case TileSpecFile:
		return Change{Kind: ChangeTile, Name: name}, true
	}
	return Change{}, false
}

// DefaultDebounce is how long a file must stay quiet before its change is
// reported. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports settled edits to spec and script files in the watched
// directories.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	changes  chan Change
	errs     chan error
	done     chan struct{}
	once     sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherWithDebounce(DefaultDebounce, dirs...)
}

func NewWatcherWithDebounce(debounce time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fs:       fw,
		debounce: debounce,
		changes:  make(chan Change, 16),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers settled edits. It is never closed; stop reading after
// Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Poll drains pending changes without blocking.
func (w *Watcher) Poll() ([]Change, error) {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		case err := <-w.errs:
			return out, err
		default:
			return out, nil
		}
	}
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	pending := make(map[Change]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if c, ok := ClassifyChange(event.Name); ok {
				pending[c] = time.Now()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case now := <-ticker.C:
			for c, seen := range pending {
				if now.Sub(seen) < w.debounce {
					continue
				}
				delete(pending, c)
				select {
				case w.changes <- c:
				case <-w.done:
					return
				}
			}
		case <-w.done:
			return
		}
	}
}
