package content

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a template file must go without writes before it
// is reported. Editors that save in several writes produce one report, sent
// after the last write.
const settleDelay = 100 * time.Millisecond

// Watcher reports template files in a content directory once they settle.
// It never touches game state; the game loop drains Events between frames.
type Watcher struct {
	fs      *fsnotify.Watcher
	settle  time.Duration
	Events  chan string
	Errors  chan error
	settled chan settledPath
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// settledPath is a quiet-period expiry. gen identifies which arming fired,
// so a superseded expiry does not clear a newer one.
type settledPath struct {
	name string
	gen  uint64
}

type armed struct {
	timer *time.Timer
	gen   uint64
}

func NewWatcher(dirs ...string) (*Watcher, error) {
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

	w := &Watcher{
		fs:      fw,
		settle:  settleDelay,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		settled: make(chan settledPath),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns the next settled path without blocking.
func (w *Watcher) Poll() (string, bool) {
	select {
	case path, ok := <-w.Events:
		return path, ok
	default:
		return "", false
	}
}

func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]armed)
	var gen uint64
	defer func() {
		for _, a := range pending {
			a.timer.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if isTemplateChange(ev) {
				gen++
				w.arm(pending, ev.Name, gen)
			}
		case s := <-w.settled:
			if a, ok := pending[s.name]; !ok || a.gen != s.gen {
				continue
			}
			delete(pending, s.name)
			select {
			case w.Events <- s.name:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

// arm restarts the quiet period for name under a new generation.
func (w *Watcher) arm(pending map[string]armed, name string, gen uint64) {
	if a, ok := pending[name]; ok {
		a.timer.Stop()
	}
	pending[name] = armed{
		gen: gen,
		timer: time.AfterFunc(w.settle, func() {
			select {
			case w.settled <- settledPath{name: name, gen: gen}:
			case <-w.stop:
			}
		}),
	}
}

func isTemplateChange(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	return ext == ".yaml" || ext == ".yml"
}
