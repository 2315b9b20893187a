package watch

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type fileState struct {
	modTime time.Time
	size    int64
	missing bool
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{missing: true}
	}
	return fileState{modTime: info.ModTime(), size: info.Size()}
}

// poller compares modification times and sizes on every tick.
type poller struct {
	interval time.Duration

	mu    sync.Mutex
	files map[string]fileState
}

func newPoller(interval time.Duration) *poller {
	return &poller{
		interval: interval,
		files:    map[string]fileState{},
	}
}

func (p *poller) add(path string) error {
	st := stat(path)
	if st.missing {
		return errors.Errorf("no such file %s", path)
	}

	p.mu.Lock()
	p.files[path] = st
	p.mu.Unlock()
	return nil
}

func (p *poller) run(ctx context.Context, notify func(string)) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		var changed []string
		p.mu.Lock()
		for path, prev := range p.files {
			cur := stat(path)
			if cur != prev {
				p.files[path] = cur
				if !cur.missing {
					changed = append(changed, path)
				}
			}
		}
		p.mu.Unlock()

		for _, path := range changed {
			notify(path)
		}
	}
}

func (p *poller) close() error {
	return nil
}
