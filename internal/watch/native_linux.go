//go:build linux

package watch

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	changeMask  = unix.IN_MODIFY | unix.IN_CLOSE_WRITE | unix.IN_ATTRIB
	replaceMask = unix.IN_DELETE_SELF | unix.IN_MOVE_SELF | unix.IN_IGNORED
	idleSleep   = 50 * time.Millisecond
)

// inotify watches files through a non-blocking inotify descriptor.
type inotify struct {
	fd     int
	logger *zap.Logger

	mu      sync.Mutex
	watches map[int]string
}

func newNative(o options) (backend, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, errors.Wrap(err, "inotify init")
	}

	return &inotify{
		fd:      fd,
		logger:  o.logger,
		watches: map[int]string{},
	}, nil
}

func (w *inotify) add(path string) error {
	wd, err := unix.InotifyAddWatch(w.fd, path, changeMask|unix.IN_DELETE_SELF|unix.IN_MOVE_SELF)
	if err != nil {
		return errors.Wrap(err, "inotify add watch")
	}

	w.mu.Lock()
	w.watches[wd] = path
	w.mu.Unlock()
	return nil
}

func (w *inotify) run(ctx context.Context, notify func(string)) error {
	buf := make([]byte, (unix.SizeofInotifyEvent+unix.NAME_MAX+1)*16)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := unix.Read(w.fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(idleSleep):
				}
				continue
			}
			return errors.Wrap(err, "read inotify events")
		}

		offset := 0
		for offset+unix.SizeofInotifyEvent <= n {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			offset += unix.SizeofInotifyEvent + int(event.Len)

			w.mu.Lock()
			path := w.watches[int(event.Wd)]
			w.mu.Unlock()
			if path == "" {
				continue
			}

			switch {
			case event.Mask&replaceMask != 0:
				// Editors often save by replacing the file, follow the new inode.
				w.rewatch(int(event.Wd), path)
				notify(path)
			case event.Mask&changeMask != 0:
				notify(path)
			}
		}
	}
}

func (w *inotify) rewatch(wd int, path string) {
	w.mu.Lock()
	delete(w.watches, wd)
	w.mu.Unlock()

	if err := w.add(path); err != nil {
		w.logger.Warn("file is no longer watched", zap.String("path", path), zap.Error(err))
	}
}

func (w *inotify) close() error {
	return unix.Close(w.fd)
}
